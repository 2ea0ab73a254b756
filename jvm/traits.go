package jvm

// JavaObject is satisfied by every generated binding type, which embeds Object.
type JavaObject interface {
	javaObject()
}

// Object is embedded by generated binding types. Binding types carry no data;
// they only name a Java class at the type level.
type Object struct{}

func (Object) javaObject() {}

// Array is the binding type of a Java array with elements of binding type E.
type Array[E any] struct {
	Object
}

// IntoJava is an argument that evaluates to a Java object of type T.
type IntoJava[T any] interface {
	Op[Ref[T]]
}

// IntoScalar is an argument or result that evaluates to a Java primitive.
type IntoScalar[T Scalar] interface {
	Op[T]
}

// IntoOptLocal is a result that evaluates to a local reference, nil for null.
type IntoOptLocal[T any] interface {
	Op[*Local[T]]
}

// IntoLocal is a result that evaluates to a non-null local reference.
type IntoLocal[T any] interface {
	Op[*Local[T]]
}

// Upcast is implemented by binding types usable where a T is expected.
type Upcast[T any] interface {
	JavaObject
	Upcast(T)
}

// AsJava adapts the result of a binding so it can be passed as an argument.
func AsJava[T any](op Op[*Local[T]]) IntoJava[T] {
	return OpFunc[Ref[T]](func(j *Jvm) (Ref[T], error) {
		local, err := op.Execute(j)
		if err != nil {
			return Ref[T]{}, err
		}
		return local.Ref(), nil
	})
}
