package jvm

// Op is a deferred computation against a Jvm. Generated bindings take their
// arguments as Ops and return Ops; nothing touches the native side until
// Execute runs.
type Op[T any] interface {
	Execute(j *Jvm) (T, error)
}

type OpFunc[T any] func(j *Jvm) (T, error)

func (f OpFunc[T]) Execute(j *Jvm) (T, error) {
	return f(j)
}

type constOp[T any] struct {
	value T
}

func (c constOp[T]) Execute(*Jvm) (T, error) {
	return c.value, nil
}

// Const returns an Op that yields v. Const(int32(1)) satisfies IntoScalar[int32].
func Const[T any](v T) Op[T] {
	return constOp[T]{value: v}
}

// Exec runs op in the current scope of j.
func Exec[T any](j *Jvm, op Op[T]) (T, error) {
	return op.Execute(j)
}

// Void is the result of operations that produce nothing.
type Void struct{}
