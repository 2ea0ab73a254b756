package jvm

import "fmt"

// RefArg evaluates an object argument.
func RefArg[T any](j *Jvm, op Op[Ref[T]]) (Value, error) {
	ref, err := op.Execute(j)
	if err != nil {
		return Value{}, err
	}
	return ObjectValue(ref.handle), nil
}

// ScalarArg evaluates a primitive argument.
func ScalarArg[T Scalar](j *Jvm, op Op[T]) (Value, error) {
	v, err := op.Execute(j)
	if err != nil {
		return Value{}, err
	}
	return ScalarValue(v), nil
}

// Construct instantiates the class held by class with the constructor
// matching descriptor.
func Construct[T any](j *Jvm, class *ClassCache, descriptor string, args ...Value) (*Local[T], error) {
	cls, err := class.Get(j)
	if err != nil {
		return nil, err
	}
	h, err := j.env.NewObject(cls, descriptor, args)
	if err != nil {
		return nil, fmt.Errorf("new %s%s: %w", class.name, descriptor, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("new %s%s: null result", class.name, descriptor)
	}
	return newLocal[T](j, h), nil
}

func CallObject[T any](j *Jvm, class *ClassCache, this Value, name, descriptor string, args ...Value) (*Local[T], error) {
	v, err := callMethod(j, class, this, name, descriptor, args)
	if err != nil {
		return nil, err
	}
	return objectResult[T](j, v, class, name)
}

func CallScalar[T Scalar](j *Jvm, class *ClassCache, this Value, name, descriptor string, args ...Value) (T, error) {
	v, err := callMethod(j, class, this, name, descriptor, args)
	if err != nil {
		var zero T
		return zero, err
	}
	return ScalarOf[T](v)
}

func CallVoid(j *Jvm, class *ClassCache, this Value, name, descriptor string, args ...Value) (Void, error) {
	_, err := callMethod(j, class, this, name, descriptor, args)
	return Void{}, err
}

func CallStaticObject[T any](j *Jvm, class *ClassCache, name, descriptor string, args ...Value) (*Local[T], error) {
	v, err := callStatic(j, class, name, descriptor, args)
	if err != nil {
		return nil, err
	}
	return objectResult[T](j, v, class, name)
}

func CallStaticScalar[T Scalar](j *Jvm, class *ClassCache, name, descriptor string, args ...Value) (T, error) {
	v, err := callStatic(j, class, name, descriptor, args)
	if err != nil {
		var zero T
		return zero, err
	}
	return ScalarOf[T](v)
}

func CallStaticVoid(j *Jvm, class *ClassCache, name, descriptor string, args ...Value) (Void, error) {
	_, err := callStatic(j, class, name, descriptor, args)
	return Void{}, err
}

func callMethod(j *Jvm, class *ClassCache, this Value, name, descriptor string, args []Value) (Value, error) {
	if this.Handle() == 0 {
		return Value{}, fmt.Errorf("call %s.%s: null receiver", class.name, name)
	}
	cls, err := class.Get(j)
	if err != nil {
		return Value{}, err
	}
	v, err := j.env.CallMethod(cls, this.Handle(), name, descriptor, args)
	if err != nil {
		return Value{}, fmt.Errorf("call %s.%s%s: %w", class.name, name, descriptor, err)
	}
	return v, nil
}

func callStatic(j *Jvm, class *ClassCache, name, descriptor string, args []Value) (Value, error) {
	cls, err := class.Get(j)
	if err != nil {
		return Value{}, err
	}
	v, err := j.env.CallStaticMethod(cls, name, descriptor, args)
	if err != nil {
		return Value{}, fmt.Errorf("call %s.%s%s: %w", class.name, name, descriptor, err)
	}
	return v, nil
}

func objectResult[T any](j *Jvm, v Value, class *ClassCache, name string) (*Local[T], error) {
	if v.Kind != KindObject && v.Kind != KindVoid {
		return nil, fmt.Errorf("call %s.%s: expected object result, got %s", class.name, name, v.Kind)
	}
	return newLocal[T](j, v.Handle()), nil
}
