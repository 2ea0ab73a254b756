package jvm

// Ref is a borrowed reference to a Java object of binding type T. It does not
// own the native reference.
type Ref[T any] struct {
	handle Handle
}

// Borrow wraps a raw handle the caller keeps alive.
func Borrow[T any](h Handle) Ref[T] {
	return Ref[T]{handle: h}
}

// Null returns the null reference of type T.
func Null[T any]() Ref[T] {
	return Ref[T]{}
}

func (r Ref[T]) Handle() Handle { return r.handle }
func (r Ref[T]) IsNull() bool   { return r.handle == 0 }

// Execute lets a Ref be passed wherever IntoJava[T] is expected.
func (r Ref[T]) Execute(*Jvm) (Ref[T], error) {
	return r, nil
}

// Local is a local reference owned by the scope it was created in. It must
// not be used after that scope ends.
type Local[T any] struct {
	ref Ref[T]
}

func newLocal[T any](j *Jvm, h Handle) *Local[T] {
	if h == 0 {
		return nil
	}
	j.track(h)
	return &Local[T]{ref: Ref[T]{handle: h}}
}

func (l *Local[T]) Handle() Handle {
	if l == nil {
		return 0
	}
	return l.ref.handle
}

func (l *Local[T]) Ref() Ref[T] {
	if l == nil {
		return Ref[T]{}
	}
	return l.ref
}

// Execute lets a Local be passed wherever IntoJava[T] is expected.
func (l *Local[T]) Execute(*Jvm) (Ref[T], error) {
	return l.Ref(), nil
}
