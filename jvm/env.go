// Package jvm is the runtime that generated bindings call into. It wraps a
// native Env behind deferred operations, scope-bound local references and a
// per-class handle cache.
package jvm

// Handle is an opaque native object or class reference. The zero Handle is null.
type Handle uintptr

// Env is the set of native primitives bindings need. Implementations wrap a
// JNIEnv or, in tests, a fake. An Env is used from one goroutine at a time.
type Env interface {
	// FindClass looks a class up by its slash-separated name and returns a local reference.
	FindClass(name string) (Handle, error)
	NewGlobalRef(h Handle) (Handle, error)
	DeleteLocalRef(h Handle)
	NewObject(class Handle, descriptor string, args []Value) (Handle, error)
	CallMethod(class, obj Handle, name, descriptor string, args []Value) (Value, error)
	CallStaticMethod(class Handle, name, descriptor string, args []Value) (Value, error)
}
