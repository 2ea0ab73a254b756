package jvm

import (
	"errors"
	"sync"
)

type call struct {
	class, obj Handle
	name, desc string
	args       []Value
}

// fakeEnv hands out increasing handles and records every primitive it sees.
type fakeEnv struct {
	mu        sync.Mutex
	next      Handle
	findCalls int
	findErr   []error
	findHook  func()
	deleted   []Handle
	globals   []Handle
	calls     []call
	result    Value
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{next: 100}
}

func (e *fakeEnv) handle() Handle {
	e.next++
	return e.next
}

func (e *fakeEnv) FindClass(name string) (Handle, error) {
	if e.findHook != nil {
		e.findHook()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.findCalls++
	if len(e.findErr) > 0 {
		err := e.findErr[0]
		e.findErr = e.findErr[1:]
		if err != nil {
			return 0, err
		}
	}
	return e.handle(), nil
}

func (e *fakeEnv) NewGlobalRef(h Handle) (Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	g := e.handle()
	e.globals = append(e.globals, g)
	return g, nil
}

func (e *fakeEnv) DeleteLocalRef(h Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deleted = append(e.deleted, h)
}

func (e *fakeEnv) NewObject(class Handle, descriptor string, args []Value) (Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, call{class: class, name: "<init>", desc: descriptor, args: args})
	return e.handle(), nil
}

func (e *fakeEnv) CallMethod(class, obj Handle, name, descriptor string, args []Value) (Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, call{class: class, obj: obj, name: name, desc: descriptor, args: args})
	if name == "fail" {
		return Value{}, errors.New("boom")
	}
	return e.result, nil
}

func (e *fakeEnv) CallStaticMethod(class Handle, name, descriptor string, args []Value) (Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, call{class: class, name: name, desc: descriptor, args: args})
	return e.result, nil
}
