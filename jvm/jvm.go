package jvm

// Jvm is the execution context operations run against. It owns a stack of
// scopes; local references created inside a scope are deleted when the scope
// ends. A Jvm belongs to one goroutine, like the JNIEnv it wraps.
type Jvm struct {
	env    Env
	scopes [][]Handle
}

// New returns a context with an open root scope, released by Close.
func New(env Env) *Jvm {
	return &Jvm{env: env, scopes: make([][]Handle, 1)}
}

func (j *Jvm) Env() Env {
	return j.env
}

// Scope runs fn in a new scope and deletes every local reference fn created,
// even when fn fails or panics.
func (j *Jvm) Scope(fn func(j *Jvm) error) error {
	j.scopes = append(j.scopes, nil)
	defer j.pop()
	return fn(j)
}

// Depth returns the number of open scopes, including the root scope.
func (j *Jvm) Depth() int {
	return len(j.scopes)
}

// Close releases every open scope.
func (j *Jvm) Close() {
	for len(j.scopes) > 0 {
		j.pop()
	}
}

func (j *Jvm) pop() {
	top := len(j.scopes) - 1
	locals := j.scopes[top]
	j.scopes = j.scopes[:top]
	for i := len(locals) - 1; i >= 0; i-- {
		j.env.DeleteLocalRef(locals[i])
	}
}

func (j *Jvm) track(h Handle) {
	if len(j.scopes) == 0 {
		j.scopes = make([][]Handle, 1)
	}
	top := len(j.scopes) - 1
	j.scopes[top] = append(j.scopes[top], h)
}
