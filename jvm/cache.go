package jvm

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// ClassCache holds the global class reference of one binding type. The first
// caller looks the class up; callers arriving during that lookup wait for it
// and share its outcome. A successful lookup is kept for the life of the
// process, a failed one is not, so the next caller retries.
type ClassCache struct {
	name   string
	handle atomic.Pointer[Handle]
	group  singleflight.Group
}

// NewClassCache returns an empty cache for the class with the given
// slash-separated name.
func NewClassCache(name string) *ClassCache {
	return &ClassCache{name: name}
}

func (c *ClassCache) Name() string {
	return c.name
}

// Get returns the global class reference, looking it up through j on first use.
func (c *ClassCache) Get(j *Jvm) (Handle, error) {
	if h := c.handle.Load(); h != nil {
		return *h, nil
	}
	v, err, _ := c.group.Do(c.name, func() (any, error) {
		if h := c.handle.Load(); h != nil {
			return *h, nil
		}
		h, err := c.lookup(j.env)
		if err != nil {
			return nil, err
		}
		c.handle.Store(&h)
		return h, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(Handle), nil
}

func (c *ClassCache) lookup(env Env) (Handle, error) {
	local, err := env.FindClass(c.name)
	if err != nil {
		return 0, fmt.Errorf("find class %s: %w", c.name, err)
	}
	defer env.DeleteLocalRef(local)

	global, err := env.NewGlobalRef(local)
	if err != nil {
		return 0, fmt.Errorf("global ref for %s: %w", c.name, err)
	}
	return global, nil
}
