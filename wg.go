package waitgroup

import (
	"context"
	"sync"
)

// Waiter interface
type Waiter interface {
	Add(int)
	Done()
	Wait()
}

// ContextWaiter is a Waiter whose Wait can be abandoned through a context.
type ContextWaiter interface {
	Waiter
	WaitContext(context.Context) error
}

var (
	_ Waiter        = (*sync.WaitGroup)(nil)
	_ ContextWaiter = WaitGroup{}
	_ ContextWaiter = BoundedWaitGroup{}
)

// NewWaiter returns a Waiter, a WaitGroup if cap <= 0, a BoundedWaitGroup otherwise.
func NewWaiter(cap int) Waiter {
	if cap > 0 {
		return NewBoundedWaitGroup(cap)
	}

	return New()
}
