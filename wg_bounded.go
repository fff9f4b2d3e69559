package waitgroup

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// BoundedWaitGroup is a wait group which has a limit boundary meaning it will
// wait for Done() to be called before releasing Add(n) if the limit has been reached.
type BoundedWaitGroup struct {
	wg  WaitGroup
	sem *semaphore.Weighted
	cap int64
}

// NewBoundedWaitGroup returns a new BoundedWaitGroup allowing at most cap
// outstanding tasks.
func NewBoundedWaitGroup(cap int) BoundedWaitGroup {
	if cap <= 0 {
		panic("libqd/waitgroup: BoundedWaitGroup cap must be > 0")
	}

	return BoundedWaitGroup{
		wg:  New(),
		sem: semaphore.NewWeighted(int64(cap)),
		cap: int64(cap),
	}
}

// Clone returns another handle to the same BoundedWaitGroup.
func (bwg BoundedWaitGroup) Clone() BoundedWaitGroup {
	return BoundedWaitGroup{wg: bwg.wg.Clone(), sem: bwg.sem, cap: bwg.cap}
}

// Add adds delta, which may be negative, to the BoundedWaitGroup counter.
// If counter + delta is greater than the cap of the BoundedWaitGroup then Add
// blocks until enough slots are made available by Done.
func (bwg BoundedWaitGroup) Add(delta int) {
	// Background never ends so AddContext can only fail by panicking.
	_ = bwg.AddContext(context.Background(), delta)
}

// AddContext is Add giving up with ctx.Err() if ctx is done before slots are
// available. The counter is not changed when an error is returned.
func (bwg BoundedWaitGroup) AddContext(ctx context.Context, delta int) error {
	if int64(delta) > bwg.cap {
		fatal(ErrOverCapacity, "delta=%d cap=%d", delta, bwg.cap)
	}

	if delta > 0 {
		if err := bwg.sem.Acquire(ctx, int64(delta)); err != nil {
			return err
		}
	}

	bwg.wg.Add(delta)

	if delta < 0 {
		bwg.sem.Release(int64(-delta))
	}

	return nil
}

// Done decrements the BoundedWaitGroup counter by one.
func (bwg BoundedWaitGroup) Done() {
	bwg.Add(-1)
}

// Wait blocks until the BoundedWaitGroup counter is zero.
func (bwg BoundedWaitGroup) Wait() {
	bwg.wg.Wait()
}

// WaitContext waits until the counter is zero or ctx is done.
func (bwg BoundedWaitGroup) WaitContext(ctx context.Context) error {
	return bwg.wg.WaitContext(ctx)
}
