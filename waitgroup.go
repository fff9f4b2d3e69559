package waitgroup

import (
	"sync"
)

// WaitGroup waits for a collection of goroutines to finish.
//
// A WaitGroup is a handle: copies and clones refer to the same counter, so it
// can be passed by value to every goroutine taking part. It must be created
// with New.
//
// Unlike sync.WaitGroup, Add may be called concurrently with Wait at any time:
// every waiter blocked when the counter reaches zero is released. A WaitGroup
// can be reused for successive rounds, but new rounds must not start before
// the waiters of the previous one have returned.
type WaitGroup struct {
	s *state
}

type state struct {
	mu   sync.Mutex
	cond *sync.Cond

	// number of outstanding tasks
	counter int64

	// set when counter went negative, never cleared
	poisoned bool
}

// New returns a WaitGroup with a zero counter.
func New() WaitGroup {
	s := &state{}
	s.cond = sync.NewCond(&s.mu)

	return WaitGroup{s: s}
}

// Clone returns another handle to the same WaitGroup.
func (wg WaitGroup) Clone() WaitGroup {
	return WaitGroup{s: wg.state()}
}

func (wg WaitGroup) state() *state {
	if wg.s == nil {
		panic(ErrUninitialized)
	}

	return wg.s
}

// Add adds delta, which may be negative, to the WaitGroup counter.
// If the counter becomes zero, all goroutines blocked on Wait are released.
// If the counter goes negative, Add panics with ErrNegativeCounter and the
// WaitGroup becomes unusable.
func (wg WaitGroup) Add(delta int) {
	s := wg.state()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkPoisoned()

	s.counter += int64(delta)

	if s.counter < 0 {
		s.poisoned = true
		fatal(ErrNegativeCounter, "counter=%d delta=%d", s.counter, delta)
	}

	if s.counter == 0 {
		s.cond.Broadcast()
	}
}

// TryAdd is Add returning an error instead of panicking. A delta that would
// make the counter negative is not applied.
func (wg WaitGroup) TryAdd(delta int) error {
	s := wg.state()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return ErrPoisoned
	}

	if s.counter+int64(delta) < 0 {
		return ErrNegativeCounter
	}

	s.counter += int64(delta)

	if s.counter == 0 {
		s.cond.Broadcast()
	}

	return nil
}

// Done decrements the WaitGroup counter by one.
func (wg WaitGroup) Done() {
	wg.Add(-1)
}

// Wait blocks until the WaitGroup counter is zero.
func (wg WaitGroup) Wait() {
	s := wg.state()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkPoisoned()

	for s.counter > 0 {
		s.cond.Wait()
	}

	s.checkPoisoned()
}

// Go calls f in a new goroutine and adds that task to the WaitGroup.
// When f returns, the task is removed from the WaitGroup.
func (wg WaitGroup) Go(f func()) {
	wg.Add(1)

	go func() {
		defer wg.Done()
		f()
	}()
}

// checkPoisoned must be called with s.mu held.
func (s *state) checkPoisoned() {
	if s.poisoned {
		fatal(ErrPoisoned, "counter=%d", s.counter)
	}
}
