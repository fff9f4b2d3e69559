package waitgroup

import (
	"context"
	"time"
)

// WaitContext waits until the WaitGroup counter is zero or until ctx is done,
// in which case it returns ctx.Err(). It returns nil without looking at ctx if
// the counter is already zero. The counter is left untouched either way.
func (wg WaitGroup) WaitContext(ctx context.Context) error {
	s := wg.state()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkPoisoned()

	if s.counter <= 0 {
		return nil
	}

	// The broadcast is made under the lock, and ctx.Err() is checked under the
	// lock before every cond.Wait, so the cancellation cannot be missed.
	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	})
	defer stop()

	for s.counter > 0 {
		if err := ctx.Err(); err != nil {
			log.Debugf("wait abandoned with %d tasks pending: %v", s.counter, err)
			return err
		}

		s.cond.Wait()
	}

	s.checkPoisoned()

	return nil
}

// WaitTimeout waits at most d for the WaitGroup counter to reach zero and
// reports whether it did.
func (wg WaitGroup) WaitTimeout(d time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	return wg.WaitContext(ctx) == nil
}
