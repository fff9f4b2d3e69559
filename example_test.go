package waitgroup_test

import (
	"fmt"
	"sync/atomic"
	"time"

	"sylr.dev/libqd/waitgroup"
)

func ExampleWaitGroup() {
	wg := waitgroup.New()
	var done int64

	for i := 0; i < 10; i++ {
		wg := wg.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			atomic.AddInt64(&done, 1)
		}()
	}

	wg.Wait()
	fmt.Println(atomic.LoadInt64(&done))
	// Output: 10
}

func ExampleWaitGroup_WaitTimeout() {
	wg := waitgroup.New()
	wg.Add(1)

	fmt.Println(wg.WaitTimeout(10 * time.Millisecond))

	wg.Done()
	fmt.Println(wg.WaitTimeout(10 * time.Millisecond))
	// Output:
	// false
	// true
}

func ExampleBoundedWaitGroup() {
	wg := waitgroup.NewBoundedWaitGroup(2)
	var running, peak int64

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := atomic.AddInt64(&running, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt64(&running, -1)
		}()
	}

	wg.Wait()
	fmt.Println(atomic.LoadInt64(&peak) <= 2)
	// Output: true
}
