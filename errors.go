package waitgroup

import (
	"github.com/pkg/errors"
)

var ErrNegativeCounter = errors.New("libqd/waitgroup: negative counter")
var ErrPoisoned = errors.New("libqd/waitgroup: counter poisoned by an earlier negative Add")
var ErrUninitialized = errors.New("libqd/waitgroup: WaitGroup not created with New")
var ErrOverCapacity = errors.New("libqd/waitgroup: trying to Add more than cap")

// fatal logs err and panics with it. The panic value is an error carrying the
// caller's stack, so errors.Is(recovered, err) holds.
func fatal(err error, format string, args ...interface{}) {
	if err == ErrNegativeCounter {
		log.Criticalf("%v: "+format, append([]interface{}{err}, args...)...)
	} else {
		log.Errorf("%v: "+format, append([]interface{}{err}, args...)...)
	}

	panic(errors.WithStack(err))
}
