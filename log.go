package waitgroup

import (
	"os"

	"github.com/op/go-logging"
)

const logModule = "libqd/waitgroup"

var log = logging.MustGetLogger(logModule)

func init() {
	logging.SetLevel(levelFromEnv(os.Getenv("LIBQD_LOG_LEVEL")), logModule)
}

// levelFromEnv maps a LIBQD_LOG_LEVEL value to a level, WARNING when unset or unknown.
func levelFromEnv(name string) logging.Level {
	if name == "" {
		return logging.WARNING
	}

	level, err := logging.LogLevel(name)
	if err != nil {
		return logging.WARNING
	}

	return level
}

// SetLogger replaces the package logger, e.g. with one returned by the
// embedding program's own logging setup. Call it before any WaitGroup is in use.
func SetLogger(l *logging.Logger) {
	if l != nil {
		log = l
	}
}
