package waitgroup

import (
	"testing"

	"github.com/op/go-logging"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name string
		want logging.Level
	}{
		{"", logging.WARNING},
		{"DEBUG", logging.DEBUG},
		{"ERROR", logging.ERROR},
		{"CRITICAL", logging.CRITICAL},
		{"verbose", logging.WARNING},
	}

	for _, tt := range tests {
		if got := levelFromEnv(tt.name); got != tt.want {
			t.Errorf("levelFromEnv(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := log
	defer func() { log = orig }()

	l := logging.MustGetLogger("embedder")
	SetLogger(l)
	if log != l {
		t.Errorf("SetLogger() did not replace the package logger")
	}

	SetLogger(nil)
	if log != l {
		t.Errorf("SetLogger(nil) replaced the package logger")
	}
}
