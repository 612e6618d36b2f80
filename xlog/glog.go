// Package xlog adapts github.com/golang/glog to the Logger interface
// used by the engine package, so a caller can wire real structured
// logging into the engine without that package depending on glog
// directly.
package xlog

import (
	"fmt"

	"github.com/golang/glog"
)

// GlogLogger implements the engine.Logger interface on top of glog.
type GlogLogger struct {
	// Verbosity controls the glog.V level debug messages are logged at.
	Verbosity glog.Level
}

// NewGlogLogger returns a GlogLogger logging debug messages at V(1).
func NewGlogLogger() *GlogLogger {
	return &GlogLogger{Verbosity: 1}
}

func (l *GlogLogger) Debug(msg string, keysAndValues ...interface{}) {
	if glog.V(l.Verbosity) {
		glog.InfoDepth(1, formatMsg(msg, keysAndValues))
	}
}

func (l *GlogLogger) Info(msg string, keysAndValues ...interface{}) {
	glog.InfoDepth(1, formatMsg(msg, keysAndValues))
}

func (l *GlogLogger) Error(msg string, keysAndValues ...interface{}) {
	glog.ErrorDepth(1, formatMsg(msg, keysAndValues))
}

func formatMsg(msg string, kv []interface{}) string {
	if len(kv) == 0 {
		return msg
	}
	out := msg
	for i := 0; i+1 < len(kv); i += 2 {
		out += " " + toString(kv[i]) + "=" + toString(kv[i+1])
	}
	return out
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case error:
		return s.Error()
	default:
		return fmt.Sprint(v)
	}
}
