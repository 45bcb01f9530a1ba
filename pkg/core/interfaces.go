package core

import (
	"fmt"

	"github.com/golang/glog"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// GlogLogger implements Logger on top of glog's info level
type GlogLogger struct{}

// NewGlogLogger creates a logger that writes through glog
func NewGlogLogger() Logger {
	return GlogLogger{}
}

// Printf implements Logger
func (GlogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}
