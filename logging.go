package matvcol

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger is the leveled logger systems and operators write to. Fetch it
// with App.Logger; install one with LoggingModule.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger prints "[prefix] LEVEL: message" lines. Debug and info go
// to one writer, warnings and errors to the other. Debug lines are dropped
// unless debug is enabled. Safe for concurrent use.
type DefaultLogger struct {
	debug  atomic.Bool
	prefix string
	info   *log.Logger
	alert  *log.Logger
}

// NewDefaultLogger logs to stdout and stderr.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLoggerTo(prefix, debug, os.Stdout, os.Stderr)
}

func NewLoggerTo(prefix string, debug bool, out, errOut io.Writer) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	l := &DefaultLogger{
		prefix: prefix,
		info:   log.New(out, "", flags),
		alert:  log.New(errOut, "", flags),
	}
	l.debug.Store(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool { return l.debug.Load() }

func (l *DefaultLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }

func (l *DefaultLogger) emit(dst *log.Logger, level, format string, args []any) {
	msg := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		dst.Printf("%s: %s", level, msg)
		return
	}
	dst.Printf("[%s] %s: %s", l.prefix, level, msg)
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.DebugEnabled() {
		l.emit(l.info, "DEBUG", format, args)
	}
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.emit(l.info, "INFO", format, args)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.emit(l.alert, "WARN", format, args)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.emit(l.alert, "ERROR", format, args)
}

// LoggingModule installs a DefaultLogger as a resource.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewDefaultLogger(m.Prefix, m.Debug))
}

// nopLogger discards everything.
type nopLogger struct{}

func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) DebugEnabled() bool    { return false }
func (nopLogger) SetDebug(bool)         {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Logger returns the installed Logger resource, or a no-op logger when
// none is installed. Never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}
