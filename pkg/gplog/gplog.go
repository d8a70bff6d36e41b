// Package gplog is geodesic's leveled logging wrapper around op/go-logging,
// shared by the CLI, the loaders and the renderer so their diagnostics
// (asset, mesh and scene loading, render completion) share one format and
// one verbosity knob.
package gplog

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a verbosity threshold passed to SetLevel.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the interface every geodesic component logs through.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a named logger, e.g. gplog.New("bvh").
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects logger output.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	withFormat := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(withFormat)
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the verbosity threshold for every named logger.
func SetLevel(level Level) {
	var l logging.Level
	switch level {
	case Debug:
		l = logging.DEBUG
	case Info:
		l = logging.INFO
	case Notice:
		l = logging.NOTICE
	case Warning:
		l = logging.WARNING
	case Error:
		l = logging.ERROR
	}
	leveledBackend.SetLevel(l, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
