package wmediumd

//
// Logging
//

import apexlog "github.com/apex/log"

// Logger is the logging interface the engine depends on. Shaped so
// that any apex/log-backed logger, or a NullLogger, satisfies it
// without an adapter.
type Logger interface {
	Debugf(format string, v ...any)
	Debug(message string)
	Infof(format string, v ...any)
	Info(message string)
	Warnf(format string, v ...any)
	Warn(message string)
}

// ApexLogger adapts github.com/apex/log's package-level logger (or any
// *apexlog.Logger / apexlog.Interface) to Logger.
type ApexLogger struct {
	Entry apexlog.Interface
}

var _ Logger = &ApexLogger{}

// NewApexLogger wraps entry, or apexlog.Log if entry is nil.
func NewApexLogger(entry apexlog.Interface) *ApexLogger {
	if entry == nil {
		entry = apexlog.Log
	}
	return &ApexLogger{Entry: entry}
}

func (a *ApexLogger) Debugf(format string, v ...any) { a.Entry.Debugf(format, v...) }
func (a *ApexLogger) Debug(message string)           { a.Entry.Debug(message) }
func (a *ApexLogger) Infof(format string, v ...any)  { a.Entry.Infof(format, v...) }
func (a *ApexLogger) Info(message string)            { a.Entry.Info(message) }
func (a *ApexLogger) Warnf(format string, v ...any)  { a.Entry.Warnf(format, v...) }
func (a *ApexLogger) Warn(message string)            { a.Entry.Warn(message) }
