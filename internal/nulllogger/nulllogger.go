// Package nulllogger provides a wmediumd.Logger that discards everything.
package nulllogger

import "github.com/go-wmediumd/wmediumd"

// NullLogger is a wmediumd.Logger that does not emit logs.
type NullLogger struct{}

func (nl *NullLogger) Debug(message string)          {}
func (nl *NullLogger) Debugf(format string, v ...any) {}
func (nl *NullLogger) Info(message string)            {}
func (nl *NullLogger) Infof(format string, v ...any)  {}
func (nl *NullLogger) Warn(message string)            {}
func (nl *NullLogger) Warnf(format string, v ...any)  {}

var _ wmediumd.Logger = &NullLogger{}
