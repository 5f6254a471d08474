// Package logging adapts logging backends to the osdu.Logger interface.
package logging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/juju/loggo/v2"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// DefaultModule is the loggo module used when none is given.
const DefaultModule = "osdu"

// Loggo writes osdu.Logger calls to a loggo module logger.
type Loggo struct {
	logger loggo.Logger
}

// NewLoggo returns a Logger backed by the named loggo module.
func NewLoggo(module string) *Loggo {
	if module == "" {
		module = DefaultModule
	}

	return &Loggo{logger: loggo.GetLogger(module)}
}

// Debug implements osdu.Logger.
func (l *Loggo) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debugf("%s", format(msg, fields))
}

// Info implements osdu.Logger.
func (l *Loggo) Info(msg string, fields map[string]interface{}) {
	l.logger.Infof("%s", format(msg, fields))
}

// Warn implements osdu.Logger.
func (l *Loggo) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warningf("%s", format(msg, fields))
}

// Error implements osdu.Logger.
func (l *Loggo) Error(msg string, fields map[string]interface{}) {
	l.logger.Errorf("%s", format(msg, fields))
}

// Noop discards everything.
type Noop struct{}

func (Noop) Debug(string, map[string]interface{}) {}
func (Noop) Info(string, map[string]interface{})  {}
func (Noop) Warn(string, map[string]interface{})  {}
func (Noop) Error(string, map[string]interface{}) {}

// OrNoop returns logger, or a Noop logger when it is nil.
func OrNoop(logger osdu.Logger) osdu.Logger {
	if logger == nil {
		return Noop{}
	}

	return logger
}

// format renders msg followed by the fields as sorted key=value pairs.
func format(msg string, fields map[string]interface{}) string {
	if len(fields) == 0 {
		return msg
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	builder.WriteString(msg)

	for _, key := range keys {
		_, _ = fmt.Fprintf(&builder, " %s=%v", key, fields[key])
	}

	return builder.String()
}
