package logging

import (
	"fmt"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// Retryable adapts an osdu.Logger to go-retryablehttp's LeveledLogger.
type Retryable struct {
	Logger osdu.Logger
}

func (r Retryable) Error(msg string, keysAndValues ...interface{}) {
	r.Logger.Error(msg, fields(keysAndValues))
}

func (r Retryable) Info(msg string, keysAndValues ...interface{}) {
	r.Logger.Info(msg, fields(keysAndValues))
}

func (r Retryable) Debug(msg string, keysAndValues ...interface{}) {
	r.Logger.Debug(msg, fields(keysAndValues))
}

func (r Retryable) Warn(msg string, keysAndValues ...interface{}) {
	r.Logger.Warn(msg, fields(keysAndValues))
}

// fields pairs up alternating keys and values. A trailing key without a
// value is kept under "extra".
func fields(keysAndValues []interface{}) map[string]interface{} {
	if len(keysAndValues) == 0 {
		return nil
	}

	result := make(map[string]interface{}, len(keysAndValues)/2+1)

	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			result["extra"] = key

			break
		}

		result[key] = keysAndValues[i+1]
	}

	return result
}
