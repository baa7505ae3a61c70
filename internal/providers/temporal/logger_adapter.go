package temporal

import (
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// zapAdapter routes Temporal SDK log output through the shared zap
// logger so worker and workflow logs land in the same stream as the
// rest of the service.
type zapAdapter struct {
	base *zap.Logger
}

// NewZapLoggerAdapter wraps a zap logger as a Temporal log.Logger
func NewZapLoggerAdapter(base *zap.Logger) log.Logger {
	return &zapAdapter{base: base}
}

func (a *zapAdapter) Debug(msg string, keyvals ...interface{}) {
	a.base.Debug(msg, keyvalFields(keyvals)...)
}

func (a *zapAdapter) Info(msg string, keyvals ...interface{}) {
	a.base.Info(msg, keyvalFields(keyvals)...)
}

func (a *zapAdapter) Warn(msg string, keyvals ...interface{}) {
	a.base.Warn(msg, keyvalFields(keyvals)...)
}

func (a *zapAdapter) Error(msg string, keyvals ...interface{}) {
	a.base.Error(msg, keyvalFields(keyvals)...)
}

// keyvalFields converts Temporal's alternating key/value slice into zap
// fields. A trailing key without a value is dropped, as are non-string
// keys.
func keyvalFields(keyvals []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	return fields
}
