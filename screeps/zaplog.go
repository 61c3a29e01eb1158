package screeps

import "go.uber.org/zap"

// zapLogger adapts a zap.SugaredLogger to the Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a zap.SugaredLogger for use with SetLogger.
func NewZapLogger(sugar *zap.SugaredLogger) Logger {
	return &zapLogger{sugar: sugar}
}

func (l *zapLogger) Debug(msg string, fields map[string]any) { l.sugar.Debugw(msg, flatten(fields)...) }
func (l *zapLogger) Info(msg string, fields map[string]any)  { l.sugar.Infow(msg, flatten(fields)...) }
func (l *zapLogger) Warn(msg string, fields map[string]any)  { l.sugar.Warnw(msg, flatten(fields)...) }
func (l *zapLogger) Error(msg string, fields map[string]any) { l.sugar.Errorw(msg, flatten(fields)...) }

func flatten(fields map[string]any) []any {
	kv := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}
