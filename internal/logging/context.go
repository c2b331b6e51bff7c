package logging

import "context"

type contextKey int

const logDataKey contextKey = iota

// WithLogData stores a LogData on the context.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey, logData)
}

// GetLogData returns the request's LogData, or nil when there is none.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey).(*LogData)
	return logData
}
