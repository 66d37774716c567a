package logger

import "context"

type (
	// LogCtx holds attributes injected into every record logged with the context.
	LogCtx struct {
		Action   string
		Source   string
		Snapshot string
	}

	logCtxKeyStruct struct{}
)

var logCtxKey = &logCtxKeyStruct{}

func WithAction(ctx context.Context, action string) context.Context {
	lc, _ := ctx.Value(logCtxKey).(LogCtx)
	lc.Action = action
	return context.WithValue(ctx, logCtxKey, lc)
}

// WithSource tags records with the input being ingested, usually a file path.
func WithSource(ctx context.Context, source string) context.Context {
	lc, _ := ctx.Value(logCtxKey).(LogCtx)
	lc.Source = source
	return context.WithValue(ctx, logCtxKey, lc)
}

func WithSnapshot(ctx context.Context, name string) context.Context {
	lc, _ := ctx.Value(logCtxKey).(LogCtx)
	lc.Snapshot = name
	return context.WithValue(ctx, logCtxKey, lc)
}
