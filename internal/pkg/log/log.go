package log

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const contextKeyRequestID = "request_id"

// WithRequestID stores a request id in the context so log lines emitted deeper
// in the call chain can be correlated with the inbound request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func emit(label func(a ...interface{}) string, tag, reqID, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if reqID != "" {
		fmt.Printf("%s [req_id=%s] %s\n", label(tag), reqID, msg)
		return
	}
	fmt.Printf("%s %s\n", label(tag), msg)
}

// Info logs an informational message.
func Info(format string, a ...interface{}) {
	emit(color.New(color.FgWhite, color.BgGreen).SprintFunc(), "[INFO]", "", format, a...)
}

// InfoWithContext logs an informational message tagged with the request id.
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(color.New(color.FgWhite, color.BgGreen).SprintFunc(), "[INFO]", requestID(ctx), format, a...)
}

// Warn logs a warning.
func Warn(format string, a ...interface{}) {
	emit(color.New(color.FgWhite, color.BgYellow).SprintFunc(), "[WARN]", "", format, a...)
}

// WarnWithContext logs a warning tagged with the request id.
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(color.New(color.FgWhite, color.BgYellow).SprintFunc(), "[WARN]", requestID(ctx), format, a...)
}

// Error logs an error.
func Error(format string, a ...interface{}) {
	emit(color.New(color.FgRed).SprintFunc(), "[ERROR]", "", format, a...)
}

// ErrorWithContext logs an error tagged with the request id.
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(color.New(color.FgRed).SprintFunc(), "[ERROR]", requestID(ctx), format, a...)
}

// Dump pretty-prints arbitrary values for debugging.
func Dump(a ...interface{}) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s %s", cyan("[DUMP]"), spew.Sdump(a...))
}
