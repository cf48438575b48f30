package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info identifies one inbound request. ParentSpanID is the span id the
// caller sent, if any.
type Info struct {
	RequestID    string
	SpanID       string
	ParentSpanID string
}

// GenerateID returns a random 32 character hex id.
func GenerateID() string {
	return randomHex(16)
}

// GenerateSpanID returns a random 16 character hex id.
func GenerateSpanID() string {
	return randomHex(8)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return hex.EncodeToString(b)
}

// WithInfo returns a copy of ctx carrying info.
func WithInfo(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, ctxKeyTrace, info)
}

// FromContext returns the trace info stored in ctx, if any.
func FromContext(ctx context.Context) (Info, bool) {
	if ctx == nil {
		return Info{}, false
	}
	info, ok := ctx.Value(ctxKeyTrace).(Info)
	return info, ok
}

func RequestIDFromContext(ctx context.Context) string {
	info, _ := FromContext(ctx)
	return info.RequestID
}

func SpanIDFromContext(ctx context.Context) string {
	info, _ := FromContext(ctx)
	return info.SpanID
}
