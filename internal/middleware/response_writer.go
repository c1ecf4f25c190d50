package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
)

const defaultStatus = http.StatusOK

// SafeResponseWriter records the status and size of a response. The header is
// written at most once, and nothing is written after the request context ends.
//
//nolint:containedctx //This ResponseWriter wrapper requires a context to gracefully handle canceled or timed-out requests.
type SafeResponseWriter struct {
	http.ResponseWriter
	ctx context.Context

	status        int
	headerWritten bool
	mu            sync.Mutex
	bytesSent     atomic.Int64
}

var _ http.ResponseWriter = (*SafeResponseWriter)(nil)

func (w *SafeResponseWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ctx.Err(); err != nil {
		warnCtxErr(err)
		return
	}

	w.writeHeaderLocked(statusCode)
}

func (w *SafeResponseWriter) writeHeaderLocked(statusCode int) {
	if w.headerWritten {
		slog.Warn("superfluous WriteHeader() call ignored", "status", statusCode, "sent", w.status)
		return
	}

	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.headerWritten = true
}

func (w *SafeResponseWriter) Write(b []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		warnCtxErr(err)
		return 0, err
	}

	w.mu.Lock()
	if !w.headerWritten {
		w.writeHeaderLocked(defaultStatus)
	}
	w.mu.Unlock()

	n, err := w.ResponseWriter.Write(b)
	w.bytesSent.Add(int64(n))
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *SafeResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *SafeResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *SafeResponseWriter) BytesWritten() int {
	return int(w.bytesSent.Load())
}

func NewSafeResponseWriter(ctx context.Context, w http.ResponseWriter) *SafeResponseWriter {
	return &SafeResponseWriter{
		ResponseWriter: w,
		ctx:            ctx,
		status:         defaultStatus,
	}
}

func warnCtxErr(err error) {
	slog.Warn("context error occurred", "error", err)
}
