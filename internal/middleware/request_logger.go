package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer, ok := w.(*SafeResponseWriter)
		if !ok {
			writer = NewSafeResponseWriter(r.Context(), w)
		}

		start := time.Now()
		next.ServeHTTP(writer, r)
		duration := time.Since(start)

		slog.Info("incoming request",
			"user_agent", r.UserAgent(),
			"origin", r.Header.Get("Origin"),
			"ip", getIPAddress(r),
			"method", r.Method,
			"url", r.URL.String(),
			"proto", r.Proto,
			slog.Int("status_code", writer.Status()),
			slog.Int("bytes", writer.BytesWritten()),
			"duration", duration,
		)
	})
}

// getIPAddress extracts the client's IP address from the request.
func getIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
