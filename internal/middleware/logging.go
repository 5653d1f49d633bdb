package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	reqctx "devops-info/service/internal/context"
	"devops-info/service/internal/logging"
)

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.statusCode = code
		r.written = true
		r.ResponseWriter.WriteHeader(code)
	}
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.statusCode = http.StatusOK
		r.written = true
	}
	return r.ResponseWriter.Write(b)
}

// AccessLog logs one line per request once the handler has returned.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		// chi fills in the pattern while routing, so read it afterwards.
		endpoint := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}

		logging.WithRequest(reqctx.GetRequestID(r.Context()), endpoint).Infow("HTTP request completed",
			"method", r.Method,
			"status_code", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", ClientIP(r),
			"user_agent", r.UserAgent(),
		)
	})
}

// ClientIP returns the peer address of the connection without the port.
// Forwarding headers are ignored. Returns "" when the address is unset.
func ClientIP(r *http.Request) string {
	if r.RemoteAddr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
