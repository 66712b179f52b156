package devserver

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/starterkit/internal/common"
	"github.com/dmitrijs2005/starterkit/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// requestIDMiddleware echoes the caller's X-Request-ID, or assigns one.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(common.RequestIDHeaderName, id)
		}
		w.Header().Set(common.RequestIDHeaderName, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger logging.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
				"request_id", r.Header.Get(common.RequestIDHeaderName),
				"authorized", r.Header.Get(common.AuthorizationHeaderName) != "",
			)
		})
	}
}
