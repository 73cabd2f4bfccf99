package api

import (
	"net/http"

	"github.com/google/uuid"

	"vpn-instance-scheduler/types"
)

const invocationHeader = "X-Invocation-Id"

func (api *Server) invocationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job := r.Header.Get("X-Cloudscheduler-Jobname")
		invocationID := uuid.NewString()
		w.Header().Set(invocationHeader, invocationID)

		logCtx := api.logger.With().Str("invocation_id", invocationID)
		if job != "" {
			logCtx = logCtx.Str("scheduler_job", job)
		}
		logger := logCtx.Logger()
		logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("Invocation received")

		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

// recoverMiddleware keeps the response contract intact when a handler panics.
// A failure body is only written if the handler had not started its response.
func (api *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: w}
		defer func() {
			if rec := recover(); rec != nil {
				api.logger.Error().Interface("panic", rec).Str("path", r.URL.Path).Bool("response_started", tw.wroteHeader).Msg("Handler panicked")
				if !tw.wroteHeader {
					_ = writeJSON(w, http.StatusInternalServerError, types.Failed("Internal error"))
				}
			}
		}()
		next.ServeHTTP(tw, r)
	})
}

type trackingWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *trackingWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
