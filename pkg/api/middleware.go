package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/auth"
)

// authenticate resolves the caller from the x-api-key header and stores the
// identity on the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := h.Auth.Authenticate(r.Header.Get(auth.HeaderName))
		if err != nil {
			h.fail(w, r, err)
			return
		}

		h.Logger.Debug("Authenticated request",
			"request_id", middleware.GetReqID(r.Context()),
			"user_id", id.UserID,
			"is_admin", id.IsAdmin,
		)
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.Logger.Info("Request completed",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
