// Package recovery converts handler panics into clean 500 responses.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/mindful-labs/mood-tracker/internal/api/respond"
)

// Middleware keeps a panicking handler from taking down the service; the
// request fails with a JSON 500 and everything else keeps serving.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote", r.RemoteAddr).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")

				respond.WriteInternalError(w, "unexpected failure")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
