package middleware

import (
	"log"
	"net/http"

	"triviaapi/utils"
)

// trackingWriter records whether the handler has started writing, so the
// recoverer never appends an error body to a partially written response.
type trackingWriter struct {
	http.ResponseWriter
	wrote bool
}

func (w *trackingWriter) WriteHeader(statusCode int) {
	w.wrote = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

// Recover converts handler panics into the standard 500 JSON error body.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: w}
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				if !tw.wrote {
					utils.SendServerError(tw)
				}
			}
		}()
		next.ServeHTTP(tw, r)
	})
}
