package httpx

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

// Logger is the subset of a structured logger the middleware needs.
type Logger interface {
	Debugf(format string, args ...any)
}

// CommonMiddleware wraps next with the header handling every wifiradar
// HTTP surface uses. With no origins configured any origin is allowed.
func CommonMiddleware(next http.Handler, origins ...string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return c.Handler(next)
}

// RequestLogging returns a middleware that writes one debug line per
// request, shaped to drop into mux.Router.Use.
func RequestLogging(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debugf("%s %s took %s", r.Method, r.URL.Path, time.Since(start))
		})
	}
}
