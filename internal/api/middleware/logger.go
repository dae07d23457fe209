package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// Logger logs every request with its method, path, status and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		// Strip CR/LF from request-controlled values so a crafted path
		// cannot forge log lines.
		clean := strings.NewReplacer("\n", "", "\r", "").Replace
		log.Printf("%s %s %d %s", clean(r.Method), clean(r.URL.Path), ww.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
