package httpapi

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

func loggingMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request", "method", r.Method, "uri", r.URL.RequestURI(), "duration", time.Since(start))
	})
}

func healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// NewServer wires the handler, health check and request logging.
func NewServer(addr string, handler *Handler, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	for _, prefix := range []string{"/departments", "/roles", "/employees", "/employees/"} {
		mux.Handle(prefix, handler)
	}
	mux.HandleFunc("/healthcheck", healthcheck)

	return &http.Server{
		Addr:              addr,
		Handler:           loggingMiddleware(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
