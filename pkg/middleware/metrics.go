package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/comunica-ads-api/internal/metrics"
)

// Metrics registra contagem, duração e requisições em andamento por rota
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			endpoint := normalizeEndpoint(r.URL.Path)
			method := r.Method

			m.IncRequestsInFlight(method, endpoint)
			defer m.DecRequestsInFlight(method, endpoint)

			wrapped := newResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			m.RecordHTTPRequest(method, endpoint, strconv.Itoa(wrapped.statusCode), time.Since(start).Seconds())
		})
	}
}

// responseWriter captura o status code escrito pelo handler
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// normalizeEndpoint limita os labels às rotas conhecidas
func normalizeEndpoint(path string) string {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	switch {
	case path == "/", path == "/healthcheck", path == "/metrics", path == "/dashboard",
		path == "/api/campaigns", path == "/api/dashboard", path == "/api/dashboard/export.xlsx":
		return path
	case strings.HasPrefix(path, "/v1/cron"):
		return "/v1/cron"
	default:
		return "other"
	}
}
