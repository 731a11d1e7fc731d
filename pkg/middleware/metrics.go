package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/store-finance-api/pkg/metrics"
)

// Metrics registra contagem e duração das requisições usando o padrão da rota
// como rótulo, evitando um rótulo por ID
func Metrics(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.ObserveHTTP(r.Method, route, lrw.statusCode, time.Since(startTime))
		})
	}
}
