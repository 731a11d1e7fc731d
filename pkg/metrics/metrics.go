// Package metrics registra as métricas Prometheus da API, dos painéis e dos agendadores
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "store_finance"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once
	registry     = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status",
		},
		[]string{"method", "route", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	dashboardLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_loads_total",
			Help:      "Total de carregamentos de painel por resultado",
		},
		[]string{"dashboard", "result"},
	)
	dashboardLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dashboard_load_duration_seconds",
			Help:      "Duração das leituras paralelas e agregação dos painéis em segundos",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"dashboard"},
	)

	jobRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Total de execuções dos agendadores por resultado",
		},
		[]string{"job", "result"},
	)
	jobLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Duração das execuções dos agendadores em segundos",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120},
		},
		[]string{"job"},
	)
)

// Init registra as métricas da aplicação e as métricas padrão do processo
func Init() {
	registerOnce.Do(func() {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			httpRequests,
			httpLatency,
			dashboardLoads,
			dashboardLatency,
			jobRuns,
			jobLatency,
		)
	})
}

// Handler expõe as métricas no formato Prometheus
func Handler() http.Handler {
	Init()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// ObserveHTTP registra uma requisição finalizada
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDashboard registra o carregamento de um painel iniciado em start
func ObserveDashboard(dashboard string, start time.Time, err error) {
	dashboardLoads.WithLabelValues(dashboard, result(err)).Inc()
	dashboardLatency.WithLabelValues(dashboard).Observe(time.Since(start).Seconds())
}

// ObserveJob registra uma execução de agendador iniciada em start
func ObserveJob(job string, start time.Time, err error) {
	jobRuns.WithLabelValues(job, result(err)).Inc()
	jobLatency.WithLabelValues(job).Observe(time.Since(start).Seconds())
}
