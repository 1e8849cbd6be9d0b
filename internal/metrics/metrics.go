// Package metrics prometheus метрики сервиса.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// Операции с баллами
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "points_operations_total",
			Help: "Total charge/use operations by result",
		},
		[]string{"type", "result"}, // CHARGE|USE, ok|rejected|invalid|error
	)
	LockWaitSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "points_lock_wait_seconds",
			Help:    "Time spent waiting for the per-user lock",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), //nolint:mnd
		},
		[]string{"type"},
	)
	LockHandles = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "points_lock_handles",
			Help: "Number of per-user locks allocated",
		},
	)

	registerOnce sync.Once
)

// Handler обработчик для /metrics.
var Handler = promhttp.Handler

// Init регистрирует метрики в prometheus.DefaultRegisterer. Повторные вызовы ничего не делают.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			OperationsTotal,
			LockWaitSeconds,
			LockHandles,
		)
	})
}

func ObserveOperation(txType, result string) {
	OperationsTotal.WithLabelValues(txType, result).Inc()
}

func ObserveLockWait(txType string, d time.Duration) {
	LockWaitSeconds.WithLabelValues(txType).Observe(d.Seconds())
}
