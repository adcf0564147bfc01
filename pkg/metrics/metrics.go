package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// События сессии заезда
const (
	EventCheckinStarted      = "started"
	EventCheckinSubmitted    = "submitted"
	EventCheckinSubmitFailed = "submit_failed"
	EventCheckinCancelled    = "cancelled"
	EventCheckinExpired      = "expired"
)

// Результаты загрузки каталога
const (
	CatalogCacheHit  = "cache_hit"
	CatalogCacheMiss = "cache_miss"
	CatalogError     = "error"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасно вызывать на nil, когда метрики выключены.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	checkinsTotal       *prometheus.CounterVec
	reservationTotal    prometheus.Histogram
	catalogLoadsTotal   *prometheus.CounterVec
}

// New создает метрики и регистрирует их в default registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		checkinsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "checkins_total",
			Help:        "Check-in session events",
			ConstLabels: constLabels,
		}, []string{"event"}),
		reservationTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "reservation_total_amount",
			Help:        "Totals of submitted reservations",
			ConstLabels: constLabels,
			Buckets:     []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
		catalogLoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_loads_total",
			Help:        "Service catalog loads by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.checkinsTotal,
		m.reservationTotal,
		m.catalogLoadsTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// CheckinEvent фиксирует событие сессии заезда
func (m *Metrics) CheckinEvent(event string) {
	if m == nil {
		return
	}
	m.checkinsTotal.WithLabelValues(event).Inc()
}

// ReservationSubmitted фиксирует итоговую сумму отправленного бронирования
func (m *Metrics) ReservationSubmitted(total float64) {
	if m == nil {
		return
	}
	m.reservationTotal.Observe(total)
}

// CatalogLoad фиксирует результат загрузки каталога
func (m *Metrics) CatalogLoad(result string) {
	if m == nil {
		return
	}
	m.catalogLoadsTotal.WithLabelValues(result).Inc()
}
