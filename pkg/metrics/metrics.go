package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках
// вызывающий код может передавать nil без дополнительных проверок
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec

	slotsGenerated       *prometheus.CounterVec
	slotsPurged          *prometheus.CounterVec
	reservationsCreated  *prometheus.CounterVec
	reservationConflicts *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		slotsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_slots_generated_total",
			Help: "Total number of concrete time slots inserted by the generator",
		}, []string{"service"}),

		slotsPurged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_slots_purged_total",
			Help: "Total number of concrete time slots removed by the retention sweep",
		}, []string{"service"}),

		reservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_reservations_created_total",
			Help: "Total number of created reservations",
		}, []string{"service"}),

		reservationConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_reservation_conflicts_total",
			Help: "Total number of rejected double bookings",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.slotsGenerated,
		m.slotsPurged,
		m.reservationsCreated,
		m.reservationConflicts,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues(m.serviceName).Set(float64(stats.OpenConnections))
	m.dbInUseConns.WithLabelValues(m.serviceName).Set(float64(stats.InUse))
	m.dbIdleConns.WithLabelValues(m.serviceName).Set(float64(stats.Idle))
}

// AddSlotsGenerated увеличивает счетчик сгенерированных слотов
func (m *Metrics) AddSlotsGenerated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.slotsGenerated.WithLabelValues(m.serviceName).Add(float64(n))
}

// AddSlotsPurged увеличивает счетчик удаленных устаревших слотов
func (m *Metrics) AddSlotsPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.slotsPurged.WithLabelValues(m.serviceName).Add(float64(n))
}

// IncReservationsCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncReservationsCreated() {
	if m == nil {
		return
	}
	m.reservationsCreated.WithLabelValues(m.serviceName).Inc()
}

// IncReservationConflicts увеличивает счетчик отклоненных двойных бронирований
func (m *Metrics) IncReservationConflicts() {
	if m == nil {
		return
	}
	m.reservationConflicts.WithLabelValues(m.serviceName).Inc()
}
