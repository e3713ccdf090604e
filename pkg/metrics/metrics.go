package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	PayoutsGenerated   *prometheus.CounterVec
	PayoutsDisbursed   *prometheus.CounterVec
	PayoutAmountPaid   prometheus.Counter
	TransferDuration   prometheus.Histogram
	LicensesSold       *prometheus.CounterVec
	UsersRegistered    prometheus.Counter
	LoginAttempts      *prometheus.CounterVec

	// Database metrics
	DBConnections prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		PayoutsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payouts_generated_total",
			Help: "Payout records created by the generator, by status",
		}, []string{"status"}),
		PayoutsDisbursed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payouts_disbursed_total",
			Help: "Disbursement attempts, by outcome",
		}, []string{"outcome"}),
		PayoutAmountPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payout_amount_paid_usd_total",
			Help: "Total USD successfully disbursed to producers",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payout_transfer_duration_seconds",
			Help:    "External transfer API call latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		LicensesSold: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "licenses_sold_total",
			Help: "Completed license sales, by license type",
		}, []string{"license_type"}),
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of registered users",
		}),
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login attempts, by result",
		}, []string{"result"}),

		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}),
	}
}

// HTTPMiddleware returns an Echo middleware that records request metrics
func (m *Metrics) HTTPMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
