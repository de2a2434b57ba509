package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - коллекторы Prometheus для загрузки пожаров и пакетов уведомлений
type Metrics struct {
	BatchRuns     *prometheus.CounterVec // метки: outcome={success,load_failed}
	BatchDuration prometheus.Histogram
	ActiveFires   prometheus.Gauge
	Subscribers   prometheus.Gauge

	// Итоги доставки по каждому подписчику
	Notifications *prometheus.CounterVec // метки: channel={sms,webhook,telegram,none}, outcome={sent,failed,skipped,no_match}

	FiresIngested  prometheus.Counter
	IngestFailures prometheus.Counter
}

const namespace = "wildfire_notifier"

func newCollectors() *Metrics {
	return &Metrics{
		BatchRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_runs_total",
			Help:      "Notification batch runs by outcome.",
		}, []string{"outcome"}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Duration of a complete load-match-dispatch batch.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ActiveFires: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_fires",
			Help:      "Active fires seen by the most recent batch.",
		}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "subscribers",
			Help:      "Subscribers loaded by the most recent batch.",
		}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Per-subscriber notification outcomes by channel.",
		}, []string{"channel", "outcome"}),
		FiresIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fires_ingested_total",
			Help:      "Fire records stored from the upstream feed.",
		}),
		IngestFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_failures_total",
			Help:      "Failed polls of the upstream fire feed.",
		}),
	}
}

// NewMetrics создаёт метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newCollectors()
	prometheus.MustRegister(
		m.BatchRuns,
		m.BatchDuration,
		m.ActiveFires,
		m.Subscribers,
		m.Notifications,
		m.FiresIngested,
		m.IngestFailures,
	)
	return m
}

// NewMetricsForTesting создаёт незарегистрированные метрики.
// Тесты могут создавать их сколько угодно без паники о повторной регистрации.
func NewMetricsForTesting() *Metrics {
	return newCollectors()
}
