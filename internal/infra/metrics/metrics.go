package metrics

import (
	"time"

	"hyperlocal/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hyperlocal"

// Metrics holds the delivery and follow-up collectors.
type Metrics struct {
	deliveryAttempts   *prometheus.CounterVec
	recordsPersisted   prometheus.Counter
	persistFailures    prometheus.Counter
	routeDuration      prometheus.Histogram
	routeRecipients    prometheus.Histogram
	followUpAdvances   *prometheus.CounterVec
	followUpScans      *prometheus.CounterVec
	followUpScanTime   prometheus.Histogram
	dispatchTasks      *prometheus.CounterVec
	dispatchQueueDepth prometheus.Gauge
}

// NewRegistry creates the process registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers all collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		deliveryAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "delivery_attempts_total",
				Help:      "Channel delivery attempts by outcome",
			},
			[]string{"channel", "status"},
		),
		recordsPersisted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_records_persisted_total",
			Help:      "Notification records written after a successful delivery",
		}),
		persistFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_persist_failures_total",
			Help:      "Delivered notifications whose record could not be written",
		}),
		routeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_duration_seconds",
			Help:      "Wall time of one routing call",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		routeRecipients: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_recipients",
			Help:      "Audience size per routing call",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		followUpAdvances: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "followup_stage_advances_total",
				Help:      "Committed follow-up stage transitions by target stage",
			},
			[]string{"stage"},
		),
		followUpScans: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "followup_scans_total",
				Help:      "Follow-up scan cycles by result",
			},
			[]string{"result"},
		),
		followUpScanTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "followup_scan_duration_seconds",
			Help:      "Wall time of one follow-up scan cycle",
			Buckets:   prometheus.DefBuckets,
		}),
		dispatchTasks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_tasks_total",
				Help:      "Background dispatcher tasks by result",
			},
			[]string{"task", "result"},
		),
		dispatchQueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dispatch_queue_depth",
			Help:      "Tasks waiting in the background dispatcher queue",
		}),
	}
}

func (m *Metrics) ObserveDelivery(outcome entity.DeliveryOutcome) {
	m.deliveryAttempts.WithLabelValues(string(outcome.Channel), string(outcome.Status)).Inc()
}

func (m *Metrics) ObservePersist(err error) {
	if err != nil {
		m.persistFailures.Inc()

		return
	}
	m.recordsPersisted.Inc()
}

func (m *Metrics) ObserveRoute(recipients int, elapsed time.Duration) {
	m.routeRecipients.Observe(float64(recipients))
	m.routeDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveStageAdvance(stage string) {
	m.followUpAdvances.WithLabelValues(stage).Inc()
}

// ObserveScan records one scan; result is "ok", "error" or "locked".
func (m *Metrics) ObserveScan(result string, elapsed time.Duration) {
	m.followUpScans.WithLabelValues(result).Inc()
	if result != "locked" {
		m.followUpScanTime.Observe(elapsed.Seconds())
	}
}

// ObserveDispatch records a dispatcher task; result is "done", "rejected" or "panic".
func (m *Metrics) ObserveDispatch(task, result string) {
	m.dispatchTasks.WithLabelValues(task, result).Inc()
}

func (m *Metrics) SetDispatchQueueDepth(depth int) {
	m.dispatchQueueDepth.Set(float64(depth))
}
