package wmediumd

//
// Prometheus instrumentation (ambient stack)
//
// Metrics is optional: every method tolerates a nil receiver, so an
// Engine built without a Metrics wired in behaves identically to one
// with full instrumentation — observability stays additive and
// non-load-bearing.
//

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every Prometheus collector the engine reports to.
type Metrics struct {
	queueDepth           *prometheus.GaugeVec
	framesDelivered      prometheus.Counter
	droppedUnknownSender prometheus.Counter
	droppedMalformed     prometheus.Counter
	retriesTotal         prometheus.Counter
	transportSendErrors  prometheus.Counter
}

// NewMetrics constructs a Metrics and registers its collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "wmediumd",
			Name:      "queue_depth",
			Help:      "Number of frames currently queued per sending station.",
		}, []string{"station"}),
		framesDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wmediumd",
			Name:      "frames_delivered_total",
			Help:      "Number of cloned frames successfully handed to the transport.",
		}),
		droppedUnknownSender: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wmediumd",
			Name:      "frames_dropped_unknown_sender_total",
			Help:      "Number of incoming frames dropped for an unregistered transmitter.",
		}),
		droppedMalformed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wmediumd",
			Name:      "frames_dropped_malformed_total",
			Help:      "Number of incoming frames dropped for failing validation.",
		}),
		retriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wmediumd",
			Name:      "tx_attempts_total",
			Help:      "Total multi-rate-retry attempts recorded across all deliveries.",
		}),
		transportSendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wmediumd",
			Name:      "transport_send_errors_total",
			Help:      "Number of errors returned by the transport when reporting delivery.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.queueDepth, m.framesDelivered, m.droppedUnknownSender,
			m.droppedMalformed, m.retriesTotal, m.transportSendErrors)
	}
	return m
}

func (m *Metrics) SetQueueDepth(station string, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(station).Set(float64(depth))
}

func (m *Metrics) IncFramesDelivered() {
	if m == nil {
		return
	}
	m.framesDelivered.Inc()
}

func (m *Metrics) IncDroppedUnknownSender() {
	if m == nil {
		return
	}
	m.droppedUnknownSender.Inc()
}

func (m *Metrics) IncDroppedMalformed() {
	if m == nil {
		return
	}
	m.droppedMalformed.Inc()
}

func (m *Metrics) AddRetries(n int) {
	if m == nil {
		return
	}
	m.retriesTotal.Add(float64(n))
}

func (m *Metrics) IncTransportSendErrors() {
	if m == nil {
		return
	}
	m.transportSendErrors.Inc()
}
