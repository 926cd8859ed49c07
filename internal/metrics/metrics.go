package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	LogsCreated Counter
	LogsDeleted Counter

	GrpcRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

type counterSpec struct {
	name   string
	help   string
	labels []string
}

var (
	logsCreatedSpec = counterSpec{
		name:   "logs_created_total",
		help:   "Number of log entries written",
		labels: []string{"type", "post_type"},
	}
	logsDeletedSpec = counterSpec{
		name:   "logs_deleted_total",
		help:   "Number of log deletions by outcome",
		labels: []string{"status"},
	}
	grpcRequestsSpec = counterSpec{
		name:   "grpc_requests_total",
		help:   "Number of gRPC requests",
		labels: []string{"method", "status"},
	}
)

func newPrometheusCounter(reg prometheus.Registerer, spec counterSpec) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: spec.name,
			Help: spec.help,
		}, spec.labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

// Collector exposes the underlying vector, mostly for tests.
func (p *PrometheusCounter) Collector() *prometheus.CounterVec {
	return p.counter
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		LogsCreated:  newPrometheusCounter(reg, logsCreatedSpec),
		LogsDeleted:  newPrometheusCounter(reg, logsDeletedSpec),
		GrpcRequests: newPrometheusCounter(reg, grpcRequestsSpec),
	}
}

// New registers the counters in the default registry served on /metrics.
func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}
