// Package metrics holds the prometheus collectors for the hashing and
// validation flows.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "useraccount"

// Outcome label values.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"

	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeUnknown = "unknown"
)

type Collector struct {
	HashRequests     *prometheus.CounterVec
	HashInFlight     prometheus.Gauge
	ValidateRequests *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		HashRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hash_requests_total",
			Help:      "Hash submissions by outcome.",
		}, []string{"outcome"}),
		HashInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hash_in_flight",
			Help:      "Hash submissions awaiting completion.",
		}),
		ValidateRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validate_requests_total",
			Help:      "Validate calls by outcome.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(c.HashRequests, c.HashInFlight, c.ValidateRequests)
	}
	return c
}

func (c *Collector) HashOutcome(outcome string) {
	c.HashRequests.WithLabelValues(outcome).Inc()
}

func (c *Collector) ValidateOutcome(outcome string) {
	c.ValidateRequests.WithLabelValues(outcome).Inc()
}
