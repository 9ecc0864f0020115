package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector_RegistersAll(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.HashOutcome(OutcomeCompleted)
	c.ValidateOutcome(OutcomeUnknown)
	c.HashInFlight.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"useraccount_hash_requests_total",
		"useraccount_hash_in_flight",
		"useraccount_validate_requests_total",
	}, names)
}

func TestCollector_CountsByOutcome(t *testing.T) {
	c := NewCollector(nil)

	c.HashOutcome(OutcomeCompleted)
	c.HashOutcome(OutcomeCompleted)
	c.HashOutcome(OutcomeFailed)
	c.ValidateOutcome(OutcomeValid)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HashRequests.WithLabelValues(OutcomeCompleted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HashRequests.WithLabelValues(OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ValidateRequests.WithLabelValues(OutcomeValid)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.ValidateRequests.WithLabelValues(OutcomeInvalid)))
}

func TestNewCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)
	assert.Panics(t, func() { NewCollector(reg) })
}
