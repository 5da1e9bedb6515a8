package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("bookme", reg)

	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/bookings", "200").Inc()
	m.HTTPErrorsTotal.WithLabelValues("not_found").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/bookings", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPErrorsTotal.WithLabelValues("not_found")))

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			var service string
			for _, label := range metric.GetLabel() {
				if label.GetName() == "service" {
					service = label.GetValue()
				}
			}
			assert.Equal(t, "bookme", service, family.GetName())
		}
	}
}

func TestNewWithRegisterer_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWithRegisterer("bookme", reg)

	assert.Panics(t, func() {
		NewWithRegisterer("bookme", reg)
	})
}
