package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
)

func TestPrometheusMetrics(t *testing.T) {
	t.Run("Counts ledger operations", func(t *testing.T) {
		// Arrange
		m, err := NewPrometheusMetrics(prometheus.NewRegistry())
		require.NoError(t, err)

		// Act
		m.LedgerOperation("usage", "applied", 15)
		m.LedgerOperation("usage", "applied", 10)
		m.LedgerOperation("usage", "rejected", 30)

		// Assert
		assert.Equal(t, 2.0, testutil.ToFloat64(m.ledgerOps.WithLabelValues("usage", "applied")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerOps.WithLabelValues("usage", "rejected")))
		assert.Equal(t, 25.0, testutil.ToFloat64(m.ledgerCredits.WithLabelValues("usage")))
	})

	t.Run("Generation outcomes and latency", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m, err := NewPrometheusMetrics(reg)
		require.NoError(t, err)

		m.GenerationOutcome("image", "fulfilled")
		m.ObserveGeneration("image", 3*core.Second)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("image", "fulfilled")))
		assert.Equal(t, 1, testutil.CollectAndCount(m.generationTime))
	})

	t.Run("Double registration fails", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := NewPrometheusMetrics(reg)
		require.NoError(t, err)

		_, err = NewPrometheusMetrics(reg)
		assert.Error(t, err)
	})

	t.Run("Noop", func(t *testing.T) {
		m := NewNoopMetrics()
		assert.NotPanics(t, func() {
			m.LedgerOperation("usage", "applied", 1)
			m.GenerationOutcome("text", "rolled_back")
			m.ObserveGeneration("text", core.Second)
		})
	})
}
