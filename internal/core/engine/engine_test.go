package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/engine"
)

func TestAssembleQuote_BasePrice(t *testing.T) {
	e := engine.New(engine.DefaultLowStockThreshold)
	rs := mustNormalize(t, baseRaw())

	q, err := e.AssembleQuote(rs, request(2))

	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyAED, q.Currency)
	assert.Equal(t, domain.RuleBase, q.AppliedRule)
	assertDecimal(t, "299", q.UnitPrice)
	assertDecimal(t, "598", q.TotalPrice)
	assert.Equal(t, domain.StatusAvailable, q.AvailabilityStatus)
	assert.Equal(t, 50, q.RemainingCapacity)
}

func TestAssembleQuote_SoldOutSlotIsUnavailable(t *testing.T) {
	e := engine.New(engine.DefaultLowStockThreshold)

	q, err := e.AssembleQuote(withSlot(t, 10, 10), request(1))

	assert.Nil(t, q)
	assert.True(t, domain.IsUnavailable(err), "got %v", err)
}

func TestAssembleQuote_LowStockIsLimited(t *testing.T) {
	e := engine.New(3)

	q, err := e.AssembleQuote(withSlot(t, 10, 7), request(3))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusLimited, q.AvailabilityStatus)
	assert.Equal(t, 3, q.RemainingCapacity)
}

func TestAssembleQuote_InvalidRequestWinsOverAvailability(t *testing.T) {
	e := engine.New(engine.DefaultLowStockThreshold)

	_, err := e.AssembleQuote(withSlot(t, 10, 10), request(0))

	assert.True(t, domain.IsInvalidRequest(err))
	assert.False(t, domain.IsUnavailable(err))
}

func TestNew_NegativeThresholdFallsBackToDefault(t *testing.T) {
	assert.Equal(t, engine.DefaultLowStockThreshold, engine.New(-1).LowStockThreshold())
}
