package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/engine"
)

func withSlot(t *testing.T, capacity, booked int) *domain.RuleSet {
	t.Helper()

	raw := baseRaw()
	raw.Availability.Slots = []domain.RawAvailabilitySlot{
		slot("2024-12-20", "18:00", "23:00", capacity, booked),
	}

	return mustNormalize(t, raw)
}

func TestResolveAvailability(t *testing.T) {
	tests := []struct {
		name          string
		capacity      int
		booked        int
		guests        int
		wantStatus    domain.AvailabilityStatus
		wantRemaining int
	}{
		{name: "sold out", capacity: 10, booked: 10, guests: 1, wantStatus: domain.StatusUnavailable, wantRemaining: 0},
		{name: "zero capacity", capacity: 0, booked: 0, guests: 1, wantStatus: domain.StatusUnavailable, wantRemaining: 0},
		{name: "not enough for party", capacity: 10, booked: 8, guests: 3, wantStatus: domain.StatusUnavailable, wantRemaining: 2},
		{name: "exactly enough", capacity: 10, booked: 7, guests: 3, wantStatus: domain.StatusLimited, wantRemaining: 3},
		{name: "leftover within threshold", capacity: 10, booked: 4, guests: 3, wantStatus: domain.StatusLimited, wantRemaining: 6},
		{name: "leftover above threshold", capacity: 10, booked: 3, guests: 3, wantStatus: domain.StatusAvailable, wantRemaining: 7},
		{name: "plenty", capacity: 50, booked: 0, guests: 2, wantStatus: domain.StatusAvailable, wantRemaining: 50},
	}

	e := engine.New(engine.DefaultLowStockThreshold)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := withSlot(t, tt.capacity, tt.booked)

			res, err := e.ResolveAvailability(rs, request(tt.guests))

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantRemaining, res.RemainingCapacity)
		})
	}
}

func TestResolveAvailability_NoMatchingSlot(t *testing.T) {
	e := engine.New(engine.DefaultLowStockThreshold)
	rs := mustNormalize(t, baseRaw())

	req := request(1)
	req.Time = clock("23:00")

	res, err := e.ResolveAvailability(rs, req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnavailable, res.Status)
	assert.Zero(t, res.RemainingCapacity)

	req = request(1)
	req.Date = date("2024-12-21")

	res, err = e.ResolveAvailability(rs, req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnavailable, res.Status)
}

func TestResolveAvailability_CustomThreshold(t *testing.T) {
	rs := withSlot(t, 10, 4)

	res, err := engine.New(0).ResolveAvailability(rs, request(3))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, res.Status)
}

func TestResolveAvailability_DoesNotMutateBooked(t *testing.T) {
	e := engine.New(engine.DefaultLowStockThreshold)
	rs := withSlot(t, 10, 4)

	first, err := e.ResolveAvailability(rs, request(3))
	require.NoError(t, err)
	second, err := e.ResolveAvailability(rs, request(3))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 4, rs.Availability.Slots[0].Booked)
}

func TestResolveAvailability_RejectsZeroGuests(t *testing.T) {
	e := engine.New(engine.DefaultLowStockThreshold)

	_, err := e.ResolveAvailability(withSlot(t, 10, 0), request(0))

	assert.True(t, domain.IsInvalidRequest(err))
}
