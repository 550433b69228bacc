package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ReferenceLists(t *testing.T) {
	cat := Default()

	t.Run("airlines in fixed order", func(t *testing.T) {
		require.Len(t, cat.Airlines, 7)
		assert.Equal(t, Airline{Value: "kuwait-airways", Label: "Kuwait Airways"}, cat.Airlines[0])
		assert.Equal(t, Airline{Value: "sri-lankan", Label: "Sri Lankan Airways"}, cat.Airlines[6])
	})

	t.Run("origin airports", func(t *testing.T) {
		require.Len(t, cat.OriginAirports, 8)
		assert.Equal(t, "KHI", cat.OriginAirports[0].Code)
		assert.Equal(t, "Karachi (KHI)", cat.OriginAirports[0].Name)
	})

	t.Run("destination airports", func(t *testing.T) {
		require.Len(t, cat.DestinationAirports, 6)
		assert.Equal(t, "KWI", cat.DestinationAirports[0].Code)
		assert.Equal(t, "RKT", cat.DestinationAirports[5].Code)
	})

	t.Run("shipment types", func(t *testing.T) {
		require.Len(t, cat.ShipmentTypes, 8)
		assert.Equal(t, "General Cargo", cat.ShipmentTypes[0])
		assert.Contains(t, cat.ShipmentTypes, "Valuables / VUN")
	})

	t.Run("commodities", func(t *testing.T) {
		require.Len(t, cat.Commodities, 12)
		assert.Equal(t, "Perishable Meat", cat.Commodities[0])
		assert.Contains(t, cat.Commodities, "Textiles")
	})
}

func TestStatuses_LifecycleOrder(t *testing.T) {
	got := Statuses()
	want := []Status{StatusBooked, StatusConfirmed, StatusDeparted, StatusLanded, StatusCancelled}
	assert.Equal(t, want, got)
}

func TestStyleFor(t *testing.T) {
	t.Run("known statuses resolve to their style", func(t *testing.T) {
		confirmed := StyleFor("Confirmed")
		assert.Equal(t, "bg-green-600", confirmed.Chip)
		assert.Equal(t, "bg-green-50 border-green-300 text-green-700", confirmed.Badge)

		cancelled := StyleFor("Cancelled")
		assert.Equal(t, "bg-red-600", cancelled.Chip)
	})

	t.Run("unknown status resolves to the defined default", func(t *testing.T) {
		got := StyleFor("In Transit")
		assert.Equal(t, "bg-gray-500", got.Chip)
		assert.Equal(t, "bg-gray-50 border-gray-300 text-gray-700", got.Badge)
	})

	t.Run("empty status resolves to the defined default", func(t *testing.T) {
		assert.Equal(t, defaultStatusStyle, StyleFor(""))
	})
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, IsValidStatus(string(s)), "status %q should be valid", s)
	}

	assert.False(t, IsValidStatus("booked"), "status membership is case-sensitive")
	assert.False(t, IsValidStatus("Delivered"))
	assert.False(t, IsValidStatus(""))
}

func TestLogoAsset(t *testing.T) {
	assert.Equal(t, "emirates.png", LogoAsset("emirates"))
	assert.Equal(t, "kuwait-airways.png", LogoAsset("kuwait-airways"))

	// Unknown and empty values fall back to the company placeholder.
	assert.Equal(t, "logo.png", LogoAsset("acme-air"))
	assert.Equal(t, "logo.png", LogoAsset(""))
}

func TestAirlineLabel(t *testing.T) {
	cat := Default()

	assert.Equal(t, "Emirates Airlines", cat.AirlineLabel("emirates"))

	// A value outside the catalog echoes back unchanged so the preview
	// still renders something legible.
	assert.Equal(t, "acme-air", cat.AirlineLabel("acme-air"))
}
