package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globallogistics/cargo-receipt/internal/catalog"
	"github.com/globallogistics/cargo-receipt/internal/receipt"
)

func TestProject(t *testing.T) {
	cat := catalog.Default()
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	t.Run("maps the seed record to its slots", func(t *testing.T) {
		rec := receipt.Seed("Global Logistics")

		view := Project(rec, cat, "", now)

		assert.Equal(t, "Global Logistics", view.CompanyName)
		assert.Equal(t, "Kuwait Airways", view.AirlineLabel)
		assert.Equal(t, "KU-2024-001234", view.MawbNo)
		assert.Equal(t, "General Cargo", view.ShipmentType)
		assert.Equal(t, "Textiles", view.Commodity)
		assert.Equal(t, "5", view.Pieces)
		assert.Equal(t, "150 Kg", view.Weight)
		assert.Equal(t, "KU-302", view.FlightNo)
		assert.Equal(t, "KHI → KWI", view.Sector)
		assert.Equal(t, "Booked", view.Status)
		assert.Equal(t, "bg-slate-50 border-slate-300 text-slate-700", view.BadgeClass)
		assert.Equal(t, 2024, view.Year)
		assert.Equal(t, "6/1/2024", view.GeneratedOn)
	})

	t.Run("empty quantities render as empty slots", func(t *testing.T) {
		rec := receipt.Seed("")
		rec.Pieces = receipt.Quantity{}
		rec.Weight = receipt.Quantity{}

		view := Project(rec, cat, "", now)

		assert.Equal(t, "", view.Pieces)
		assert.Equal(t, "", view.Weight, "no unit suffix without a value")
	})

	t.Run("unknown airline echoes its value and uses the placeholder logo", func(t *testing.T) {
		rec := receipt.Seed("")
		rec.Airline = "acme-air"

		view := Project(rec, cat, "/assets", now)

		assert.Equal(t, "acme-air", view.AirlineLabel)
		assert.True(t, strings.HasSuffix(view.AirlineLogoSrc, "/logo.png"))
	})

	t.Run("unknown status renders with the default badge style", func(t *testing.T) {
		rec := receipt.Seed("")
		rec.BookingStatus = "In Transit"

		view := Project(rec, cat, "", now)

		assert.Equal(t, "In Transit", view.Status)
		assert.Equal(t, "bg-gray-50 border-gray-300 text-gray-700", view.BadgeClass)
	})

	t.Run("projection is pure", func(t *testing.T) {
		rec := receipt.Seed("")
		a := Project(rec, cat, "", now)
		b := Project(rec, cat, "", now)
		assert.Equal(t, a, b)
	})
}

func TestPreview(t *testing.T) {
	cat := catalog.Default()

	t.Run("surface is nil before the first render", func(t *testing.T) {
		p, err := NewPreview(cat, "")
		require.NoError(t, err)
		assert.Nil(t, p.Surface())
	})

	t.Run("render produces the receipt surface", func(t *testing.T) {
		p, err := NewPreview(cat, "")
		require.NoError(t, err)

		surface, err := p.Render(receipt.Seed("Global Logistics"))
		require.NoError(t, err)

		html := string(surface)
		assert.Contains(t, html, "KU-2024-001234")
		assert.Contains(t, html, "Kuwait Airways")
		assert.Contains(t, html, "150 Kg")
		assert.Contains(t, html, "Global Logistics")
		assert.Equal(t, surface, p.Surface())
	})

	t.Run("render replaces the previous surface", func(t *testing.T) {
		p, err := NewPreview(cat, "")
		require.NoError(t, err)

		rec := receipt.Seed("")
		_, err = p.Render(rec)
		require.NoError(t, err)

		rec.MawbNo = "EK-2024-000777"
		_, err = p.Render(rec)
		require.NoError(t, err)

		html := string(p.Surface())
		assert.Contains(t, html, "EK-2024-000777")
		assert.NotContains(t, html, "KU-2024-001234")
	})
}
