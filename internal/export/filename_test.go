package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/globallogistics/cargo-receipt/internal/receipt"
)

func TestFilename(t *testing.T) {
	today := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)

	t.Run("date, airline and mawb joined with underscores", func(t *testing.T) {
		rec := receipt.Record{Airline: "emirates", MawbNo: "EK-9"}
		assert.Equal(t, "2024-06-01_emirates_EK-9.jpg", Filename(today, rec))
	})

	t.Run("empty airline falls back to unknown", func(t *testing.T) {
		rec := receipt.Record{MawbNo: "EK-9"}
		assert.Equal(t, "2024-06-01_unknown_EK-9.jpg", Filename(today, rec))
	})

	t.Run("empty mawb falls back to draft", func(t *testing.T) {
		rec := receipt.Record{Airline: "emirates"}
		assert.Equal(t, "2024-06-01_emirates_draft.jpg", Filename(today, rec))
	})

	t.Run("both fallbacks together", func(t *testing.T) {
		assert.Equal(t, "2024-06-01_unknown_draft.jpg", Filename(today, receipt.Record{}))
	})
}
