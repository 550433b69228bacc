// =============================================================================
// Cargo Receipt Generator - Output File Naming
// =============================================================================

package export

import (
	"fmt"
	"time"

	"github.com/globallogistics/cargo-receipt/internal/receipt"
)

// Fallbacks used when the record has no airline or MAWB yet.
const (
	fallbackAirline = "unknown"
	fallbackMawb    = "draft"
)

// Filename derives the output file name for a receipt export.
//
// Create filename with format: date_airline_mawb. The date is the wall-clock
// date at the moment of export, not the record's flight date.
//
// The derivation is pure: the same date and record always yield the same
// name, e.g. "2024-06-01_emirates_EK-9.jpg".
func Filename(today time.Time, rec receipt.Record) string {
	airline := rec.Airline
	if airline == "" {
		airline = fallbackAirline
	}
	mawb := rec.MawbNo
	if mawb == "" {
		mawb = fallbackMawb
	}
	return fmt.Sprintf("%s_%s_%s.jpg", today.Format("2006-01-02"), airline, mawb)
}
