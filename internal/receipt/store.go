// =============================================================================
// Cargo Receipt Generator - Receipt Record Store
// =============================================================================
//
// The store exclusively owns the canonical record for the editing session.
// The form surface pushes single-field updates through Update; the preview
// reads snapshots through Get and is re-rendered synchronously after every
// successful update via the registered observer.
//
// Updates are identified by a closed set of field identifiers so a typo in
// an update can never silently grow the record. Each update is atomic with
// respect to the rest of the record: sibling fields are untouched, and a
// rejected update leaves the record exactly as it was.
//
// All mutations happen on one thread of control (discrete input events
// processed one at a time), so the store carries no lock.
//
// =============================================================================

package receipt

import (
	"fmt"

	"github.com/globallogistics/cargo-receipt/internal/catalog"
)

// =============================================================================
// FIELD IDENTIFIERS
// =============================================================================

// Field identifies a single record field in an update. The wire names match
// the form's field names.
type Field string

// The closed set of updatable field identifiers.
const (
	FieldCompanyName      Field = "companyName"
	FieldAirline          Field = "airline"
	FieldMawbNo           Field = "mawbNo"
	FieldShipmentType     Field = "shipmentType"
	FieldCommodity        Field = "commodity"
	FieldPieces           Field = "pieces"
	FieldWeight           Field = "weight"
	FieldShipper          Field = "shipper"
	FieldConsignee        Field = "consignee"
	FieldFlightNo         Field = "flightNo"
	FieldFlightDate       Field = "flightDate"
	FieldDepartureTime    Field = "departureTime"
	FieldArrivalTime      Field = "arrivalTime"
	FieldDepartureAirport Field = "departureAirport"
	FieldArrivalAirport   Field = "arrivalAirport"
	FieldBookingStatus    Field = "bookingStatus"
)

// fields is the closed identifier set used by ParseField.
var fields = map[Field]bool{
	FieldCompanyName:      true,
	FieldAirline:          true,
	FieldMawbNo:           true,
	FieldShipmentType:     true,
	FieldCommodity:        true,
	FieldPieces:           true,
	FieldWeight:           true,
	FieldShipper:          true,
	FieldConsignee:        true,
	FieldFlightNo:         true,
	FieldFlightDate:       true,
	FieldDepartureTime:    true,
	FieldArrivalTime:      true,
	FieldDepartureAirport: true,
	FieldArrivalAirport:   true,
	FieldBookingStatus:    true,
}

// ParseField resolves a wire name to a field identifier.
//
// RETURNS:
//   - The field identifier.
//   - An error if the name is not in the closed set.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !fields[f] {
		return "", fmt.Errorf("unknown field: %q", name)
	}
	return f, nil
}

// IsNumeric reports whether the field coerces its input to a Quantity.
func (f Field) IsNumeric() bool {
	return f == FieldPieces || f == FieldWeight
}

// =============================================================================
// STORE
// =============================================================================

// Store owns the canonical receipt record for one editing session.
type Store struct {
	record Record

	// observer is invoked synchronously after every successful update.
	// Nil until registered.
	observer func(Record)
}

// NewStore creates a store seeded with the given record.
func NewStore(seed Record) *Store {
	return &Store{record: seed}
}

// Get returns a snapshot of the current record. No side effects.
func (s *Store) Get() Record {
	return s.record
}

// OnUpdate registers the observer notified after each successful update.
// The preview registers here so it re-renders on every mutation.
func (s *Store) OnUpdate(fn func(Record)) {
	s.observer = fn
}

// Update applies one field's new value.
//
// NORMALIZATION:
//   - Numeric fields (pieces, weight): empty input coerces to the empty
//     sentinel; non-empty input must parse as a number.
//   - bookingStatus must be a member of the closed status set.
//   - companyName is fixed for the session and cannot be updated.
//   - All other fields store the raw text verbatim. Catalog membership is
//     deliberately not checked.
//
// A failed update returns an error and leaves the record unchanged.
func (s *Store) Update(field Field, raw string) error {
	if !fields[field] {
		return fmt.Errorf("unknown field: %q", field)
	}

	switch field {
	case FieldCompanyName:
		return fmt.Errorf("field %q is read-only", field)

	case FieldPieces:
		q, err := ParseQuantity(raw)
		if err != nil {
			return fmt.Errorf("invalid value for %q: %w", field, err)
		}
		s.record.Pieces = q

	case FieldWeight:
		q, err := ParseQuantity(raw)
		if err != nil {
			return fmt.Errorf("invalid value for %q: %w", field, err)
		}
		s.record.Weight = q

	case FieldBookingStatus:
		if !catalog.IsValidStatus(raw) {
			return fmt.Errorf("invalid booking status: %q", raw)
		}
		s.record.BookingStatus = raw

	case FieldAirline:
		s.record.Airline = raw
	case FieldMawbNo:
		s.record.MawbNo = raw
	case FieldShipmentType:
		s.record.ShipmentType = raw
	case FieldCommodity:
		s.record.Commodity = raw
	case FieldShipper:
		s.record.Shipper = raw
	case FieldConsignee:
		s.record.Consignee = raw
	case FieldFlightNo:
		s.record.FlightNo = raw
	case FieldFlightDate:
		s.record.FlightDate = raw
	case FieldDepartureTime:
		s.record.DepartureTime = raw
	case FieldArrivalTime:
		s.record.ArrivalTime = raw
	case FieldDepartureAirport:
		s.record.DepartureAirport = raw
	case FieldArrivalAirport:
		s.record.ArrivalAirport = raw
	}

	if s.observer != nil {
		s.observer(s.record)
	}
	return nil
}
