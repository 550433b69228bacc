// =============================================================================
// Cargo Receipt Generator - Receipt Record
// =============================================================================
//
// This module defines the single entity in the system: the in-progress
// receipt record a cargo desk clerk fills in. Exactly one record exists per
// editing session; it is seeded with defaults when the session starts,
// mutated field by field, and discarded when the session ends.
//
// Numeric fields (pieces, weight) are held as a Quantity with an explicit
// empty sentinel: a cleared input is "empty", never zero and never a
// malformed string. All other fields store raw text verbatim - values are
// deliberately not validated against the reference catalog, so a stale
// selection survives a catalog change.
//
// =============================================================================

package receipt

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// QUANTITY TYPE
// =============================================================================

// Quantity is a non-negative numeric field value with an explicit empty
// sentinel. The zero Quantity is the empty sentinel.
type Quantity struct {
	// Valid reports whether a number is present. A cleared input leaves
	// Valid false.
	Valid bool

	// Value is the numeric value. Only meaningful when Valid is true.
	Value float64
}

// QuantityOf returns a valid Quantity holding the given value.
func QuantityOf(v float64) Quantity {
	return Quantity{Valid: true, Value: v}
}

// ParseQuantity coerces raw field input into a Quantity. Empty input yields
// the empty sentinel; anything else must parse as a non-negative number.
func ParseQuantity(raw string) (Quantity, error) {
	if raw == "" {
		return Quantity{}, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("not a number: %q", raw)
	}
	if v < 0 {
		return Quantity{}, fmt.Errorf("must not be negative: %q", raw)
	}
	return Quantity{Valid: true, Value: v}, nil
}

// String renders the quantity the way the receipt shows it: whole numbers
// without a decimal point, the empty sentinel as an empty string.
func (q Quantity) String() string {
	if !q.Valid {
		return ""
	}
	return strconv.FormatFloat(q.Value, 'f', -1, 64)
}

// MarshalYAML renders the empty sentinel as null so round-tripped record
// files keep the distinction between "empty" and zero.
func (q Quantity) MarshalYAML() (interface{}, error) {
	if !q.Valid {
		return nil, nil
	}
	return q.Value, nil
}

// UnmarshalYAML accepts a number, a numeric string, or null/empty.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*q = Quantity{}
		return nil
	}
	parsed, err := ParseQuantity(node.Value)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// =============================================================================
// RECORD STRUCTURE
// =============================================================================

// Record is the flat receipt record. Field names in yaml tags match the
// record files the desk edits by hand.
type Record struct {
	// CompanyName is fixed for the session and shown in the receipt footer.
	CompanyName string `yaml:"company_name"`

	// Airline is the airline value from the reference catalog.
	Airline string `yaml:"airline"`

	// MawbNo is the Master Air Waybill number, the primary shipment
	// tracking identifier.
	MawbNo string `yaml:"mawb_no"`

	// ShipmentType is the shipment type label.
	ShipmentType string `yaml:"shipment_type"`

	// Commodity is the commodity label.
	Commodity string `yaml:"commodity"`

	// Pieces is the piece count. Empty sentinel when cleared.
	Pieces Quantity `yaml:"pieces"`

	// Weight is the shipment weight in kilograms. Fractional values are
	// allowed. Empty sentinel when cleared.
	Weight Quantity `yaml:"weight"`

	// Shipper is the shipper address block, multi-line.
	Shipper string `yaml:"shipper"`

	// Consignee is the consignee address block, multi-line.
	Consignee string `yaml:"consignee"`

	// FlightNo is the flight number, e.g. "KU-302".
	FlightNo string `yaml:"flight_no"`

	// FlightDate is the flight date as an ISO 8601 date string.
	FlightDate string `yaml:"flight_date"`

	// DepartureTime and ArrivalTime are time-of-day strings, e.g. "14:30".
	DepartureTime string `yaml:"departure_time"`
	ArrivalTime   string `yaml:"arrival_time"`

	// DepartureAirport and ArrivalAirport are IATA codes forming the
	// flight sector.
	DepartureAirport string `yaml:"departure_airport"`
	ArrivalAirport   string `yaml:"arrival_airport"`

	// BookingStatus is one of the closed booking status set.
	BookingStatus string `yaml:"booking_status"`
}

// DefaultCompanyName is used when the configuration does not override it.
const DefaultCompanyName = "Global Logistics"

// Seed returns the default record a session starts from. The flight date is
// today's wall-clock date.
func Seed(companyName string) Record {
	if companyName == "" {
		companyName = DefaultCompanyName
	}
	return Record{
		CompanyName:      companyName,
		Airline:          "kuwait-airways",
		MawbNo:           "KU-2024-001234",
		ShipmentType:     "General Cargo",
		Commodity:        "Textiles",
		Pieces:           QuantityOf(5),
		Weight:           QuantityOf(150),
		Shipper:          "ABC Textiles Ltd, Karachi Export Zone\nKarachi, Pakistan | Tel: +92-21-12345678",
		Consignee:        "Al-Kuwaitia Trading Co, Salmiya\nKuwait City, Kuwait | Tel: +965-12345678",
		FlightNo:         "KU-302",
		FlightDate:       time.Now().Format("2006-01-02"),
		DepartureTime:    "14:30",
		ArrivalTime:      "17:45",
		DepartureAirport: "KHI",
		ArrivalAirport:   "KWI",
		BookingStatus:    "Booked",
	}
}
