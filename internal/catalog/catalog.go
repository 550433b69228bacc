// =============================================================================
// Cargo Receipt Generator - Reference Catalog
// =============================================================================
//
// This module holds the fixed reference lists a cargo desk selects from when
// filling in a receipt:
//   - Airlines (machine value + display label)
//   - Origin airports (IATA code + display name)
//   - Destination airports (IATA code + display name)
//   - Shipment types (label is the key)
//   - Commodities (label is the key)
//   - Booking statuses and their rendering styles
//   - Airline logo asset references
//
// The catalog is pure data: no operation mutates it at runtime and no lookup
// ever fails. Unknown statuses resolve to a defined default style and unknown
// airlines resolve to the company placeholder logo.
//
// =============================================================================

package catalog

// =============================================================================
// ENTRY TYPES
// =============================================================================

// Airline is a selectable airline with a stable machine value and a
// human-readable label.
type Airline struct {
	// Value is the stable key, e.g. "kuwait-airways".
	Value string

	// Label is the display name, e.g. "Kuwait Airways".
	Label string
}

// Airport is a selectable airport with its IATA code and display name.
type Airport struct {
	// Code is the three-letter IATA code, e.g. "KHI".
	Code string

	// Name is the display name, e.g. "Karachi (KHI)".
	Name string
}

// Status is a booking lifecycle state. The set of valid statuses is closed.
type Status string

// The booking status lifecycle.
const (
	StatusBooked    Status = "Booked"
	StatusConfirmed Status = "Confirmed"
	StatusDeparted  Status = "Departed"
	StatusLanded    Status = "Landed"
	StatusCancelled Status = "Cancelled"
)

// StatusStyle is the rendering hint for a booking status.
type StatusStyle struct {
	// Chip is the solid class used for the compact status chip.
	Chip string

	// Badge is the composite class used for the full-width receipt badge.
	Badge string
}

// =============================================================================
// CATALOG STRUCTURE
// =============================================================================

// Catalog bundles all reference lists. Lists preserve their defined order so
// selectors render the same sequence every time.
type Catalog struct {
	Airlines            []Airline
	OriginAirports      []Airport
	DestinationAirports []Airport
	ShipmentTypes       []string
	Commodities         []string
}

// Default returns the built-in catalog. The entries mirror the airlines and
// routes the cargo desk actually books.
func Default() *Catalog {
	return &Catalog{
		Airlines: []Airline{
			{Value: "kuwait-airways", Label: "Kuwait Airways"},
			{Value: "qatar-airways", Label: "Qatar Airways"},
			{Value: "dhl-aviation", Label: "DHL Aviation"},
			{Value: "emirates", Label: "Emirates Airlines"},
			{Value: "jazeera-airways", Label: "Jazeera Airways"},
			{Value: "salam-air", Label: "Salam Air"},
			{Value: "sri-lankan", Label: "Sri Lankan Airways"},
		},
		OriginAirports: []Airport{
			{Code: "KHI", Name: "Karachi (KHI)"},
			{Code: "LHE", Name: "Lahore (LHE)"},
			{Code: "ISB", Name: "Islamabad (ISB)"},
			{Code: "PEW", Name: "Peshawar (PEW)"},
			{Code: "MUX", Name: "Multan (MUX)"},
			{Code: "SKT", Name: "Sialkot (SKT)"},
			{Code: "FSD", Name: "Faisalabad (FSD)"},
			{Code: "QTA", Name: "Quetta (QTA)"},
		},
		DestinationAirports: []Airport{
			{Code: "KWI", Name: "Kuwait (KWI)"},
			{Code: "DOH", Name: "Doha (DOH)"},
			{Code: "BAH", Name: "Bahrain (BAH)"},
			{Code: "SHJ", Name: "Sharjah (SHJ)"},
			{Code: "DXB", Name: "Dubai (DXB)"},
			{Code: "RKT", Name: "Ras Al Khaimah (RKT)"},
		},
		ShipmentTypes: []string{
			"General Cargo",
			"Express",
			"Air Mail",
			"Dangerous Goods",
			"Perishables",
			"Live Animals",
			"Pharma & Healthcare",
			"Valuables / VUN",
		},
		Commodities: []string{
			"Perishable Meat",
			"Fresh Vegetables",
			"Electronics",
			"Pharmaceuticals",
			"Textiles",
			"Automotive Parts",
			"Documents",
			"Garments",
			"Seafood",
			"Machinery",
			"Chemicals",
			"Mobile Phones",
		},
	}
}

// =============================================================================
// BOOKING STATUSES
// =============================================================================

// Statuses returns the closed set of booking statuses in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusBooked,
		StatusConfirmed,
		StatusDeparted,
		StatusLanded,
		StatusCancelled,
	}
}

// statusStyles is the rendering hint per status. The zero entry returned for
// unknown statuses is defined below; lookup never fails.
var statusStyles = map[Status]StatusStyle{
	StatusBooked:    {Chip: "bg-slate-500", Badge: "bg-slate-50 border-slate-300 text-slate-700"},
	StatusConfirmed: {Chip: "bg-green-600", Badge: "bg-green-50 border-green-300 text-green-700"},
	StatusDeparted:  {Chip: "bg-purple-600", Badge: "bg-purple-50 border-purple-300 text-purple-700"},
	StatusLanded:    {Chip: "bg-teal-600", Badge: "bg-teal-50 border-teal-300 text-teal-700"},
	StatusCancelled: {Chip: "bg-red-600", Badge: "bg-red-50 border-red-300 text-red-700"},
}

// defaultStatusStyle is returned for any status outside the closed set.
var defaultStatusStyle = StatusStyle{
	Chip:  "bg-gray-500",
	Badge: "bg-gray-50 border-gray-300 text-gray-700",
}

// StyleFor returns the rendering style for a status. A status outside the
// closed set resolves to the defined default style rather than erroring.
func StyleFor(status string) StatusStyle {
	if style, ok := statusStyles[Status(status)]; ok {
		return style
	}
	return defaultStatusStyle
}

// IsValidStatus reports whether the given string is a member of the closed
// booking status set.
func IsValidStatus(status string) bool {
	_, ok := statusStyles[Status(status)]
	return ok
}

// =============================================================================
// AIRLINE LOGO ASSETS
// =============================================================================

// airlineLogos maps an airline value to its logo asset file name. The mapping
// is explicit so no resource path is ever constructed from user input.
var airlineLogos = map[string]string{
	"kuwait-airways":  "kuwait-airways.png",
	"qatar-airways":   "qatar-airways.png",
	"dhl-aviation":    "dhl-aviation.png",
	"emirates":        "emirates.png",
	"jazeera-airways": "jazeera-airways.png",
	"salam-air":       "salam-air.png",
	"sri-lankan":      "sri-lankan.png",
}

// defaultLogo is the company placeholder shown when an airline has no logo
// entry (or the airline field holds a stale value).
const defaultLogo = "logo.png"

// LogoAsset returns the logo asset file name for an airline value, falling
// back to the company placeholder for unknown values.
func LogoAsset(airline string) string {
	if asset, ok := airlineLogos[airline]; ok {
		return asset
	}
	return defaultLogo
}

// =============================================================================
// LOOKUP HELPERS
// =============================================================================

// AirlineLabel resolves an airline value to its display label. Unknown values
// echo back unchanged so the preview still renders something legible.
func (c *Catalog) AirlineLabel(value string) string {
	for _, a := range c.Airlines {
		if a.Value == value {
			return a.Label
		}
	}
	return value
}
