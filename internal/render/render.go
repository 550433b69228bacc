// =============================================================================
// Cargo Receipt Generator - Receipt Preview Renderer
// =============================================================================
//
// This module turns the current record into the receipt's visual surface in
// two steps:
//
//   1. Project: a pure mapping from the record to a View, the fixed set of
//      visual slots the receipt shows (shipment block, shipper/consignee
//      block, flight block, status badge). The projection has no error
//      conditions - every record value, however malformed, renders as text.
//   2. Render: the View is executed against the embedded HTML template to
//      produce the renderable surface handed to the export pipeline.
//
// The preview keeps the last rendered surface; the export step refuses to
// run before the first render pass has completed.
//
// =============================================================================

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/globallogistics/cargo-receipt/internal/catalog"
	"github.com/globallogistics/cargo-receipt/internal/receipt"
)

//go:embed templates/receipt.html.tmpl
var templateFS embed.FS

// =============================================================================
// VIEW STRUCTURE
// =============================================================================

// View is the fixed set of visual slots on the receipt. Every slot is plain
// text except the badge style classes, which come from the catalog's status
// style mapping.
type View struct {
	// Header.
	CompanyName    string
	AirlineLabel   string
	AirlineLogoSrc string
	CompanyLogoSrc string

	// Shipment block.
	MawbNo       string
	ShipmentType string
	Commodity    string
	Pieces       string
	Weight       string

	// Shipper / consignee block, verbatim multi-line text.
	Shipper   string
	Consignee string

	// Flight block.
	FlightNo      string
	FlightDate    string
	Status        string
	DepartureTime string
	ArrivalTime   string
	Sector        string

	// Status badge style classes.
	BadgeClass string

	// Footer.
	Year        int
	GeneratedOn string
}

// =============================================================================
// PROJECTION
// =============================================================================

// Project deterministically maps a record to its View. Pure: no side
// effects, no error conditions. The clock is passed in so the footer slots
// stay reproducible under test.
func Project(rec receipt.Record, cat *catalog.Catalog, assetDir string, now time.Time) View {
	weight := ""
	if rec.Weight.Valid {
		weight = rec.Weight.String() + " Kg"
	}

	return View{
		CompanyName:    rec.CompanyName,
		AirlineLabel:   cat.AirlineLabel(rec.Airline),
		AirlineLogoSrc: assetSrc(assetDir, catalog.LogoAsset(rec.Airline)),
		CompanyLogoSrc: assetSrc(assetDir, catalog.LogoAsset("")),

		MawbNo:       rec.MawbNo,
		ShipmentType: rec.ShipmentType,
		Commodity:    rec.Commodity,
		Pieces:       rec.Pieces.String(),
		Weight:       weight,

		Shipper:   rec.Shipper,
		Consignee: rec.Consignee,

		FlightNo:      rec.FlightNo,
		FlightDate:    rec.FlightDate,
		Status:        rec.BookingStatus,
		DepartureTime: rec.DepartureTime,
		ArrivalTime:   rec.ArrivalTime,
		Sector:        rec.DepartureAirport + " → " + rec.ArrivalAirport,

		BadgeClass: catalog.StyleFor(rec.BookingStatus).Badge,

		Year:        now.Year(),
		GeneratedOn: now.Format("1/2/2006"),
	}
}

// assetSrc builds a file URL for a bundled asset, or empty when no asset
// directory is configured (the template then skips the image).
func assetSrc(assetDir, asset string) string {
	if assetDir == "" {
		return ""
	}
	abs, err := filepath.Abs(filepath.Join(assetDir, asset))
	if err != nil {
		return ""
	}
	return "file://" + abs
}

// =============================================================================
// PREVIEW
// =============================================================================

// Preview renders Views into the receipt's HTML surface and keeps the result
// of the last render pass.
type Preview struct {
	tmpl     *template.Template
	cat      *catalog.Catalog
	assetDir string

	// surface is the last rendered document. Nil before the first render.
	surface []byte
}

// NewPreview creates a preview bound to a catalog and an asset directory.
func NewPreview(cat *catalog.Catalog, assetDir string) (*Preview, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/receipt.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt template: %w", err)
	}
	return &Preview{tmpl: tmpl, cat: cat, assetDir: assetDir}, nil
}

// Render projects the record and executes the template, replacing the
// current surface. This is the synchronous re-render triggered after every
// record update.
func (p *Preview) Render(rec receipt.Record) ([]byte, error) {
	view := Project(rec, p.cat, p.assetDir, time.Now())

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	p.surface = buf.Bytes()
	return p.surface, nil
}

// Surface returns the last rendered document, or nil if no render pass has
// completed yet.
func (p *Preview) Surface() []byte {
	return p.surface
}
