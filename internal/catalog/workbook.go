// =============================================================================
// Cargo Receipt Generator - Catalog Workbook Loader
// =============================================================================
//
// The desk keeps its airline and route lists in a spreadsheet, so the
// built-in catalog can be overridden from an XLSX workbook. Each reference
// list lives on its own sheet:
//
//   | Sheet               | Column A | Column B       |
//   |---------------------|----------|----------------|
//   | Airlines            | value    | label          |
//   | OriginAirports      | code     | name           |
//   | DestinationAirports | code     | name           |
//   | ShipmentTypes       | label    |                |
//   | Commodities         | label    |                |
//
// Row 1 of each sheet is a header and is skipped. A missing sheet leaves the
// corresponding built-in list untouched; rows with an empty key column are
// skipped. Booking statuses and their styles are part of the closed status
// set and cannot be overridden from the workbook.
//
// =============================================================================

package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names recognised in a catalog workbook.
const (
	sheetAirlines            = "Airlines"
	sheetOriginAirports      = "OriginAirports"
	sheetDestinationAirports = "DestinationAirports"
	sheetShipmentTypes       = "ShipmentTypes"
	sheetCommodities         = "Commodities"
)

// LoadWorkbook returns the built-in catalog with any lists overridden from
// the given XLSX workbook.
//
// PARAMETERS:
//   - workbookPath: The path to the catalog workbook.
//
// RETURNS:
//   - The merged catalog.
//   - An error if the workbook cannot be opened. Sheet-level problems are
//     not errors; absent or empty sheets simply keep the built-in list.
func LoadWorkbook(workbookPath string) (*Catalog, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog workbook: %w", err)
	}
	defer f.Close()

	cat := Default()

	if airlines := readPairSheet(f, sheetAirlines); len(airlines) > 0 {
		cat.Airlines = make([]Airline, len(airlines))
		for i, p := range airlines {
			cat.Airlines[i] = Airline{Value: p[0], Label: p[1]}
		}
	}
	if airports := readPairSheet(f, sheetOriginAirports); len(airports) > 0 {
		cat.OriginAirports = toAirports(airports)
	}
	if airports := readPairSheet(f, sheetDestinationAirports); len(airports) > 0 {
		cat.DestinationAirports = toAirports(airports)
	}
	if labels := readLabelSheet(f, sheetShipmentTypes); len(labels) > 0 {
		cat.ShipmentTypes = labels
	}
	if labels := readLabelSheet(f, sheetCommodities); len(labels) > 0 {
		cat.Commodities = labels
	}

	return cat, nil
}

// readPairSheet reads a two-column sheet into (key, label) pairs, skipping
// the header row and any row with an empty key. A missing label falls back
// to the key so the entry still renders.
func readPairSheet(f *excelize.File, sheet string) [][2]string {
	rows, err := f.GetRows(sheet)
	if err != nil {
		// Sheet does not exist in this workbook.
		return nil
	}

	var pairs [][2]string
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		if len(row) == 0 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		label := key
		if len(row) > 1 && strings.TrimSpace(row[1]) != "" {
			label = strings.TrimSpace(row[1])
		}
		pairs = append(pairs, [2]string{key, label})
	}
	return pairs
}

// readLabelSheet reads a single-column sheet of labels, skipping the header
// row and empty rows.
func readLabelSheet(f *excelize.File, sheet string) []string {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil
	}

	var labels []string
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if label == "" {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// toAirports converts (code, name) pairs into Airport entries.
func toAirports(pairs [][2]string) []Airport {
	airports := make([]Airport, len(pairs))
	for i, p := range pairs {
		airports[i] = Airport{Code: p[0], Name: p[1]}
	}
	return airports
}
