// =============================================================================
// Cargo Receipt Generator - Catalog Command
// =============================================================================
//
// This file implements the 'catalog' command, which prints the reference
// catalog used by the receipt form: airlines, airports, shipment types,
// commodities, and the closed set of booking statuses.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/globallogistics/cargo-receipt/internal/catalog"
	"github.com/globallogistics/cargo-receipt/internal/config"
	"github.com/globallogistics/cargo-receipt/pkg/utils"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the reference catalog (airlines, airports, statuses, ...)",
	Long: `Prints the reference lists the receipt form draws from. Field edits are
free-form for most fields; the catalog documents the values the cargo desk
normally selects, and the closed set of booking statuses.`,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cat := catalog.Default()
	if cfg.CatalogWorkbook != "" && utils.FileExists(cfg.CatalogWorkbook) {
		if loaded, lerr := catalog.LoadWorkbook(cfg.CatalogWorkbook); lerr == nil {
			cat = loaded
		}
	}

	fmt.Println("=== Airlines ===")
	for _, a := range cat.Airlines {
		fmt.Printf("  %-20s %s\n", a.Value, a.Label)
	}

	fmt.Println()
	fmt.Println("=== Origin Airports ===")
	for _, a := range cat.OriginAirports {
		fmt.Printf("  %-6s %s\n", a.Code, a.Name)
	}

	fmt.Println()
	fmt.Println("=== Destination Airports ===")
	for _, a := range cat.DestinationAirports {
		fmt.Printf("  %-6s %s\n", a.Code, a.Name)
	}

	fmt.Println()
	fmt.Println("=== Shipment Types ===")
	for _, t := range cat.ShipmentTypes {
		fmt.Printf("  %s\n", t)
	}

	fmt.Println()
	fmt.Println("=== Commodities ===")
	for _, c := range cat.Commodities {
		fmt.Printf("  %s\n", c)
	}

	fmt.Println()
	fmt.Println("=== Booking Statuses ===")
	for _, s := range catalog.Statuses() {
		fmt.Printf("  %s\n", s)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
