// =============================================================================
// Cargo Receipt Generator - Generate Command
// =============================================================================
//
// This file implements the 'generate' command, which drives the full export
// pipeline:
//
//   1. Load configuration and the reference catalog
//   2. Build the receipt record (seed + optional record file + --set edits)
//   3. Render the receipt surface from the record
//   4. Rasterize the surface to a JPEG image in the output directory
//
// Usage:
//   cargo-receipt generate
//   cargo-receipt generate --set airline=emirates --set mawbNo=EK-2024-000123
//   cargo-receipt generate --record booking.yaml --dry-run
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/globallogistics/cargo-receipt/internal/catalog"
	"github.com/globallogistics/cargo-receipt/internal/config"
	"github.com/globallogistics/cargo-receipt/internal/export"
	"github.com/globallogistics/cargo-receipt/internal/receipt"
	"github.com/globallogistics/cargo-receipt/internal/render"
	"github.com/globallogistics/cargo-receipt/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	// recordFile is an optional YAML file that seeds the receipt record.
	recordFile string

	// setValues holds repeated --set field=value edits applied in order.
	setValues []string

	// dryRun renders the receipt surface but skips rasterization.
	dryRun bool

	// htmlOut optionally writes the rendered surface to a file for inspection.
	htmlOut string

	// outputDir overrides the configured output directory.
	outputDir string

	// saveRecord optionally writes the final record back out as a YAML
	// file reusable with --record.
	saveRecord string
)

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the receipt and export it as a JPEG image",
	Long: `Builds the shipment booking receipt from the seed record, applies any
--set edits and optional record file, renders the receipt document, and
rasterizes it to a JPEG image named {date}_{airline}_{mawb}.jpg.

Field edits use the receipt's field identifiers, for example:
  --set airline=emirates
  --set mawbNo=EK-2024-000123
  --set pieces=12
  --set bookingStatus=Confirmed

Numeric fields (pieces, weight) accept an empty value to clear them.`,
	RunE: runGenerate,
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runGenerate(cmd *cobra.Command, args []string) error {
	// -------------------------------------------------------------------------
	// STEP 1: Load configuration
	// -------------------------------------------------------------------------
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	// Rebuild the logger at the configured level. --verbose still wins.
	if rebuilt, lerr := newLogger(cfg.LogLevel); lerr != nil {
		logger.Warn("Failed to apply configured log level, keeping defaults",
			zap.String("log_level", cfg.LogLevel),
			zap.Error(lerr),
		)
	} else {
		_ = logger.Sync()
		logger = rebuilt
	}

	logger.Debug("Configuration loaded",
		zap.String("config_file", cfgFile),
		zap.String("output_dir", cfg.OutputDir),
	)

	// -------------------------------------------------------------------------
	// STEP 2: Load the reference catalog
	// -------------------------------------------------------------------------
	cat := loadCatalog(cfg)

	// -------------------------------------------------------------------------
	// STEP 3: Build the receipt record
	// -------------------------------------------------------------------------
	seed := receipt.Seed(cfg.CompanyName)

	if recordFile != "" {
		seed, err = receipt.Load(recordFile, seed)
		if err != nil {
			return fmt.Errorf("failed to load record file: %w", err)
		}
		logger.Info("Record file loaded", zap.String("file", recordFile))
	}

	store := receipt.NewStore(seed)

	// -------------------------------------------------------------------------
	// STEP 4: Wire the preview and apply field edits
	// -------------------------------------------------------------------------
	preview, err := render.NewPreview(cat, cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("failed to prepare receipt preview: %w", err)
	}

	store.OnUpdate(func(rec receipt.Record) {
		if _, rerr := preview.Render(rec); rerr != nil {
			logger.Warn("Preview re-render failed", zap.Error(rerr))
		}
	})

	if _, err = preview.Render(store.Get()); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}

	for _, edit := range setValues {
		field, value, perr := parseEdit(edit)
		if perr != nil {
			return perr
		}
		if uerr := store.Update(field, value); uerr != nil {
			return fmt.Errorf("failed to set %s: %w", field, uerr)
		}
		logger.Debug("Field updated", zap.String("field", string(field)))
	}

	if saveRecord != "" {
		if serr := receipt.Save(saveRecord, store.Get()); serr != nil {
			return fmt.Errorf("failed to save record file: %w", serr)
		}
		fmt.Printf("Record written to: %s\n", saveRecord)
	}

	if htmlOut != "" {
		if werr := os.WriteFile(htmlOut, preview.Surface(), 0644); werr != nil {
			return fmt.Errorf("failed to write surface file: %w", werr)
		}
		fmt.Printf("Receipt surface written to: %s\n", htmlOut)
	}

	if dryRun {
		rec := store.Get()
		fmt.Println("Dry run - rasterization skipped")
		fmt.Printf("  Would export: %s\n", export.Filename(time.Now(), rec))
		return nil
	}

	// -------------------------------------------------------------------------
	// STEP 5: Rasterize and export
	// -------------------------------------------------------------------------
	fileManager := utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir)
	if err = fileManager.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	renderer := export.NewChromeRenderer(cfg.Chrome.Bin, cfg.Chrome.NavigationTimeout())
	exporter := export.NewExporter(renderer, fileManager, logger)

	startTime := time.Now()
	result := exporter.Export(cmd.Context(), preview.Surface(), store.Get())
	duration := time.Since(startTime)

	// -------------------------------------------------------------------------
	// STEP 6: Report the result
	// -------------------------------------------------------------------------
	if result.Error != nil {
		fmt.Printf("✗ %v\n", result.Error)
		return result.Error
	}

	if result.Skipped {
		logger.Debug("Export skipped - no rendered surface")
		return nil
	}

	fmt.Println("✓ Receipt exported successfully")
	fmt.Printf("  Output file: %s\n", result.OutputFile)
	if result.ArchiveFile != "" {
		fmt.Printf("  Archived to: %s\n", result.ArchiveFile)
	}
	fmt.Printf("  Duration:    %v\n", duration.Round(time.Millisecond))

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// loadCatalog returns the reference catalog, preferring the configured
// workbook when present and falling back to the built-in lists.
func loadCatalog(cfg *config.Config) *catalog.Catalog {
	if cfg.CatalogWorkbook == "" {
		return catalog.Default()
	}

	if !utils.FileExists(cfg.CatalogWorkbook) {
		logger.Warn("Catalog workbook not found, using built-in catalog",
			zap.String("workbook", cfg.CatalogWorkbook),
		)
		return catalog.Default()
	}

	cat, err := catalog.LoadWorkbook(cfg.CatalogWorkbook)
	if err != nil {
		logger.Warn("Failed to load catalog workbook, using built-in catalog",
			zap.String("workbook", cfg.CatalogWorkbook),
			zap.Error(err),
		)
		return catalog.Default()
	}

	logger.Info("Catalog workbook loaded", zap.String("workbook", cfg.CatalogWorkbook))
	return cat
}

// parseEdit splits a --set argument of the form "field=value" and resolves
// the field identifier.
func parseEdit(edit string) (receipt.Field, string, error) {
	name, value, found := strings.Cut(edit, "=")
	if !found {
		return "", "", fmt.Errorf("invalid --set value %q (expected field=value)", edit)
	}

	field, err := receipt.ParseField(strings.TrimSpace(name))
	if err != nil {
		return "", "", err
	}

	return field, value, nil
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(
		&recordFile,
		"record",
		"r",
		"",
		"YAML record file that seeds the receipt",
	)

	generateCmd.Flags().StringArrayVarP(
		&setValues,
		"set",
		"s",
		nil,
		"Field edit in field=value form (repeatable)",
	)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Render the receipt but skip rasterization",
	)

	generateCmd.Flags().StringVar(
		&saveRecord,
		"save-record",
		"",
		"Write the final record back out as a YAML file",
	)

	generateCmd.Flags().StringVar(
		&htmlOut,
		"html-out",
		"",
		"Write the rendered receipt surface to this file",
	)

	generateCmd.Flags().StringVarP(
		&outputDir,
		"output",
		"o",
		"",
		"Override the configured output directory",
	)
}
