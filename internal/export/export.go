// =============================================================================
// Cargo Receipt Generator - Export Pipeline
// =============================================================================
//
// This module orchestrates the one-shot export of the rendered receipt
// surface into a JPEG artifact:
//
//   1. Precondition: a rendered surface must exist. Without one the export
//      is a silent no-op - not an error, just a skip.
//   2. The surface is written to a temporary file and handed to the
//      injected Renderer for rasterization.
//   3. The artifact is written to the output directory under the derived
//      filename and optionally archived.
//
// FAILURE SEMANTICS:
//   Any failure during capture, encoding, or delivery is caught here,
//   logged with full detail for diagnostics, recorded in the error log,
//   and surfaced as one generic failure. It never corrupts the in-memory
//   record and never affects a later export attempt.
//
// =============================================================================

package export

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/globallogistics/cargo-receipt/internal/receipt"
	"github.com/globallogistics/cargo-receipt/pkg/utils"
)

// ErrExportFailed is the generic failure surfaced to the user. The detailed
// cause goes to the diagnostic log only.
var ErrExportFailed = errors.New("failed to generate receipt image")

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one export.
type Result struct {
	// OutputFile is the path to the generated JPEG.
	// Empty if the export failed or was skipped.
	OutputFile string

	// ArchiveFile is the path to the archival copy, when archival is on.
	ArchiveFile string

	// Skipped indicates the export was a no-op because no rendered surface
	// was available.
	Skipped bool

	// Success indicates the artifact was produced.
	Success bool

	// Error contains the generic failure if the export failed.
	Error error

	// CaptureTime is the time spent rasterizing.
	CaptureTime time.Duration
}

// =============================================================================
// EXPORTER
// =============================================================================

// Exporter runs the export pipeline. Edits to the record while an export is
// in flight do not cancel it; the capture reflects the surface as it was
// when the capture ran.
type Exporter struct {
	renderer Renderer
	files    *utils.FileManager
	logger   *zap.Logger

	// now is the export clock, injectable for tests.
	now func() time.Time
}

// NewExporter creates an exporter.
func NewExporter(renderer Renderer, files *utils.FileManager, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		renderer: renderer,
		files:    files,
		logger:   logger,
		now:      time.Now,
	}
}

// Export rasterizes the given surface and delivers the JPEG artifact under
// the derived filename.
//
// PARAMETERS:
//   - ctx: Bounds the capture.
//   - surface: The rendered HTML surface. Nil or empty means the preview
//     has not completed a render pass; the export then skips.
//   - rec: The record snapshot used for filename derivation.
func (e *Exporter) Export(ctx context.Context, surface []byte, rec receipt.Record) Result {
	if len(surface) == 0 {
		// No renderable surface yet; skip without a user-facing error.
		e.logger.Debug("export skipped: no rendered surface")
		return Result{Skipped: true}
	}

	surfacePath, err := e.files.WriteSurface(surface)
	if err != nil {
		return e.fail("surface", err)
	}
	defer e.files.RemoveSurface(surfacePath)

	captureStart := e.now()
	img, err := e.renderer.Capture(ctx, "file://"+surfacePath)
	if err != nil {
		return e.fail("capture", err)
	}
	captureTime := e.now().Sub(captureStart)

	fileName := Filename(e.now(), rec)
	outputPath, err := e.files.WriteOutput(fileName, img)
	if err != nil {
		return e.fail("deliver", err)
	}

	result := Result{
		OutputFile:  outputPath,
		Success:     true,
		CaptureTime: captureTime,
	}

	// Archival is best effort; a failed copy does not fail the export.
	archivePath, err := e.files.ArchiveOutputFile(outputPath)
	if err != nil {
		e.logger.Warn("failed to archive receipt", zap.Error(err))
	} else if archivePath != outputPath {
		result.ArchiveFile = archivePath
	}

	e.logger.Info("receipt exported",
		zap.String("file", outputPath),
		zap.Duration("capture_time", captureTime),
	)
	return result
}

// fail logs the detailed cause, records it in the error log, and returns the
// generic failure result.
func (e *Exporter) fail(stage string, cause error) Result {
	e.logger.Error("export failed",
		zap.String("stage", stage),
		zap.Error(cause),
	)

	if _, err := e.files.WriteErrorLog([]utils.ErrorLogEntry{{
		Timestamp:    e.now(),
		Stage:        stage,
		ErrorMessage: cause.Error(),
	}}); err != nil {
		e.logger.Warn("failed to write error log", zap.Error(err))
	}

	return Result{Error: ErrExportFailed}
}
