// =============================================================================
// Cargo Receipt Generator - File Manager Utility
// =============================================================================
//
// This module provides file management for the export pipeline:
//   - Output directory management
//   - Temporary surface files handed to the rasterizer
//   - Archival copies of generated receipts
//   - Error log generation
//
// ARCHIVAL STRATEGY:
//   - Generated receipts stay in the output directory
//   - A copy goes to the archive directory for long-term storage
//   - Failed exports leave nothing behind except an error log entry
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the export pipeline.
type FileManager struct {
	// OutputDir is the directory where generated receipts are placed.
	OutputDir string

	// ArchiveDir is the directory for archival copies of receipts.
	ArchiveDir string

	// UseTimestampSubdirs creates date-based subdirectories in the archive.
	// Example: archive/2024/06/01/receipt.jpg
	UseTimestampSubdirs bool

	// ArchiveOnSuccess determines whether generated receipts are archived.
	ArchiveOnSuccess bool
}

// NewFileManager creates a FileManager for the given directories. An empty
// archive directory disables archival.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		OutputDir:        outputDir,
		ArchiveDir:       archiveDir,
		ArchiveOnSuccess: archiveDir != "",
	}
}

// EnsureDirectories creates the output and archive directories if needed.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{fm.OutputDir}
	if fm.ArchiveDir != "" {
		dirs = append(dirs, fm.ArchiveDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// SURFACE FILES
// =============================================================================

// WriteSurface writes a rendered HTML surface to a uniquely named temporary
// file and returns its path. The caller removes it with RemoveSurface once
// the capture has finished.
func (fm *FileManager) WriteSurface(data []byte) (string, error) {
	path := filepath.Join(os.TempDir(), "receipt-surface-"+uuid.NewString()+".html")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write surface file: %w", err)
	}
	return path, nil
}

// RemoveSurface deletes a temporary surface file. Best effort; a leftover
// surface in the temp directory is harmless.
func (fm *FileManager) RemoveSurface(path string) {
	if path != "" {
		_ = os.Remove(path)
	}
}

// =============================================================================
// OUTPUT FILES
// =============================================================================

// WriteOutput writes a generated receipt into the output directory under the
// given file name.
//
// RETURNS:
//   - The full path to the written file.
//   - An error if the file cannot be written.
func (fm *FileManager) WriteOutput(fileName string, data []byte) (string, error) {
	outputPath := filepath.Join(fm.OutputDir, fileName)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return outputPath, nil
}

// ArchiveOutputFile copies a generated receipt to the archive directory.
//
// NOTE: Output files are copied, not moved, so they remain in the output
// directory for the desk to hand out.
func (fm *FileManager) ArchiveOutputFile(filePath string) (string, error) {
	if !fm.ArchiveOnSuccess {
		return filePath, nil
	}

	archivePath := fm.getArchivePath(filePath)

	if err := os.MkdirAll(filepath.Dir(archivePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := copyFile(filePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to copy file to archive: %w", err)
	}
	return archivePath, nil
}

// getArchivePath constructs the archive path for a file.
func (fm *FileManager) getArchivePath(filePath string) string {
	fileName := filepath.Base(filePath)

	if fm.UseTimestampSubdirs {
		now := time.Now()
		subDir := filepath.Join(
			fm.ArchiveDir,
			fmt.Sprintf("%d", now.Year()),
			fmt.Sprintf("%02d", now.Month()),
			fmt.Sprintf("%02d", now.Day()),
		)
		return filepath.Join(subDir, fileName)
	}

	return filepath.Join(fm.ArchiveDir, fileName)
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// ErrorLogEntry represents a single export failure.
type ErrorLogEntry struct {
	Timestamp    time.Time
	Stage        string
	ErrorMessage string
}

// WriteErrorLog appends error entries to a dated log file in the output
// directory.
//
// RETURNS:
//   - The path to the error log file.
//   - An error if writing fails.
func (fm *FileManager) WriteErrorLog(entries []ErrorLogEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	logName := fmt.Sprintf("errors_%s.log", time.Now().Format("20060102"))
	logPath := filepath.Join(fm.OutputDir, logName)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open error log: %w", err)
	}
	defer f.Close()

	for _, entry := range entries {
		line := fmt.Sprintf("%s [%s] %s\n",
			entry.Timestamp.Format(time.RFC3339),
			entry.Stage,
			entry.ErrorMessage,
		)
		if _, err := f.WriteString(line); err != nil {
			return "", fmt.Errorf("failed to write error log: %w", err)
		}
	}

	return logPath, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
