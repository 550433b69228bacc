package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globallogistics/cargo-receipt/internal/receipt"
	"github.com/globallogistics/cargo-receipt/pkg/utils"
)

// fakeRenderer captures the surface URL it was given and returns canned
// image bytes or a canned error.
type fakeRenderer struct {
	img        []byte
	err        error
	surfaceURL string
}

func (f *fakeRenderer) Capture(ctx context.Context, surfaceURL string) ([]byte, error) {
	f.surfaceURL = surfaceURL
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

func newTestExporter(t *testing.T, renderer Renderer, archive bool) (*Exporter, string) {
	t.Helper()

	outputDir := t.TempDir()
	archiveDir := ""
	if archive {
		archiveDir = filepath.Join(outputDir, "archive")
	}

	files := utils.NewFileManager(outputDir, archiveDir)
	require.NoError(t, files.EnsureDirectories())

	exporter := NewExporter(renderer, files, nil)
	exporter.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return exporter, outputDir
}

func TestExporter_Export(t *testing.T) {
	rec := receipt.Record{Airline: "emirates", MawbNo: "EK-9"}

	t.Run("delivers the image under the derived name", func(t *testing.T) {
		renderer := &fakeRenderer{img: []byte("jpeg-bytes")}
		exporter, outputDir := newTestExporter(t, renderer, false)

		result := exporter.Export(context.Background(), []byte("<html></html>"), rec)

		require.NoError(t, result.Error)
		assert.True(t, result.Success)
		assert.False(t, result.Skipped)
		assert.Equal(t, filepath.Join(outputDir, "2024-06-01_emirates_EK-9.jpg"), result.OutputFile)

		data, err := os.ReadFile(result.OutputFile)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), data)

		// The capture ran against a file URL for the temp surface.
		assert.True(t, strings.HasPrefix(renderer.surfaceURL, "file://"))
	})

	t.Run("no rendered surface is a silent skip", func(t *testing.T) {
		renderer := &fakeRenderer{img: []byte("jpeg-bytes")}
		exporter, outputDir := newTestExporter(t, renderer, false)

		result := exporter.Export(context.Background(), nil, rec)

		assert.True(t, result.Skipped)
		assert.NoError(t, result.Error)
		assert.False(t, result.Success)
		assert.Empty(t, result.OutputFile)

		// Nothing was captured and nothing was written.
		assert.Empty(t, renderer.surfaceURL)
		entries, err := os.ReadDir(outputDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("capture failure surfaces the generic error", func(t *testing.T) {
		renderer := &fakeRenderer{err: errors.New("chrome crashed: connection refused")}
		exporter, outputDir := newTestExporter(t, renderer, false)

		result := exporter.Export(context.Background(), []byte("<html></html>"), rec)

		require.Error(t, result.Error)
		assert.ErrorIs(t, result.Error, ErrExportFailed)
		assert.False(t, result.Success)

		// The user-facing error carries no internal detail; the detail goes
		// to the error log instead.
		assert.Equal(t, "failed to generate receipt image", result.Error.Error())

		logs, err := filepath.Glob(filepath.Join(outputDir, "errors_*.log"))
		require.NoError(t, err)
		require.Len(t, logs, 1)
		content, err := os.ReadFile(logs[0])
		require.NoError(t, err)
		assert.Contains(t, string(content), "chrome crashed")
	})

	t.Run("a failed export leaves the editing session usable", func(t *testing.T) {
		renderer := &fakeRenderer{err: errors.New("boom")}
		exporter, _ := newTestExporter(t, renderer, false)

		store := receipt.NewStore(receipt.Seed(""))
		before := store.Get()

		result := exporter.Export(context.Background(), []byte("<html></html>"), store.Get())
		require.Error(t, result.Error)

		// The record is untouched by the failure and can still be edited.
		assert.Equal(t, before, store.Get())
		require.NoError(t, store.Update(receipt.FieldMawbNo, "EK-2024-000777"))
		assert.Equal(t, "EK-2024-000777", store.Get().MawbNo)
	})

	t.Run("a failed export does not block the next attempt", func(t *testing.T) {
		renderer := &fakeRenderer{err: errors.New("boom")}
		exporter, outputDir := newTestExporter(t, renderer, false)

		first := exporter.Export(context.Background(), []byte("<html></html>"), rec)
		require.Error(t, first.Error)

		renderer.err = nil
		renderer.img = []byte("jpeg-bytes")
		second := exporter.Export(context.Background(), []byte("<html></html>"), rec)

		require.NoError(t, second.Error)
		assert.True(t, second.Success)
		assert.FileExists(t, filepath.Join(outputDir, "2024-06-01_emirates_EK-9.jpg"))
	})

	t.Run("archives a copy when archival is on", func(t *testing.T) {
		renderer := &fakeRenderer{img: []byte("jpeg-bytes")}
		exporter, outputDir := newTestExporter(t, renderer, true)

		result := exporter.Export(context.Background(), []byte("<html></html>"), rec)

		require.NoError(t, result.Error)
		require.NotEmpty(t, result.ArchiveFile)
		assert.Equal(t, filepath.Join(outputDir, "archive", "2024-06-01_emirates_EK-9.jpg"), result.ArchiveFile)

		// The output copy stays in place for the desk to hand out.
		assert.FileExists(t, result.OutputFile)
		assert.FileExists(t, result.ArchiveFile)
	})
}
