// =============================================================================
// Cargo Receipt Generator - Headless Renderer
// =============================================================================
//
// The rasterization step is delegated to an injected Renderer capability so
// the export pipeline owns only the contract: surface in, JPEG bytes out.
// The production implementation drives a headless Chrome through go-rod.
//
// CAPTURE CONTRACT:
//   - The full scrollable extent of the surface is captured, not just the
//     viewport.
//   - Pixels are rendered at a fixed 2x device scale.
//   - Transparency is replaced by an opaque white background.
//   - Embedded images get a bounded wait (15s) to finish loading; when the
//     wait elapses the capture proceeds with whatever has loaded.
//   - The bitmap is encoded as JPEG at quality 80/100.
//
// =============================================================================

package export

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Renderer captures a rendered surface into an encoded bitmap.
type Renderer interface {
	// Capture rasterizes the document at surfaceURL and returns the encoded
	// JPEG bytes.
	Capture(ctx context.Context, surfaceURL string) ([]byte, error)
}

// =============================================================================
// CAPTURE OPTIONS
// =============================================================================

// CaptureOptions hold the fixed capture parameters.
type CaptureOptions struct {
	// Scale is the device pixel density multiplier.
	Scale float64

	// Quality is the JPEG quality on a 0-100 scale.
	Quality int

	// ImageLoadWait bounds the wait for embedded images before capture.
	ImageLoadWait time.Duration

	// ViewportWidth and ViewportHeight size the emulated viewport. The
	// capture still covers the full scrollable extent beyond it.
	ViewportWidth  int
	ViewportHeight int
}

// DefaultCaptureOptions returns the receipt capture parameters.
func DefaultCaptureOptions() CaptureOptions {
	return CaptureOptions{
		Scale:          2.0,
		Quality:        80,
		ImageLoadWait:  15 * time.Second,
		ViewportWidth:  760,
		ViewportHeight: 900,
	}
}

// =============================================================================
// CHROME RENDERER
// =============================================================================

// ChromeRenderer rasterizes surfaces with a headless Chrome via go-rod.
// Each capture launches a fresh browser so a crashed capture never poisons
// the next attempt.
type ChromeRenderer struct {
	// Bin is the Chrome binary to launch. Empty lets the launcher resolve
	// or download one.
	Bin string

	// NavigationTimeout bounds page load.
	NavigationTimeout time.Duration

	// Options are the capture parameters.
	Options CaptureOptions
}

// NewChromeRenderer creates a renderer with the default capture options.
func NewChromeRenderer(bin string, navigationTimeout time.Duration) *ChromeRenderer {
	if navigationTimeout == 0 {
		navigationTimeout = 30 * time.Second
	}
	return &ChromeRenderer{
		Bin:               bin,
		NavigationTimeout: navigationTimeout,
		Options:           DefaultCaptureOptions(),
	}
}

// Capture implements Renderer.
func (r *ChromeRenderer) Capture(ctx context.Context, surfaceURL string) ([]byte, error) {
	l := launcher.New().Headless(true)
	if r.Bin != "" {
		l = l.Bin(r.Bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{URL: surfaceURL})
	if err != nil {
		return nil, fmt.Errorf("open surface: %w", err)
	}

	// Fixed 2x pixel density; the viewport only seeds layout, the capture
	// extends beyond it.
	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             r.Options.ViewportWidth,
		Height:            r.Options.ViewportHeight,
		DeviceScaleFactor: r.Options.Scale,
		Mobile:            false,
	}).Call(page); err != nil {
		return nil, fmt.Errorf("set device metrics: %w", err)
	}

	// Substitute opaque white for any transparency in the output.
	alpha := 1.0
	if err := (proto.EmulationSetDefaultBackgroundColorOverride{
		Color: &proto.DOMRGBA{R: 255, G: 255, B: 255, A: &alpha},
	}).Call(page); err != nil {
		return nil, fmt.Errorf("set background: %w", err)
	}

	if err := page.Timeout(r.NavigationTimeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("load surface: %w", err)
	}

	// Bounded wait for embedded images. A timeout here is not an error:
	// capture proceeds with whatever has loaded.
	_ = page.Timeout(r.Options.ImageLoadWait).Wait(&rod.EvalOptions{
		JS: `() => Array.from(document.images).every(img => img.complete)`,
	})

	quality := r.Options.Quality
	img, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format:                proto.PageCaptureScreenshotFormatJpeg,
		Quality:               &quality,
		CaptureBeyondViewport: true,
	})
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	return img, nil
}
