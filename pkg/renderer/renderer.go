// Package renderer drives the per-pixel render loop, filling a flat RGB
// byte buffer from recursive scene traces.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xwu/go-cornell-raytracer/pkg/core"
	"github.com/xwu/go-cornell-raytracer/pkg/scene"
)

// bandHeight is the number of rows per work unit. Bands are fixed-size so
// the per-band random streams, and therefore the image, do not depend on
// the worker count.
const bandHeight = 16

// Config contains rendering configuration
type Config struct {
	Width   int
	Height  int
	Gamma   float64 // Gamma correction exponent base (byte = linear^(1/Gamma))
	Workers int     // Parallel band workers; 0 means NumCPU
	Seed    int64   // Base seed for the per-band sampling streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Gamma:  2.2,
		Seed:   42,
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer fills a pixel buffer by tracing one primary ray per pixel.
// The scene is read-only during rendering and each pixel's write target is
// disjoint, so bands render in parallel without synchronization.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) *Renderer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Gamma <= 0 {
		config.Gamma = 2.2
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  s,
		camera: NewCamera(s.Camera, config.Width, config.Height),
		config: config,
		logger: logger,
	}
}

// Render runs a full render pass and returns a fresh pixel buffer of
// 3×width×height interleaved 8-bit RGB values, row-major, top row first.
// The pass runs to completion; there is no mid-flight cancellation.
func (r *Renderer) Render() []byte {
	start := time.Now()
	buffer := make([]byte, 3*r.config.Width*r.config.Height)

	numBands := (r.config.Height + bandHeight - 1) / bandHeight
	bands := make(chan int, numBands)
	for band := 0; band < numBands; band++ {
		bands <- band
	}
	close(bands)

	var rowsDone int64
	var wg sync.WaitGroup
	for w := 0; w < r.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for band := range bands {
				// One stream per band keeps glossy sampling independent
				// of scheduling and worker count
				random := rand.New(rand.NewSource(r.config.Seed + int64(band)))
				r.renderBand(buffer, band, random)

				done := atomic.AddInt64(&rowsDone, int64(r.bandRows(band)))
				r.logger.Printf("render progress: %d%%\n", done*100/int64(r.config.Height))
			}
		}()
	}
	wg.Wait()

	r.logger.Printf("render completed in %.2fs\n", time.Since(start).Seconds())
	return buffer
}

// bandRows returns the row count of a band, clipped at the image bottom
func (r *Renderer) bandRows(band int) int {
	rows := r.config.Height - band*bandHeight
	if rows > bandHeight {
		rows = bandHeight
	}
	return rows
}

// renderBand traces every pixel of one horizontal band into the buffer
func (r *Renderer) renderBand(buffer []byte, band int, random *rand.Rand) {
	yStart := band * bandHeight
	yEnd := yStart + r.bandRows(band)

	for y := yStart; y < yEnd; y++ {
		for x := 0; x < r.config.Width; x++ {
			ray := r.camera.GetRay(x, y)
			linear := r.scene.Trace(ray, 0, random)

			corrected := linear.Clamp(0, 1).GammaCorrect(r.config.Gamma)

			idx := (y*r.config.Width + x) * 3
			buffer[idx] = byte(255 * corrected.X)
			buffer[idx+1] = byte(255 * corrected.Y)
			buffer[idx+2] = byte(255 * corrected.Z)
		}
	}
}

// RenderImage runs a render pass and wraps the pixel buffer as an image
func (r *Renderer) RenderImage() *image.RGBA {
	buffer := r.Render()

	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
	for y := 0; y < r.config.Height; y++ {
		for x := 0; x < r.config.Width; x++ {
			idx := (y*r.config.Width + x) * 3
			img.SetRGBA(x, y, color.RGBA{
				R: buffer[idx],
				G: buffer[idx+1],
				B: buffer[idx+2],
				A: 255,
			})
		}
	}
	return img
}
