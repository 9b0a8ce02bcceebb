// Package export writes rendered backdrop frames to files.
package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/image/draw"
)

func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Animation accumulates frames for an animated GIF. Frames are kept in full
// colour and quantized when the animation is encoded.
type Animation struct {
	delay  int // hundredths of a second
	frames []image.Image
}

// NewAnimation spaces frames interval apart; GIF timing has 10ms resolution.
func NewAnimation(interval time.Duration) *Animation {
	return &Animation{delay: max(1, int(interval/(10*time.Millisecond)))}
}

// Add appends img. The caller must not modify img afterwards.
func (a *Animation) Add(img image.Image) {
	a.frames = append(a.frames, img)
}

func (a *Animation) Len() int { return len(a.frames) }

// Encode quantizes every frame to the web palette with dithering and writes
// the looping GIF.
func (a *Animation) Encode(w io.Writer) error {
	if a.Len() == 0 {
		return fmt.Errorf("empty animation")
	}
	g := &gif.GIF{
		Image: make([]*image.Paletted, len(a.frames)),
		Delay: make([]int, len(a.frames)),
	}
	parallelFor(len(a.frames), 4, func(start, end int) {
		for i := start; i < end; i++ {
			g.Image[i] = quantize(a.frames[i])
			g.Delay[i] = a.delay
		}
	})
	return gif.EncodeAll(w, g)
}

func (a *Animation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.WebSafe)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}

// parallelFor splits [0, n) into chunks of at least minChunk and runs fn on
// each chunk concurrently.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if minChunk < 1 {
		minChunk = 1
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
