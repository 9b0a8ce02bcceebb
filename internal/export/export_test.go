package export

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(path, solid(8, 4, color.RGBA{255, 0, 0, 255})); err != nil {
		t.Fatalf("save: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, solid(3, 3, color.White)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestAnimation(t *testing.T) {
	a := NewAnimation(50 * time.Millisecond)
	var buf bytes.Buffer
	if err := a.Encode(&buf); err == nil {
		t.Error("expected error for empty animation")
	}

	a.Add(solid(4, 4, color.Black))
	a.Add(solid(4, 4, color.White))
	if a.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", a.Len())
	}
	if err := a.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 2 || g.Delay[0] != 5 {
		t.Errorf("unexpected gif: %d frames, delay %v", len(g.Image), g.Delay)
	}

	if err := a.Save(filepath.Join(t.TempDir(), "loop.gif")); err != nil {
		t.Errorf("save: %v", err)
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#0f0", 0) != "" {
		t.Error("expected empty svg for a single point")
	}
	svg := SeriesToSVG([]float64{1, 4, 2}, 100, 50, "#00ff00", 16.7)
	if !strings.Contains(svg, `stroke="#00ff00"`) || !strings.Contains(svg, "stroke-dasharray") {
		t.Errorf("unexpected svg:\n%s", svg)
	}
	if !strings.Contains(svg, " L100.0,") {
		t.Errorf("series should span the full width:\n%s", svg)
	}
}

func TestSaveReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.json")
	r := &Report{Width: 640, Height: 360, FPS: 30, Results: []CultureResult{
		{Culture: "berlin", Program: "default", Frames: 10, MeanMS: 1.5},
	}}
	if err := SaveReport(path, r); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Results) != 1 || got.Results[0].Program != "default" || got.FPS != 30 {
		t.Errorf("unexpected report %+v", got)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100} {
		var mu sync.Mutex
		seen := make([]int, n)
		parallelFor(n, 2, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			for i := start; i < end; i++ {
				seen[i]++
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, c)
			}
		}
	}
}
