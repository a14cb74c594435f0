package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"scatterzoom/internal/scatter"
)

func buildScene(t *testing.T, l scatter.Layout) *scatter.Scene {
	t.Helper()
	cfg := scatter.DefaultConfig()
	cfg.Layout = l
	s, err := scatter.Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestRenderPNGInset(t *testing.T) {
	s := buildScene(t, scatter.LayoutInset)
	var buf bytes.Buffer
	if err := Render(&buf, s, Options{Format: "png", Width: 4 * vg.Inch, Height: 3 * vg.Inch}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		t.Fatalf("empty image %v", b)
	}
	if b.Dx() <= b.Dy() {
		t.Fatalf("expected landscape image, got %v", b)
	}
}

func TestRenderSVGSide(t *testing.T) {
	s := buildScene(t, scatter.LayoutSide)
	var buf bytes.Buffer
	if err := Render(&buf, s, Options{Format: "svg"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatal("output is not svg")
	}
	for _, want := range []string{"Zoomed-In Scatterplot", "Normalized Distance"} {
		if !strings.Contains(out, want) {
			t.Fatalf("svg missing %q", want)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	s := buildScene(t, scatter.LayoutInset)
	var buf bytes.Buffer
	if err := Render(&buf, s, Options{Format: "bmp"}); !errors.Is(err, ErrFormat) {
		t.Fatalf("format err=%v", err)
	}
	if err := Render(&buf, s, Options{Format: "png", Width: -1}); !errors.Is(err, ErrSize) {
		t.Fatalf("size err=%v", err)
	}
}

func TestSaveByExtension(t *testing.T) {
	s := buildScene(t, scatter.LayoutInset)
	dir := t.TempDir()
	path := filepath.Join(dir, "scatter.png")
	if err := Save(path, s, Options{Width: 3 * vg.Inch, Height: 3 * vg.Inch}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := Save(filepath.Join(dir, "scatter.gif"), s, Options{}); !errors.Is(err, ErrFormat) {
		t.Fatalf("gif err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "scatter.gif")); !os.IsNotExist(err) {
		t.Fatal("unsupported format should not create a file")
	}
}

func TestFigureSize(t *testing.T) {
	w, h := FigureSize(scatter.LayoutInset)
	if w != 10*vg.Inch || h != 8*vg.Inch {
		t.Fatalf("inset size=%v x %v", w, h)
	}
	w, h = FigureSize(scatter.LayoutSide)
	if w != 14*vg.Inch || h != 6*vg.Inch {
		t.Fatalf("side size=%v x %v", w, h)
	}
}
