// Package export renders a scene to an image file with gonum/plot.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"scatterzoom/internal/colormap"
	"scatterzoom/internal/geom"
	"scatterzoom/internal/scatter"
)

var (
	ErrFormat = errors.New("export: unsupported format")
	ErrSize   = errors.New("export: non-positive figure size")
)

var (
	zoomEdge = color.RGBA{R: 255, A: 255}
	// s=10 in matplotlib is a marker area of 10pt^2
	markerRadius = vg.Points(1.8)
)

const (
	insetFrac    = 0.30
	colorbarFrac = 0.10
)

type Options struct {
	// Format is png, jpg, svg or pdf. Empty means derive it from the path.
	Format string
	// Width and Height default to the layout's figure size.
	Width, Height vg.Length
}

// FigureSize returns the default figure size for a layout.
func FigureSize(l scatter.Layout) (w, h vg.Length) {
	if l == scatter.LayoutSide {
		return 14 * vg.Inch, 6 * vg.Inch
	}
	return 10 * vg.Inch, 8 * vg.Inch
}

// Save writes the figure to path, choosing the format from its extension
// unless opts.Format is set.
func Save(path string, s *scatter.Scene, opts Options) error {
	if opts.Format == "" {
		opts.Format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	if _, err := newCanvas(opts.Format, vg.Inch, vg.Inch); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, s, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Render draws the scene and writes it to w.
func Render(w io.Writer, s *scatter.Scene, opts Options) error {
	width, height := FigureSize(s.Config.Layout)
	if opts.Width != 0 {
		width = opts.Width
	}
	if opts.Height != 0 {
		height = opts.Height
	}
	if width <= 0 || height <= 0 {
		return ErrSize
	}
	c, err := newCanvas(opts.Format, width, height)
	if err != nil {
		return err
	}
	if err := Draw(draw.New(c), s); err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

func newCanvas(format string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(format) {
	case "png", "":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.New(w, h)}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}

// Draw lays the scene out on dc.
func Draw(dc draw.Canvas, s *scatter.Scene) error {
	main, err := mainPlot(s)
	if err != nil {
		return err
	}
	zoom, err := zoomPlot(s)
	if err != nil {
		return err
	}
	bar := colorbarPlot(s)

	r := dc.Rectangle
	w := r.Max.X - r.Min.X
	switch s.Config.Layout {
	case scatter.LayoutSide:
		// main | colorbar | zoomed
		half := w / 2
		barW := half * colorbarFrac
		main.Draw(sub(dc, r.Min.X, r.Min.Y, r.Min.X+half-barW, r.Max.Y))
		bar.Draw(sub(dc, r.Min.X+half-barW, r.Min.Y, r.Min.X+half, r.Max.Y))
		zoom.Draw(sub(dc, r.Min.X+half, r.Min.Y, r.Max.X, r.Max.Y))
	default:
		barW := w * colorbarFrac
		mainC := sub(dc, r.Min.X, r.Min.Y, r.Max.X-barW, r.Max.Y)
		main.Draw(mainC)
		bar.Draw(sub(dc, r.Max.X-barW, r.Min.Y, r.Max.X, r.Max.Y))

		// the inset sits in the upper right of the main data area
		da := main.DataCanvas(mainC).Rectangle
		iw := (da.Max.X - da.Min.X) * insetFrac
		ih := (da.Max.Y - da.Min.Y) * insetFrac
		zoom.Draw(sub(dc, da.Max.X-iw, da.Max.Y-ih, da.Max.X, da.Max.Y))
	}
	return nil
}

func sub(dc draw.Canvas, x0, y0, x1, y1 vg.Length) draw.Canvas {
	return draw.Canvas{
		Canvas:    dc.Canvas,
		Rectangle: vg.Rectangle{Min: vg.Point{X: x0, Y: y0}, Max: vg.Point{X: x1, Y: y1}},
	}
}

func mainPlot(s *scatter.Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Main.Title
	p.X.Label.Text = s.Main.X
	p.Y.Label.Text = s.Main.Y
	p.Add(plotter.NewGrid())

	sc, err := scatterOf(s)
	if err != nil {
		return nil, err
	}
	p.Add(sc)

	edge, err := zoomOutline(s.Zoom())
	if err != nil {
		return nil, err
	}
	p.Add(edge)
	// Add widens the axes to the data; pin them afterwards
	setLimits(p, s.Limits)
	return p, nil
}

func zoomPlot(s *scatter.Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Zoomed.Title
	p.X.Label.Text = s.Zoomed.X
	p.Y.Label.Text = s.Zoomed.Y
	sc, err := scatterOf(s)
	if err != nil {
		return nil, err
	}
	p.Add(sc)
	setLimits(p, s.Zoom())
	return p, nil
}

func colorbarPlot(s *scatter.Scene) *plot.Plot {
	p := plot.New()
	p.HideX()
	p.Y.Label.Text = scatter.ColorbarLabel
	// 0 at the top, like the inverted bar in the scripts
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(&plotter.ColorBar{ColorMap: s.ColorMap, Vertical: true})
	return p
}

func setLimits(p *plot.Plot, b orb.Bound) {
	p.X.Min, p.X.Max = b.Min[0], b.Max[0]
	p.Y.Min, p.Y.Max = b.Min[1], b.Max[1]
}

func scatterOf(s *scatter.Scene) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		xys[i].X, xys[i].Y = pt[0], pt[1]
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("export: scatter: %w", err)
	}
	colors := make([]color.Color, len(s.Result.Colors))
	for i, c := range s.Result.Colors {
		colors[i] = colormap.WithAlpha(c, s.Config.Alpha)
	}
	sc.GlyphStyle = draw.GlyphStyle{Shape: draw.CircleGlyph{}, Radius: markerRadius}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Shape: draw.CircleGlyph{}, Radius: markerRadius, Color: colors[i]}
	}
	return sc, nil
}

func zoomOutline(b orb.Bound) (*plotter.Line, error) {
	ring := geom.Ring(b)
	xys := make(plotter.XYs, len(ring))
	for i, p := range ring {
		xys[i].X, xys[i].Y = p[0], p[1]
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("export: zoom outline: %w", err)
	}
	l.LineStyle.Color = zoomEdge
	l.LineStyle.Width = vg.Points(1)
	return l, nil
}
