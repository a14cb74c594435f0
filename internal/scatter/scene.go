package scatter

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"gonum.org/v1/plot/palette"

	"scatterzoom/internal/cloud"
	"scatterzoom/internal/colorize"
	"scatterzoom/internal/colormap"
	"scatterzoom/internal/geom"
)

// ColorbarLabel labels the distance scale in both renderers.
const ColorbarLabel = "Normalized Distance"

// limitPad mirrors matplotlib's default 5% axis margins.
const limitPad = 0.05

type Labels struct {
	Title string
	X, Y  string
}

// Scene is everything needed to draw one figure.
type Scene struct {
	Config   Config
	Points   []orb.Point
	ColorMap palette.ColorMap
	Result   colorize.Result
	Index    *geom.Index
	// InZoom lists the indices of points inside Config.Zoom.
	InZoom []int
	// Limits are the auto-scaled main axes limits.
	Limits orb.Bound

	Main   Labels
	Zoomed Labels
}

// Build runs the whole pipeline: generate, colorize, index.
func Build(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pts, err := cloud.Generate(cloud.NewRand(cfg.Seed), cfg.N, cfg.Span)
	if err != nil {
		return nil, err
	}
	return Assemble(cfg, pts)
}

// Assemble colorizes an existing cloud under cfg.
func Assemble(cfg Config, pts []orb.Point) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cm, err := colormap.ByName(cfg.ColorMap)
	if err != nil {
		return nil, err
	}
	res, err := colorize.Colorize(pts, cfg.Ref, cm, colorize.Options{Degenerate: cfg.Degenerate, Fill: cfg.Fill})
	if err != nil {
		return nil, err
	}
	ix := geom.NewIndex(pts)
	s := &Scene{
		Config:   cfg,
		Points:   pts,
		ColorMap: cm,
		Result:   res,
		Index:    ix,
		InZoom:   ix.Within(cfg.Zoom),
		Limits:   geom.Pad(geom.BoundOf(pts, cfg.Zoom), limitPad),
	}
	s.Main, s.Zoomed = labelsFor(cfg)
	return s, nil
}

func labelsFor(cfg Config) (main, zoomed Labels) {
	scale := displayName(cfg.ColorMap)
	switch cfg.Layout {
	case LayoutSide:
		main = Labels{Title: fmt.Sprintf("Main Scatterplot with %s Color Temperature Scale", scale), X: "X Axis", Y: "Y Axis"}
		zoomed = Labels{Title: "Zoomed-In Scatterplot", X: "X Axis (Zoomed)", Y: "Y Axis (Zoomed)"}
	default:
		main = Labels{Title: fmt.Sprintf("Scatterplot with %s Color Temperature Scale", scale), X: "X Axis", Y: "Y Axis"}
	}
	return main, zoomed
}

func displayName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// WithRef recolors the same cloud against a new reference point.
func (s *Scene) WithRef(ref orb.Point) (*Scene, error) {
	cfg := s.Config
	cfg.Ref = ref
	return Assemble(cfg, s.Points)
}

// WithPoints replaces the cloud, keeping every other setting.
func (s *Scene) WithPoints(pts []orb.Point) (*Scene, error) {
	return Assemble(s.Config, pts)
}

func (s *Scene) WithColorMap(name string) (*Scene, error) {
	cfg := s.Config
	cfg.ColorMap = name
	return Assemble(cfg, s.Points)
}

func (s *Scene) WithZoom(b orb.Bound) (*Scene, error) {
	cfg := s.Config
	cfg.Zoom = b
	return Assemble(cfg, s.Points)
}

func (s *Scene) WithLayout(l Layout) (*Scene, error) {
	cfg := s.Config
	cfg.Layout = l
	return Assemble(cfg, s.Points)
}

// WithSeed regenerates the cloud from a new seed.
func (s *Scene) WithSeed(seed int64) (*Scene, error) {
	cfg := s.Config
	cfg.Seed = seed
	return Build(cfg)
}

// Zoom returns the zoom region.
func (s *Scene) Zoom() orb.Bound { return s.Config.Zoom }

// Ref returns the reference point.
func (s *Scene) Ref() orb.Point { return s.Config.Ref }
