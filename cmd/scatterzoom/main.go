package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/plot/vg"

	"scatterzoom/internal/colorize"
	"scatterzoom/internal/colormap"
	"scatterzoom/internal/export"
	"scatterzoom/internal/scatter"
	"scatterzoom/internal/tui"
)

func main() {
	def := scatter.DefaultConfig()
	var (
		seed       = flag.Int64("seed", def.Seed, "Random seed for the point cloud.")
		n          = flag.Int("n", def.N, "Number of points.")
		span       = flag.Float64("span", def.Span, "Points are drawn from [0,span) on both axes.")
		ref        = flag.String("ref", "5,7", "Reference point x,y.")
		zoom       = flag.String("zoom", "4,6,5,7", "Zoom region x1,x2,y1,y2.")
		cmap       = flag.String("cmap", def.ColorMap, "Color map name (append _r to reverse).")
		degenerate = flag.String("degenerate", def.Degenerate.String(), "error|constant when all distances are equal.")
		fill       = flag.Float64("fill", 0, "Normalized value used by -degenerate constant.")
		layoutName = flag.String("layout", def.Layout.String(), "inset|side.")
		alpha      = flag.Float64("alpha", def.Alpha, "Marker opacity in (0,1].")
		outPath    = flag.String("out", "", "Write the figure to this file and exit.")
		format     = flag.String("format", "", "png|jpg|svg|pdf (default: from -out extension).")
		width      = flag.Float64("width", 0, "Figure width in inches (default depends on layout).")
		height     = flag.Float64("height", 0, "Figure height in inches (default depends on layout).")
		logPath    = flag.String("log", "", "Log file for the interactive viewer.")
		listMaps   = flag.Bool("cmaps", false, "List color map names and exit.")
	)
	flag.Parse()

	if *listMaps {
		for _, name := range colormap.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg := def
	cfg.Seed = *seed
	cfg.N = *n
	cfg.Span = *span
	cfg.ColorMap = *cmap
	cfg.Fill = *fill
	cfg.Alpha = *alpha

	var err error
	if cfg.Ref, err = scatter.ParsePoint(*ref); err != nil {
		log.Fatalf("-ref: %v", err)
	}
	if cfg.Zoom, err = scatter.ParseBound(*zoom); err != nil {
		log.Fatalf("-zoom: %v", err)
	}
	if cfg.Degenerate, err = colorize.ParsePolicy(*degenerate); err != nil {
		log.Fatalf("-degenerate: %v", err)
	}
	if cfg.Layout, err = scatter.ParseLayout(*layoutName); err != nil {
		log.Fatalf("-layout: %v", err)
	}

	s, err := scatter.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	eo := export.Options{
		Format: *format,
		Width:  vg.Length(*width) * vg.Inch,
		Height: vg.Length(*height) * vg.Inch,
	}

	if *outPath != "" {
		if err := export.Save(*outPath, s, eo); err != nil {
			log.Fatal(err)
		}
		return
	}

	// the terminal belongs to bubbletea from here on
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "scatterzoom")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	exportPath := "scatter.png"
	if *format != "" {
		exportPath = "scatter." + *format
	}
	m := tui.New(s, tui.Options{ExportPath: exportPath, Export: eo})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
