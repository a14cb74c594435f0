package colormap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

const DefaultName = "viridis"

var ErrUnknown = errors.New("colormap: unknown color map")

// matplotlib viridis sampled at 0.1 steps
var viridisStops = [][3]uint8{
	{68, 1, 84},
	{72, 35, 116},
	{64, 67, 135},
	{52, 94, 141},
	{41, 120, 142},
	{32, 144, 140},
	{34, 167, 132},
	{68, 190, 112},
	{121, 209, 81},
	{189, 222, 38},
	{253, 231, 37},
}

var plasmaStops = [][3]uint8{
	{13, 8, 135},
	{75, 3, 161},
	{125, 3, 168},
	{168, 34, 150},
	{203, 70, 121},
	{229, 107, 93},
	{248, 148, 65},
	{253, 195, 40},
	{240, 249, 33},
}

var infernoStops = [][3]uint8{
	{0, 0, 4},
	{40, 11, 84},
	{101, 21, 110},
	{159, 42, 99},
	{212, 72, 66},
	{245, 125, 21},
	{250, 193, 39},
	{252, 255, 164},
}

var magmaStops = [][3]uint8{
	{0, 0, 4},
	{28, 16, 68},
	{79, 18, 123},
	{129, 37, 129},
	{181, 54, 122},
	{229, 80, 100},
	{251, 135, 97},
	{254, 194, 135},
	{252, 253, 191},
}

func Viridis() palette.ColorMap { return NewLinear("viridis", viridisStops) }
func Plasma() palette.ColorMap  { return NewLinear("plasma", plasmaStops) }
func Inferno() palette.ColorMap { return NewLinear("inferno", infernoStops) }
func Magma() palette.ColorMap   { return NewLinear("magma", magmaStops) }

var registry = map[string]func() palette.ColorMap{
	"viridis":   Viridis,
	"plasma":    Plasma,
	"inferno":   Inferno,
	"magma":     Magma,
	"kindlmann": moreland.Kindlmann,
	"blackbody": moreland.BlackBody,
	"bluered":   func() palette.ColorMap { return moreland.SmoothBlueRed() },
}

// ByName returns a fresh color map ranged [0,1]. A "_r" suffix reverses it.
func ByName(name string) (palette.ColorMap, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	reverse := strings.HasSuffix(key, "_r")
	key = strings.TrimSuffix(key, "_r")
	mk, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	cm := mk()
	cm.SetMax(1)
	cm.SetMin(0)
	if reverse {
		cm = palette.Reverse(cm)
	}
	return cm, nil
}

// Names lists the registered color maps in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
