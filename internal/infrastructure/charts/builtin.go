// Package charts provides the built-in size calibrations and loads custom
// charts from YAML or JSON files.
package charts

import (
	"fmt"
	"sort"

	"github.com/stylefit/backend/internal/domain"
)

// Built-in chart names
const (
	Classic = "classic"
	Fine    = "fine"
)

// classic is the 6-band calibration with wider bounds
var classic = domain.SizeChart{
	Name: Classic,
	Bands: []domain.SizeBand{
		{Label: "XS", ShoulderMinCm: 38, ShoulderMaxCm: 41, TorsoMinCm: 58, TorsoMaxCm: 63},
		{Label: "S", ShoulderMinCm: 41, ShoulderMaxCm: 44, TorsoMinCm: 63, TorsoMaxCm: 68},
		{Label: "M", ShoulderMinCm: 44, ShoulderMaxCm: 47, TorsoMinCm: 68, TorsoMaxCm: 73},
		{Label: "L", ShoulderMinCm: 47, ShoulderMaxCm: 50, TorsoMinCm: 73, TorsoMaxCm: 78},
		{Label: "XL", ShoulderMinCm: 50, ShoulderMaxCm: 53, TorsoMinCm: 78, TorsoMaxCm: 83},
		{Label: "XXL", ShoulderMinCm: 53, ShoulderMaxCm: 57, TorsoMinCm: 83, TorsoMaxCm: 88},
	},
}

// fine is the 7-band calibration with narrower steps
var fine = domain.SizeChart{
	Name: Fine,
	Bands: []domain.SizeBand{
		{Label: "XS", ShoulderMinCm: 38, ShoulderMaxCm: 40.5, TorsoMinCm: 58, TorsoMaxCm: 62},
		{Label: "S", ShoulderMinCm: 40.5, ShoulderMaxCm: 43, TorsoMinCm: 62, TorsoMaxCm: 66},
		{Label: "M", ShoulderMinCm: 43, ShoulderMaxCm: 45.5, TorsoMinCm: 66, TorsoMaxCm: 70},
		{Label: "L", ShoulderMinCm: 45.5, ShoulderMaxCm: 48, TorsoMinCm: 70, TorsoMaxCm: 74},
		{Label: "XL", ShoulderMinCm: 48, ShoulderMaxCm: 51, TorsoMinCm: 74, TorsoMaxCm: 78},
		{Label: "XXL", ShoulderMinCm: 51, ShoulderMaxCm: 54, TorsoMinCm: 78, TorsoMaxCm: 82},
		{Label: "XXXL", ShoulderMinCm: 54, ShoulderMaxCm: 57, TorsoMinCm: 82, TorsoMaxCm: 87},
	},
}

var builtins = map[string]domain.SizeChart{
	Classic: classic,
	Fine:    fine,
}

// Builtin returns a copy of the named built-in chart
func Builtin(name string) (domain.SizeChart, error) {
	chart, ok := builtins[name]
	if !ok {
		return domain.SizeChart{}, fmt.Errorf("%w: no built-in chart named %q", domain.ErrInvalidChart, name)
	}

	bands := make([]domain.SizeBand, len(chart.Bands))
	copy(bands, chart.Bands)
	return domain.SizeChart{Name: chart.Name, Bands: bands}, nil
}

// Names returns the built-in chart names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
