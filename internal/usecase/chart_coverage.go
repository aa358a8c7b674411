package usecase

import (
	"github.com/stylefit/backend/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// ChartCoverage returns the raw measurement range a chart spans, before any
// tolerance. It is reporting only; matching never consults it.
// An empty chart yields the zero value.
func ChartCoverage(chart domain.SizeChart) domain.ChartCoverage {
	if len(chart.Bands) == 0 {
		return domain.ChartCoverage{}
	}

	n := len(chart.Bands)
	shoulderMins := make([]float64, n)
	shoulderMaxs := make([]float64, n)
	torsoMins := make([]float64, n)
	torsoMaxs := make([]float64, n)
	for i, band := range chart.Bands {
		shoulderMins[i] = band.ShoulderMinCm
		shoulderMaxs[i] = band.ShoulderMaxCm
		torsoMins[i] = band.TorsoMinCm
		torsoMaxs[i] = band.TorsoMaxCm
	}

	return domain.ChartCoverage{
		ShoulderMinCm: floats.Min(shoulderMins),
		ShoulderMaxCm: floats.Max(shoulderMaxs),
		TorsoMinCm:    floats.Min(torsoMins),
		TorsoMaxCm:    floats.Max(torsoMaxs),
	}
}
