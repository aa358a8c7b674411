package usecase

import (
	"math"

	"github.com/stylefit/backend/internal/domain"
)

// DefaultTolerance is the margin (cm) added to every band when none is given
const DefaultTolerance = 4.0

// SizeEstimator matches a (shoulder, torso) measurement pair against a size chart.
//
// A band is a candidate when the point lies inside its box widened by the
// tolerance on both axes independently. Among candidates the band whose
// centroid is closest wins; exact ties go to the band listed first.
// The estimator holds no mutable state and is safe for concurrent use.
type SizeEstimator struct {
	chart  domain.SizeChart
	tracer Tracer
}

// NewSizeEstimator creates an estimator over the given chart.
// A nil tracer disables tracing.
func NewSizeEstimator(chart domain.SizeChart, tracer Tracer) *SizeEstimator {
	if tracer == nil {
		tracer = NopTracer{}
	}

	bands := make([]domain.SizeBand, len(chart.Bands))
	copy(bands, chart.Bands)

	return &SizeEstimator{
		chart:  domain.SizeChart{Name: chart.Name, Bands: bands},
		tracer: tracer,
	}
}

// Chart returns a copy of the chart the estimator matches against
func (e *SizeEstimator) Chart() domain.SizeChart {
	bands := make([]domain.SizeBand, len(e.chart.Bands))
	copy(bands, e.chart.Bands)
	return domain.SizeChart{Name: e.chart.Name, Bands: bands}
}

// Estimate returns the label of the best matching band, or domain.UnknownSize
func (e *SizeEstimator) Estimate(shoulder, torso, tolerance float64) string {
	return e.Match(shoulder, torso, tolerance).Label
}

// EstimateDefault is Estimate with DefaultTolerance
func (e *SizeEstimator) EstimateDefault(shoulder, torso float64) string {
	return e.Estimate(shoulder, torso, DefaultTolerance)
}

// Match evaluates every band and returns the winner along with all candidates
// in table order. Inputs are not validated.
func (e *SizeEstimator) Match(shoulder, torso, tolerance float64) domain.SizeEstimate {
	e.tracer.OnInput(shoulder, torso, tolerance)

	result := domain.SizeEstimate{
		Label:       domain.UnknownSize,
		Candidates:  []domain.MatchCandidate{},
		Chart:       e.chart.Name,
		ToleranceCm: tolerance,
	}
	bestDistance := math.Inf(1)

	for _, band := range e.chart.Bands {
		expanded := band.Expanded(tolerance)
		e.tracer.OnBand(band, expanded)

		if !expanded.Contains(shoulder, torso) {
			continue
		}

		candidate := domain.MatchCandidate{
			Label:    band.Label,
			Distance: centroidDistance(band, shoulder, torso),
		}
		e.tracer.OnMatch(candidate)
		result.Candidates = append(result.Candidates, candidate)

		// Strict comparison keeps the earliest band on ties
		if candidate.Distance < bestDistance {
			bestDistance = candidate.Distance
			result.Label = candidate.Label
			result.Distance = candidate.Distance
		}
	}

	e.tracer.OnDecision(result)
	return result
}

// centroidDistance is the plain Euclidean distance to the band centroid.
// Scaled norms are avoided so equal squared distances stay bit-identical.
func centroidDistance(band domain.SizeBand, shoulder, torso float64) float64 {
	shoulderMid, torsoMid := band.Centroid()
	ds := shoulder - shoulderMid
	dt := torso - torsoMid
	return math.Sqrt(ds*ds + dt*dt)
}
