package usecase

import (
	"bytes"
	"log"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylefit/backend/internal/domain"
	"github.com/stylefit/backend/internal/infrastructure/charts"
)

func classicEstimator(t *testing.T) *SizeEstimator {
	t.Helper()
	chart, err := charts.Builtin(charts.Classic)
	require.NoError(t, err)
	return NewSizeEstimator(chart, nil)
}

func fineEstimator(t *testing.T) *SizeEstimator {
	t.Helper()
	chart, err := charts.Builtin(charts.Fine)
	require.NoError(t, err)
	return NewSizeEstimator(chart, nil)
}

func candidateLabels(estimate domain.SizeEstimate) []string {
	labels := make([]string, len(estimate.Candidates))
	for i, c := range estimate.Candidates {
		labels[i] = c.Label
	}
	return labels
}

func TestEstimate_ClassicScenarios(t *testing.T) {
	estimator := classicEstimator(t)

	tests := []struct {
		name      string
		shoulder  float64
		torso     float64
		tolerance float64
		want      string
	}{
		{"near center of M", 45, 70, DefaultTolerance, "M"},
		{"origin matches nothing", 0, 0, DefaultTolerance, domain.UnknownSize},
		{"exact centroid of S", 42.5, 65.5, DefaultTolerance, "S"},
		{"far outside every box", 100, 100, DefaultTolerance, domain.UnknownSize},
		{"S and M tie at the shared corner, S listed first", 44, 68, DefaultTolerance, "S"},
		{"negative measurements", -42, -65, DefaultTolerance, domain.UnknownSize},
		{"zero tolerance inside raw box", 48.5, 75.5, 0, "L"},
		{"zero tolerance just outside every box", 37.9, 60, 0, domain.UnknownSize},
		{"inclusive expanded lower bound", 34, 54, DefaultTolerance, "XS"},
		{"inclusive expanded upper bound", 61, 92, DefaultTolerance, "XXL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimator.Estimate(tt.shoulder, tt.torso, tt.tolerance))
		})
	}
}

func TestEstimateDefault_UsesDefaultTolerance(t *testing.T) {
	estimator := classicEstimator(t)

	// Just inside XS only when the default 4cm margin applies
	assert.Equal(t, "XS", estimator.EstimateDefault(34.5, 56))
	assert.Equal(t, domain.UnknownSize, estimator.Estimate(34.5, 56, 0))
	assert.Equal(t, estimator.Estimate(45, 70, DefaultTolerance), estimator.EstimateDefault(45, 70))
}

func TestMatch_Candidates(t *testing.T) {
	estimator := classicEstimator(t)

	t.Run("reports all candidates in table order", func(t *testing.T) {
		result := estimator.Match(45, 70, DefaultTolerance)

		assert.Equal(t, "M", result.Label)
		assert.Equal(t, []string{"S", "M", "L"}, candidateLabels(result))
		assert.InDelta(t, math.Sqrt(0.5), result.Distance, 1e-9)
		assert.InDelta(t, math.Sqrt(26.5), result.Candidates[0].Distance, 1e-9)
		assert.InDelta(t, math.Sqrt(42.5), result.Candidates[2].Distance, 1e-9)
		assert.Equal(t, charts.Classic, result.Chart)
		assert.Equal(t, DefaultTolerance, result.ToleranceCm)
		assert.True(t, result.Matched())
	})

	t.Run("tie keeps the earlier band", func(t *testing.T) {
		result := estimator.Match(44, 68, DefaultTolerance)

		require.Equal(t, []string{"S", "M"}, candidateLabels(result))
		assert.Equal(t, result.Candidates[0].Distance, result.Candidates[1].Distance)
		assert.InDelta(t, math.Sqrt(8.5), result.Distance, 1e-9)
		assert.Equal(t, "S", result.Label)
	})

	t.Run("no candidates yields empty list and Unknown", func(t *testing.T) {
		result := estimator.Match(0, 0, DefaultTolerance)

		assert.Equal(t, domain.UnknownSize, result.Label)
		assert.NotNil(t, result.Candidates)
		assert.Empty(t, result.Candidates)
		assert.Zero(t, result.Distance)
		assert.False(t, result.Matched())
	})
}

func TestMatch_NegativeTolerance(t *testing.T) {
	estimator := classicEstimator(t)

	// M's centroid survives a 1cm shrink but every box is empty at -2cm
	// except XXL, which does not contain the point
	assert.Equal(t, "M", estimator.Estimate(45.5, 70.5, -1))
	assert.Equal(t, domain.UnknownSize, estimator.Estimate(45.5, 70.5, -2))
}

func TestMatch_TieBreakFollowsTableOrder(t *testing.T) {
	box := domain.SizeBand{ShoulderMinCm: 40, ShoulderMaxCm: 44, TorsoMinCm: 60, TorsoMaxCm: 64}
	a, b := box, box
	a.Label = "A"
	b.Label = "B"

	forward := NewSizeEstimator(domain.SizeChart{Name: "forward", Bands: []domain.SizeBand{a, b}}, nil)
	reverse := NewSizeEstimator(domain.SizeChart{Name: "reverse", Bands: []domain.SizeBand{b, a}}, nil)

	assert.Equal(t, "A", forward.Estimate(41, 61, 0))
	assert.Equal(t, "B", reverse.Estimate(41, 61, 0))
}

func TestMatch_TieThroughDifferentOffsets(t *testing.T) {
	estimator := fineEstimator(t)

	// XS is off by (-2.75, 4.5) and S by (-5.25, 0.5); both square to 27.8125
	result := estimator.Match(36.5, 64.5, DefaultTolerance)

	require.Equal(t, []string{"XS", "S"}, candidateLabels(result))
	assert.Equal(t, result.Candidates[0].Distance, result.Candidates[1].Distance)
	assert.Equal(t, math.Sqrt(27.8125), result.Distance)
	assert.Equal(t, "XS", result.Label)
}

// referenceEstimate recomputes the match with the textbook formula
func referenceEstimate(chart domain.SizeChart, shoulder, torso, tolerance float64) string {
	label := domain.UnknownSize
	best := math.Inf(1)
	for _, band := range chart.Bands {
		if shoulder < band.ShoulderMinCm-tolerance || shoulder > band.ShoulderMaxCm+tolerance ||
			torso < band.TorsoMinCm-tolerance || torso > band.TorsoMaxCm+tolerance {
			continue
		}
		ds := shoulder - (band.ShoulderMinCm+band.ShoulderMaxCm)/2
		dt := torso - (band.TorsoMinCm+band.TorsoMaxCm)/2
		if d := math.Sqrt(ds*ds + dt*dt); d < best {
			best = d
			label = band.Label
		}
	}
	return label
}

func TestMatch_AgreesWithReferenceFormula(t *testing.T) {
	for _, name := range charts.Names() {
		chart, err := charts.Builtin(name)
		require.NoError(t, err)
		estimator := NewSizeEstimator(chart, nil)

		for _, tolerance := range []float64{0, 1, 2.5, 4, 7.3} {
			for shoulder := 28.0; shoulder <= 66; shoulder += 0.25 {
				for torso := 48.0; torso <= 96; torso += 0.4 {
					want := referenceEstimate(chart, shoulder, torso, tolerance)
					if got := estimator.Estimate(shoulder, torso, tolerance); got != want {
						t.Fatalf("chart %s Estimate(%v, %v, %v) = %s, want %s", name, shoulder, torso, tolerance, got, want)
					}
				}
			}
		}
	}
}

func TestMatch_CentroidExactness(t *testing.T) {
	for _, name := range charts.Names() {
		chart, err := charts.Builtin(name)
		require.NoError(t, err)
		estimator := NewSizeEstimator(chart, nil)

		for _, band := range chart.Bands {
			shoulderMid, torsoMid := band.Centroid()
			for _, tolerance := range []float64{0, DefaultTolerance, 10} {
				result := estimator.Match(shoulderMid, torsoMid, tolerance)
				assert.Equal(t, band.Label, result.Label, "chart %s band %s tolerance %.1f", name, band.Label, tolerance)
				assert.Zero(t, result.Distance)
			}
		}
	}
}

func TestMatch_Totality(t *testing.T) {
	for _, name := range charts.Names() {
		chart, err := charts.Builtin(name)
		require.NoError(t, err)
		estimator := NewSizeEstimator(chart, nil)

		valid := map[string]bool{domain.UnknownSize: true}
		for _, label := range chart.Labels() {
			valid[label] = true
		}

		for shoulder := -10.0; shoulder <= 80; shoulder += 2.5 {
			for torso := -10.0; torso <= 110; torso += 2.5 {
				for _, tolerance := range []float64{0, 1, DefaultTolerance, 25} {
					label := estimator.Estimate(shoulder, torso, tolerance)
					if !valid[label] {
						t.Fatalf("Estimate(%v, %v, %v) = %q, not in chart %s", shoulder, torso, tolerance, label, name)
					}
				}
			}
		}
	}
}

func TestMatch_MonotonicTolerance(t *testing.T) {
	estimator := classicEstimator(t)
	tolerances := []float64{0, 0.5, 1, 2, 4, 8, 16}

	for shoulder := 30.0; shoulder <= 65; shoulder += 1.5 {
		for torso := 50.0; torso <= 96; torso += 1.5 {
			previous := map[string]bool{}
			for _, tolerance := range tolerances {
				current := map[string]bool{}
				for _, label := range candidateLabels(estimator.Match(shoulder, torso, tolerance)) {
					current[label] = true
				}
				for label := range previous {
					if !current[label] {
						t.Fatalf("(%v, %v): %s matched below tolerance %v but not at it", shoulder, torso, label, tolerance)
					}
				}
				previous = current
			}
		}
	}
}

func TestMatch_NoMatchBoundary(t *testing.T) {
	estimator := classicEstimator(t)

	// Classic shoulder spans [38, 57]; with 4cm margin the union is [34, 61]
	assert.Equal(t, domain.UnknownSize, estimator.Estimate(33.99, 70, DefaultTolerance))
	assert.Equal(t, domain.UnknownSize, estimator.Estimate(61.01, 85, DefaultTolerance))
	// Inside on shoulder for M but outside M's torso, and outside every other box
	assert.Equal(t, domain.UnknownSize, estimator.Estimate(45.5, 40, DefaultTolerance))
}

func TestMatch_Idempotent(t *testing.T) {
	estimator := classicEstimator(t)

	first := estimator.Match(47.2, 74.9, 3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, estimator.Match(47.2, 74.9, 3))
	}
}

func TestMatch_ConcurrentCalls(t *testing.T) {
	estimator := classicEstimator(t)
	want := estimator.Estimate(45, 70, DefaultTolerance)

	var wg sync.WaitGroup
	results := make([]string, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = estimator.Estimate(45, 70, DefaultTolerance)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestFineChart(t *testing.T) {
	estimator := fineEstimator(t)

	assert.Equal(t, "M", estimator.Estimate(44.25, 68, DefaultTolerance))
	assert.Equal(t, "XXXL", estimator.Estimate(55.5, 84.5, DefaultTolerance))
	assert.Equal(t, domain.UnknownSize, estimator.Estimate(0, 0, DefaultTolerance))
	assert.Len(t, estimator.Chart().Bands, 7)
}

func TestNewSizeEstimator_CopiesChart(t *testing.T) {
	chart, err := charts.Builtin(charts.Classic)
	require.NoError(t, err)

	estimator := NewSizeEstimator(chart, nil)
	chart.Bands[2].Label = "mutated"

	assert.Equal(t, "M", estimator.Estimate(45.5, 70.5, 0))

	exposed := estimator.Chart()
	exposed.Bands[2].Label = "mutated again"
	assert.Equal(t, "M", estimator.Chart().Bands[2].Label)
}

// recordingTracer counts tracer callbacks
type recordingTracer struct {
	inputs    int
	bands     []string
	matches   []string
	decisions []domain.SizeEstimate
}

func (r *recordingTracer) OnInput(float64, float64, float64) { r.inputs++ }

func (r *recordingTracer) OnBand(band, _ domain.SizeBand) { r.bands = append(r.bands, band.Label) }

func (r *recordingTracer) OnMatch(c domain.MatchCandidate) { r.matches = append(r.matches, c.Label) }

func (r *recordingTracer) OnDecision(result domain.SizeEstimate) {
	r.decisions = append(r.decisions, result)
}

func TestMatch_TracerHooks(t *testing.T) {
	chart, err := charts.Builtin(charts.Classic)
	require.NoError(t, err)

	tracer := &recordingTracer{}
	estimator := NewSizeEstimator(chart, tracer)

	result := estimator.Match(45, 70, DefaultTolerance)

	assert.Equal(t, 1, tracer.inputs)
	assert.Equal(t, chart.Labels(), tracer.bands)
	assert.Equal(t, []string{"S", "M", "L"}, tracer.matches)
	require.Len(t, tracer.decisions, 1)
	assert.Equal(t, result, tracer.decisions[0])
}

func TestLogTracer_DoesNotChangeResults(t *testing.T) {
	chart, err := charts.Builtin(charts.Classic)
	require.NoError(t, err)

	var buf bytes.Buffer
	traced := NewSizeEstimator(chart, NewLogTracer(log.New(&buf, "", 0)))
	plain := NewSizeEstimator(chart, nil)

	for _, point := range [][2]float64{{45, 70}, {0, 0}, {44, 68}, {53, 83}} {
		assert.Equal(t, plain.Match(point[0], point[1], DefaultTolerance), traced.Match(point[0], point[1], DefaultTolerance))
	}
	assert.NotEmpty(t, buf.String())
}
