package usecase

import (
	"log"

	"github.com/stylefit/backend/internal/domain"
)

// Tracer receives diagnostic callbacks from SizeEstimator.Match.
// Implementations must not affect classification.
type Tracer interface {
	OnInput(shoulder, torso, tolerance float64)
	OnBand(band, expanded domain.SizeBand)
	OnMatch(candidate domain.MatchCandidate)
	OnDecision(result domain.SizeEstimate)
}

// NopTracer discards every callback
type NopTracer struct{}

func (NopTracer) OnInput(float64, float64, float64) {}

func (NopTracer) OnBand(domain.SizeBand, domain.SizeBand) {}

func (NopTracer) OnMatch(domain.MatchCandidate) {}

func (NopTracer) OnDecision(domain.SizeEstimate) {}

// LogTracer writes each stage of a match to a standard logger
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer creates a tracer writing to logger, or to the standard logger when nil
func NewLogTracer(logger *log.Logger) *LogTracer {
	if logger == nil {
		logger = log.Default()
	}
	return &LogTracer{logger: logger}
}

func (t *LogTracer) OnInput(shoulder, torso, tolerance float64) {
	t.logger.Printf("[SIZE] Input: shoulder=%.1f cm, torso=%.1f cm, tolerance=%.1f cm", shoulder, torso, tolerance)
}

func (t *LogTracer) OnBand(band, expanded domain.SizeBand) {
	t.logger.Printf("[SIZE] Checking %s: shoulder [%.1f, %.1f], torso [%.1f, %.1f]",
		band.Label, expanded.ShoulderMinCm, expanded.ShoulderMaxCm, expanded.TorsoMinCm, expanded.TorsoMaxCm)
}

func (t *LogTracer) OnMatch(candidate domain.MatchCandidate) {
	t.logger.Printf("[SIZE] Match found for %s: distance=%.1f", candidate.Label, candidate.Distance)
}

func (t *LogTracer) OnDecision(result domain.SizeEstimate) {
	if !result.Matched() {
		t.logger.Printf("[SIZE] No sizes matched within tolerance")
		return
	}
	t.logger.Printf("[SIZE] Best match: %s (distance %.1f, %d candidates)",
		result.Label, result.Distance, len(result.Candidates))
}
