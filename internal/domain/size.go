package domain

import "fmt"

// UnknownSize is the label returned when no band contains the query point
const UnknownSize = "Unknown"

// SizeBand is one labeled row of a size chart. Bounds are inclusive centimeters.
type SizeBand struct {
	Label         string  `json:"label" yaml:"label"`
	ShoulderMinCm float64 `json:"shoulderMinCm" yaml:"shoulder_min_cm"`
	ShoulderMaxCm float64 `json:"shoulderMaxCm" yaml:"shoulder_max_cm"`
	TorsoMinCm    float64 `json:"torsoMinCm" yaml:"torso_min_cm"`
	TorsoMaxCm    float64 `json:"torsoMaxCm" yaml:"torso_max_cm"`
}

// Centroid returns the midpoint of the shoulder and torso ranges
func (b SizeBand) Centroid() (shoulderMid, torsoMid float64) {
	return (b.ShoulderMinCm + b.ShoulderMaxCm) / 2, (b.TorsoMinCm + b.TorsoMaxCm) / 2
}

// Expanded returns the band's bounds widened by tolerance on every side.
// A negative tolerance shrinks the box.
func (b SizeBand) Expanded(tolerance float64) SizeBand {
	return SizeBand{
		Label:         b.Label,
		ShoulderMinCm: b.ShoulderMinCm - tolerance,
		ShoulderMaxCm: b.ShoulderMaxCm + tolerance,
		TorsoMinCm:    b.TorsoMinCm - tolerance,
		TorsoMaxCm:    b.TorsoMaxCm + tolerance,
	}
}

// Contains reports whether the point lies inside the band, bounds included
func (b SizeBand) Contains(shoulder, torso float64) bool {
	return shoulder >= b.ShoulderMinCm && shoulder <= b.ShoulderMaxCm &&
		torso >= b.TorsoMinCm && torso <= b.TorsoMaxCm
}

// SizeChart is an ordered, read-only table of bands, smallest size first
type SizeChart struct {
	Name  string     `json:"name" yaml:"name"`
	Bands []SizeBand `json:"bands" yaml:"bands"`
}

// Validate checks label uniqueness and min < max on both axes.
// Overlapping bands are allowed.
func (c SizeChart) Validate() error {
	if len(c.Bands) == 0 {
		return fmt.Errorf("%w: chart %q has no bands", ErrInvalidChart, c.Name)
	}

	seen := make(map[string]bool, len(c.Bands))
	for i, band := range c.Bands {
		if band.Label == "" {
			return fmt.Errorf("%w: band %d has no label", ErrInvalidChart, i)
		}
		if band.Label == UnknownSize {
			return fmt.Errorf("%w: label %q is reserved", ErrInvalidChart, UnknownSize)
		}
		if seen[band.Label] {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidChart, band.Label)
		}
		seen[band.Label] = true

		if band.ShoulderMinCm >= band.ShoulderMaxCm {
			return fmt.Errorf("%w: band %q shoulder range [%.1f, %.1f] is empty",
				ErrInvalidChart, band.Label, band.ShoulderMinCm, band.ShoulderMaxCm)
		}
		if band.TorsoMinCm >= band.TorsoMaxCm {
			return fmt.Errorf("%w: band %q torso range [%.1f, %.1f] is empty",
				ErrInvalidChart, band.Label, band.TorsoMinCm, band.TorsoMaxCm)
		}
	}

	return nil
}

// Labels returns the band labels in table order
func (c SizeChart) Labels() []string {
	labels := make([]string, len(c.Bands))
	for i, band := range c.Bands {
		labels[i] = band.Label
	}
	return labels
}

// ChartCoverage is the smallest box enclosing every band of a chart
type ChartCoverage struct {
	ShoulderMinCm float64 `json:"shoulderMinCm"`
	ShoulderMaxCm float64 `json:"shoulderMaxCm"`
	TorsoMinCm    float64 `json:"torsoMinCm"`
	TorsoMaxCm    float64 `json:"torsoMaxCm"`
}

// MatchCandidate is a band whose tolerance-expanded box contains the query point
type MatchCandidate struct {
	Label    string  `json:"label"`
	Distance float64 `json:"distance"` // Euclidean distance to the band centroid (cm)
}

// SizeEstimate is the full outcome of one estimation call
type SizeEstimate struct {
	Label       string           `json:"size"`
	Distance    float64          `json:"distance"`
	Candidates  []MatchCandidate `json:"candidates"`
	Chart       string           `json:"chart"`
	ToleranceCm float64          `json:"toleranceCm"`
}

// Matched reports whether any band contained the query point
func (e SizeEstimate) Matched() bool {
	return e.Label != UnknownSize
}

// SizeEstimateRequest represents a measurement-based size request
type SizeEstimateRequest struct {
	ShoulderCm  *float64 `json:"shoulderCm" binding:"required"`
	TorsoCm     *float64 `json:"torsoCm" binding:"required"`
	ToleranceCm *float64 `json:"toleranceCm,omitempty"`
}

// BodyProfile holds the inputs for body-type based size prediction
type BodyProfile struct {
	HeightCm int    `json:"heightCm" binding:"required"`
	WeightKg int    `json:"weightKg" binding:"required"`
	ChestCm  int    `json:"chestCm,omitempty"` // optional, 0 when absent
	BodyType string `json:"bodyType" binding:"required"`
}

// Body types offered by the prediction form
const (
	BodyTypeSlim     = "slim"
	BodyTypeRegular  = "regular"
	BodyTypeAthletic = "athletic"
)
