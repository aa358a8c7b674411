package usecase

import (
	"fmt"
	"strings"

	"github.com/stylefit/backend/internal/domain"
)

// SizePredictor estimates a garment size from height, weight, chest and body type
type SizePredictor struct{}

// NewSizePredictor creates a new size predictor
func NewSizePredictor() *SizePredictor {
	return &SizePredictor{}
}

// Predict returns a size label for the profile. Height, weight and body type
// are required; chest is only consulted for athletic builds.
// Unrecognized body types fall back to M.
func (p *SizePredictor) Predict(profile *domain.BodyProfile) (string, error) {
	if profile == nil {
		return "", domain.ErrInvalidRequest
	}
	if profile.HeightCm == 0 || profile.WeightKg == 0 || strings.TrimSpace(profile.BodyType) == "" {
		return "", fmt.Errorf("%w: height, weight and body type are required", domain.ErrInvalidRequest)
	}

	height := profile.HeightCm
	weight := profile.WeightKg
	chest := profile.ChestCm

	switch strings.ToLower(strings.TrimSpace(profile.BodyType)) {
	case domain.BodyTypeSlim:
		switch {
		case height < 170 && weight < 65:
			return "S", nil
		case height >= 170 && weight < 70:
			return "M", nil
		default:
			return "L", nil
		}
	case domain.BodyTypeAthletic:
		switch {
		case chest < 95:
			return "M", nil
		case chest < 105:
			return "L", nil
		default:
			return "XL", nil
		}
	case domain.BodyTypeRegular:
		switch {
		case weight < 70:
			return "M", nil
		case weight < 85:
			return "L", nil
		default:
			return "XL", nil
		}
	}

	return "M", nil
}
