package usecase

import (
	"github.com/stylefit/backend/internal/domain"
)

// SizingServiceConfig holds configuration for the sizing service
type SizingServiceConfig struct {
	DefaultTolerance   float64
	EnableDebugLogging bool
}

// SizingService answers measurement and body-profile size requests
type SizingService struct {
	estimator        *SizeEstimator
	predictor        *SizePredictor
	defaultTolerance float64
}

// NewSizingService creates a sizing service over the given chart.
// A negative default tolerance falls back to DefaultTolerance.
func NewSizingService(chart domain.SizeChart, config SizingServiceConfig) *SizingService {
	var tracer Tracer = NopTracer{}
	if config.EnableDebugLogging {
		tracer = NewLogTracer(nil)
	}

	tolerance := config.DefaultTolerance
	if tolerance < 0 {
		tolerance = DefaultTolerance
	}

	return &SizingService{
		estimator:        NewSizeEstimator(chart, tracer),
		predictor:        NewSizePredictor(),
		defaultTolerance: tolerance,
	}
}

// EstimateSize matches the request's measurements against the chart.
// A missing tolerance uses the configured default. An unmatched point is not
// an error: the estimate carries domain.UnknownSize.
func (s *SizingService) EstimateSize(request *domain.SizeEstimateRequest) (*domain.SizeEstimate, error) {
	if request == nil || request.ShoulderCm == nil || request.TorsoCm == nil {
		return nil, domain.ErrInvalidRequest
	}

	tolerance := s.defaultTolerance
	if request.ToleranceCm != nil {
		tolerance = *request.ToleranceCm
	}

	estimate := s.estimator.Match(*request.ShoulderCm, *request.TorsoCm, tolerance)
	return &estimate, nil
}

// PredictSize runs the body-type heuristic
func (s *SizingService) PredictSize(profile *domain.BodyProfile) (string, error) {
	return s.predictor.Predict(profile)
}

// Chart returns the active size chart
func (s *SizingService) Chart() domain.SizeChart {
	return s.estimator.Chart()
}

// DefaultTolerance returns the tolerance applied when a request omits one
func (s *SizingService) DefaultTolerance() float64 {
	return s.defaultTolerance
}

// Coverage returns the measurement range spanned by the active chart
func (s *SizingService) Coverage() domain.ChartCoverage {
	return ChartCoverage(s.estimator.Chart())
}
