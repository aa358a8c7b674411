package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylefit/backend/internal/domain"
	"github.com/stylefit/backend/internal/usecase"
)

const (
	serviceName    = "stylefit-backend"
	serviceVersion = "1.0.0"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	sizingService *usecase.SizingService
	colorService  *usecase.ColorService
}

// NewHandler creates a new HTTP handler. Either service may be nil, in which
// case its endpoints answer 501.
func NewHandler(sizingService *usecase.SizingService, colorService *usecase.ColorService) *Handler {
	return &Handler{
		sizingService: sizingService,
		colorService:  colorService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	}
	if h.sizingService != nil {
		response["chart"] = h.sizingService.Chart().Name
	}
	c.JSON(http.StatusOK, response)
}

// GetSizeChart returns the active size chart
func (h *Handler) GetSizeChart(c *gin.Context) {
	if h.sizingService == nil {
		h.notConfigured(c, "Size estimation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chart":            h.sizingService.Chart(),
		"coverage":         h.sizingService.Coverage(),
		"defaultTolerance": h.sizingService.DefaultTolerance(),
	})
}

// EstimateSize handles measurement-based size requests
func (h *Handler) EstimateSize(c *gin.Context) {
	if h.sizingService == nil {
		h.notConfigured(c, "Size estimation")
		return
	}

	var request domain.SizeEstimateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "shoulderCm and torsoCm are required numbers",
		})
		return
	}

	estimate, err := h.sizingService.EstimateSize(&request)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !estimate.Matched() {
		c.JSON(http.StatusOK, gin.H{
			"size":        estimate.Label,
			"candidates":  estimate.Candidates,
			"chart":       estimate.Chart,
			"toleranceCm": estimate.ToleranceCm,
			"warning":     "No size matched within tolerance - adjust measurements or widen tolerance",
		})
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// PredictSize handles body-profile size predictions
func (h *Handler) PredictSize(c *gin.Context) {
	if h.sizingService == nil {
		h.notConfigured(c, "Size prediction")
		return
	}

	var profile domain.BodyProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please fill in height, weight and body type to get a size prediction",
		})
		return
	}

	size, err := h.sizingService.PredictSize(&profile)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"size":     size,
		"bodyType": profile.BodyType,
	})
}

// AnalyzeColors handles color season analysis
func (h *Handler) AnalyzeColors(c *gin.Context) {
	if h.colorService == nil {
		h.notConfigured(c, "Color analysis")
		return
	}

	var features domain.ColorFeatures
	if err := c.ShouldBindJSON(&features); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please select skin tone, eye color and hair color to get a color analysis",
		})
		return
	}

	analysis, err := h.colorService.Analyze(&features)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetPaletteSwatch serves the PNG swatch of a season's palette
func (h *Handler) GetPaletteSwatch(c *gin.Context) {
	if h.colorService == nil {
		h.notConfigured(c, "Color analysis")
		return
	}

	png, err := h.colorService.RenderSwatch(c.Request.Context(), c.Param("season"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) notConfigured(c *gin.Context, feature string) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error": feature + " not configured",
	})
}

// handleError maps domain errors to HTTP status codes
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownSeason):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
