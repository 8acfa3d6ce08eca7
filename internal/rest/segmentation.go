package rest

import (
	"context"
	"net/http"
	"time"

	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SegmentationService interface {
	Classify(ctx context.Context, rfm domain.RFM) (domain.SegmentPrediction, error)
}

type SegmentationHandler struct {
	service   SegmentationService
	validator *validator.Validate
	timeout   time.Duration
}

func NewSegmentationHandler(service SegmentationService, timeout time.Duration) *SegmentationHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SegmentationHandler{
		service:   service,
		validator: validator.New(),
		timeout:   timeout,
	}
}

// Pointers distinguish a missing field from an explicit zero.
type SegmentRequest struct {
	Recency   *float64 `json:"recency" validate:"required,gte=0,lte=1000"`
	Frequency *float64 `json:"frequency" validate:"required,gte=0,lte=1000"`
	Monetary  *float64 `json:"monetary" validate:"required,gte=0,lte=100000"`
}

// POST /api/v1/segments
func (h *SegmentationHandler) PredictSegment(c echo.Context) error {
	var req SegmentRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Debug("Invalid segment request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	prediction, err := h.service.Classify(ctx, domain.RFM{
		Recency:   *req.Recency,
		Frequency: *req.Frequency,
		Monetary:  *req.Monetary,
	})
	if err != nil {
		logger.Error("Failed to predict segment", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(prediction))
}
