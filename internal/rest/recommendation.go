package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendationService interface {
	Recommend(ctx context.Context, productName string, topN int) ([]domain.ProductRecommendation, error)
	Products(ctx context.Context) ([]string, error)
}

type RecommendationHandler struct {
	service   RecommendationService
	validator *validator.Validate
	timeout   time.Duration
	maxTopN   int
}

func NewRecommendationHandler(service RecommendationService, maxTopN int, timeout time.Duration) *RecommendationHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RecommendationHandler{
		service:   service,
		validator: validator.New(),
		timeout:   timeout,
		maxTopN:   maxTopN,
	}
}

type SimilarProductsQuery struct {
	Product string `query:"product"`
	N       int    `query:"n"`
}

type RecommendationRequest struct {
	ProductName string `json:"product_name"`
	TopN        int    `json:"top_n"`
}

type ProductsQuery struct {
	Q     string `query:"q"`
	Limit int    `query:"limit" validate:"gte=0"`
}

// GET /api/v1/products/similar?product=WHITE+HANGING+HEART&n=5
func (h *RecommendationHandler) GetSimilarProducts(c echo.Context) error {
	var q SimilarProductsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.recommend(c, q.Product, q.N)
}

// POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req RecommendationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.recommend(c, req.ProductName, req.TopN)
}

func (h *RecommendationHandler) recommend(c echo.Context, productName string, topN int) error {
	name := strings.TrimSpace(productName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Please enter a product name."})
	}

	if err := h.validator.Var(topN, fmt.Sprintf("gte=0,lte=%d", h.maxTopN)); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{
			Message: fmt.Sprintf("top_n must be between 0 and %d", h.maxTopN),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.Recommend(ctx, name, topN)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{
				Message: fmt.Sprintf("Product '%s' not found.", productName),
			})
		}
		logger.Error("Failed to get similar products", "error", err, "product", name)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"product":         name,
		"recommendations": recs,
	}))
}

// GET /api/v1/products?q=heart&limit=20
func (h *RecommendationHandler) GetProducts(c echo.Context) error {
	var q ProductsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.service.Products(ctx)
	if err != nil {
		logger.Error("Failed to list products", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	filtered := make([]string, 0)
	needle := strings.ToLower(strings.TrimSpace(q.Q))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p), needle) {
			continue
		}
		filtered = append(filtered, p)
		if q.Limit > 0 && len(filtered) == q.Limit {
			break
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"total":    len(products),
		"products": filtered,
	}))
}
