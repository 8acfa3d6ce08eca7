package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type HomeHandler struct {
	name     string
	version  string
	products int
}

func NewHomeHandler(name, version string, products int) *HomeHandler {
	return &HomeHandler{
		name:     name,
		version:  version,
		products: products,
	}
}

type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Endpoint    string `json:"endpoint"`
}

func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"name":     h.name,
		"version":  h.version,
		"products": h.products,
		"tools": []Tool{
			{
				Name:        "Product Recommendation",
				Description: "Find similar products using collaborative filtering, based on what other customers bought.",
				Endpoint:    "POST /api/v1/recommendations",
			},
			{
				Name:        "Customer Segmentation",
				Description: "Segment customers into High-Value, Regular, Occasional and At-Risk groups from recency, frequency and monetary value.",
				Endpoint:    "POST /api/v1/segments",
			},
		},
	}))
}

func (h *HomeHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
