package router

import (
	"net/http"

	"shopperSpectrum/app/echo-server/web"
	"shopperSpectrum/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupHomeRoutes(e *echo.Echo, api *echo.Group, handler *rest.HomeHandler) {
	e.GET("/", echo.WrapHandler(http.FileServer(http.FS(web.FS))))
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.GET("", handler.Home)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	products := api.Group("/products")
	products.GET("", handler.GetProducts)
	products.GET("/similar", handler.GetSimilarProducts)

	api.POST("/recommendations", handler.Recommend)
}

func SetupSegmentationRoutes(api *echo.Group, handler *rest.SegmentationHandler) {
	api.POST("/segments", handler.PredictSegment)
}
