package http

import (
	"net/http"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/metrics"
	"github.com/MKhiriev/go-employee-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics records request, login and latency metrics.
	metrics metrics.MetricsCollector
	// metricsHandler serves /metrics; the route is not registered when nil.
	metricsHandler http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, collector metrics.MetricsCollector, metricsHandler http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        collector,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}
