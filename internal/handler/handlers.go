package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-employee-keeper/internal/config"
	"github.com/MKhiriev/go-employee-keeper/internal/handler/http"
	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/metrics"
	"github.com/MKhiriev/go-employee-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. collector and
// metricsHandler may be nil, which disables request metrics and /metrics.
func NewHandlers(services *service.Services, collector metrics.MetricsCollector, metricsHandler nethttp.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, collector, metricsHandler, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
