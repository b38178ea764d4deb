package http

import (
	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/internal/service"
)

// Handler owns the HTTP surface: route registration, middleware and the
// request handlers that call into the service layer.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	return &Handler{services: services, logger: logger}
}
