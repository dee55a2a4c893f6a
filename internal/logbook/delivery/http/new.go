package http

import (
	"github.com/gin-gonic/gin"

	"halsologg/internal/logbook"
	pkgLog "halsologg/pkg/log"
)

// Handler is the public interface for the logbook HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	List(c *gin.Context)
	Suggest(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc logbook.UseCase
}

// New creates a new HTTP handler for the logbook domain.
func New(l pkgLog.Logger, uc logbook.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
