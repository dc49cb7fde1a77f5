package handlers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log/slog"
	"net/http"
	"phoneforward/internal/app/domain/forward"
	"phoneforward/internal/app/ports"
	"phoneforward/pkg/logger"
	"time"
)

type Handlers struct {
	log     logger.Logger
	fwd     ports.ForwardingPort
	events  http.Handler
	started time.Time
}

func New(log logger.Logger, fwd ports.ForwardingPort, events http.Handler) *Handlers {
	return &Handlers{
		log:     log,
		fwd:     fwd,
		events:  events,
		started: time.Now(),
	}
}

func (h *Handlers) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, forward.ErrInvalidNumber), errors.Is(err, forward.ErrSelfForward):
		status = http.StatusBadRequest
	case errors.Is(err, forward.ErrNoSpace):
		status = http.StatusInsufficientStorage
	default:
		h.log.Error("Request failed", err, slog.String("path", c.FullPath()))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
