package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"phoneforward/internal/app/ports"
)

type addForwardRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

func (h *Handlers) AddForward(c *gin.Context) {
	var req addForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.fwd.Add(req.From, req.To); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ports.Rule{From: req.From, To: req.To})
}

func (h *Handlers) RemoveForward(c *gin.Context) {
	removed, err := h.fwd.Remove(c.Param("prefix"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"removed": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func (h *Handlers) ClearForwards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"removed": h.fwd.Clear()})
}

func (h *Handlers) ListForwards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"forwards": h.fwd.Rules()})
}
