package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

func (h *Handlers) GetNumber(c *gin.Context) {
	h.numbers(c, h.fwd.Get)
}

func (h *Handlers) ReverseNumber(c *gin.Context) {
	h.numbers(c, h.fwd.Reverse)
}

func (h *Handlers) PreimageNumber(c *gin.Context) {
	h.numbers(c, h.fwd.GetReverse)
}

func (h *Handlers) numbers(c *gin.Context, query func(string) ([]string, error)) {
	res, err := query(c.Param("number"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"numbers": res})
}
