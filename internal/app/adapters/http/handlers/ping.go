package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"net/http"
	"runtime"
	"time"
)

func (h *Handlers) Ping(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	cpuPercent := 0.0
	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		cpuPercent = percent[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"uptime":      time.Since(h.started).Truncate(time.Second).String(),
		"cpu_percent": cpuPercent,
		"memory_mb":   m.Sys / 1024 / 1024,
		"engine":      h.fwd.Stats(),
	})
}

func (h *Handlers) Events(c *gin.Context) {
	h.events.ServeHTTP(c.Writer, c.Request)
}
