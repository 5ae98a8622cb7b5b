package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	dataDir string
}

func NewHealthHandler(dataDir string) *HealthHandler {
	return &HealthHandler{dataDir: dataDir}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz probes that the data directory is still writable, since every
// mutation ends in a file write there.
func (h *HealthHandler) Readyz(c *gin.Context) {
	probe := filepath.Join(h.dataDir, ".readyz")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "data_dir": "not writable"})
		return
	}
	_ = os.Remove(probe)

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data_dir": "writable"})
}
