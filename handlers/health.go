package handlers

import (
	"net/http"

	"complyhub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest stored health snapshot from the
// background monitor.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status})
}
