package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/microservicio/config"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/net/resp"
)

// HealthHandler serves the liveness and welcome endpoints.
type HealthHandler struct {
	data    *data.Data
	checkDB bool
	name    string
	version string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(d *data.Data, cfg *config.Config) *HealthHandler {
	h := &HealthHandler{
		data:    d,
		name:    cfg.AppName,
		version: cfg.AppVersion,
	}
	if cfg.Server != nil {
		h.checkDB = cfg.Server.HealthCheckDatabase
	}
	return h
}

// serviceID turns "Microservicio API" into "microservicio-api".
func serviceID(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// Health reports liveness. With server.health_check_database it also pings
// the database and answers 500 when it is down.
func (h *HealthHandler) Health(c *gin.Context) {
	body := map[string]any{
		"status":  "healthy",
		"service": serviceID(h.name),
	}
	if !h.checkDB || h.data == nil {
		resp.Success(c.Writer, body)
		return
	}

	report := h.data.Health(c.Request.Context())
	body["status"] = report["status"]
	body["checks"] = report["services"]
	if report["status"] != "healthy" {
		c.JSON(http.StatusInternalServerError, body)
		return
	}
	resp.Success(c.Writer, body)
}

// Root answers the welcome message.
func (h *HealthHandler) Root(c *gin.Context) {
	resp.Success(c.Writer, map[string]string{
		"message": fmt.Sprintf("Bienvenido al %s", h.name),
		"version": h.version,
	})
}
