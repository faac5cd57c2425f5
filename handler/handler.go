// Package handler exposes the HTTP API over gin.
package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/microservicio/config"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/ecode"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/logging/observes"
	"github.com/ncobase/microservicio/net/resp"
	"github.com/ncobase/microservicio/service"
	"github.com/ncobase/microservicio/validator"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Usuario  *UsuarioHandler
	Producto *ProductoHandler
	Health   *HealthHandler
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, d *data.Data, cfg *config.Config, logger *logger.Logger) *Handler {
	maxPageLimit := 0
	if cfg.Server != nil {
		maxPageLimit = cfg.Server.MaxPageLimit
	}
	return &Handler{
		Usuario:  NewUsuarioHandler(svc.Usuario, maxPageLimit, logger),
		Producto: NewProductoHandler(svc.Producto, maxPageLimit, logger),
		Health:   NewHealthHandler(d, cfg),
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound(""))
	})
	r.NoMethod(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotAllowed(""))
	})

	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)

	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("", h.Usuario.List)
		usuarios.POST("", h.Usuario.Create)
		usuarios.GET("/:id", h.Usuario.Get)
		usuarios.PUT("/:id", h.Usuario.Update)
		usuarios.DELETE("/:id", h.Usuario.Delete)
	}

	productos := r.Group("/productos")
	{
		productos.GET("", h.Producto.List)
		productos.POST("", h.Producto.Create)
		productos.GET("/:id", h.Producto.Get)
		productos.PUT("/:id", h.Producto.Update)
		productos.DELETE("/:id", h.Producto.Delete)
	}
}

// parseID reads the :id path segment.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.Fail(c.Writer, resp.BadRequest(ecode.MsgInvalidID))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body into req and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields := validator.TranslateErrors(req, err); len(fields) > 0 {
			resp.Fail(c.Writer, resp.InvalidParams(ecode.MsgInvalidInput, fields))
		} else {
			resp.Fail(c.Writer, resp.BadRequest(ecode.MsgInvalidBody))
		}
		return false
	}
	return true
}

// fail maps a service error onto the HTTP response. Unexpected errors are
// logged, reported to sentry and answered with a generic message.
func fail(c *gin.Context, l *logger.Logger, err error, msg string, kv ...any) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		resp.Fail(c.Writer, resp.NotFound(err.Error()))
	case errors.Is(err, service.ErrConflict):
		resp.Fail(c.Writer, resp.Conflict(err.Error()))
	case errors.Is(err, service.ErrInvalid):
		resp.Fail(c.Writer, resp.InvalidParams(err.Error(), service.FieldErrors(err)))
	default:
		ctx := c.Request.Context()
		l.Error(ctx, msg, append(kv, "error", err)...)
		observes.CaptureError(ctx, err, map[string]string{"route": c.FullPath()})
		if errors.Is(err, context.DeadlineExceeded) {
			resp.Fail(c.Writer, resp.ServiceUnavailable(ecode.MsgInternal))
			return
		}
		resp.Fail(c.Writer, resp.InternalServer(ecode.MsgInternal))
	}
}
