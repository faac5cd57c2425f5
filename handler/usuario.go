package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/microservicio/ecode"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/net/resp"
	"github.com/ncobase/microservicio/paging"
	"github.com/ncobase/microservicio/service"
	"github.com/ncobase/microservicio/structs"
)

// UsuarioHandler handles HTTP requests for usuarios.
type UsuarioHandler struct {
	svc          *service.UsuarioService
	maxPageLimit int
	logger       *logger.Logger
}

// NewUsuarioHandler creates a new usuario handler.
func NewUsuarioHandler(svc *service.UsuarioService, maxPageLimit int, logger *logger.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		svc:          svc,
		maxPageLimit: maxPageLimit,
		logger:       logger,
	}
}

// List handles usuario listing.
func (h *UsuarioHandler) List(c *gin.Context) {
	params, err := paging.Parse(c.Query("skip"), c.Query("limit"), h.maxPageLimit)
	if errors.Is(err, paging.ErrInvalidParams) {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	usuarios, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		fail(c, h.logger, err, "failed to list usuarios")
		return
	}

	resp.Success(c.Writer, usuarios)
}

// Get handles usuario retrieval.
func (h *UsuarioHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	usuario, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err, "failed to get usuario", "id", id)
		return
	}

	resp.Success(c.Writer, usuario)
}

// Create handles usuario creation.
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req structs.UsuarioCreate
	if !bindJSON(c, &req) {
		return
	}

	usuario, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err, "failed to create usuario")
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, usuario)
}

// Update handles partial usuario updates.
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req structs.UsuarioUpdate
	if !bindJSON(c, &req) {
		return
	}

	usuario, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, h.logger, err, "failed to update usuario", "id", id)
		return
	}

	resp.Success(c.Writer, usuario)
}

// Delete handles usuario deletion.
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.logger, err, "failed to delete usuario", "id", id)
		return
	}

	resp.Success(c.Writer, map[string]string{"mensaje": ecode.Deleted("Usuario")})
}
