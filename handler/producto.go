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

// ProductoHandler handles HTTP requests for productos.
type ProductoHandler struct {
	svc          *service.ProductoService
	maxPageLimit int
	logger       *logger.Logger
}

// NewProductoHandler creates a new producto handler.
func NewProductoHandler(svc *service.ProductoService, maxPageLimit int, logger *logger.Logger) *ProductoHandler {
	return &ProductoHandler{
		svc:          svc,
		maxPageLimit: maxPageLimit,
		logger:       logger,
	}
}

// List handles producto listing.
func (h *ProductoHandler) List(c *gin.Context) {
	params, err := paging.Parse(c.Query("skip"), c.Query("limit"), h.maxPageLimit)
	if errors.Is(err, paging.ErrInvalidParams) {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	productos, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		fail(c, h.logger, err, "failed to list productos")
		return
	}

	resp.Success(c.Writer, productos)
}

// Get handles producto retrieval.
func (h *ProductoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	producto, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err, "failed to get producto", "id", id)
		return
	}

	resp.Success(c.Writer, producto)
}

// Create handles producto creation.
func (h *ProductoHandler) Create(c *gin.Context) {
	var req structs.ProductoCreate
	if !bindJSON(c, &req) {
		return
	}

	producto, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err, "failed to create producto")
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, producto)
}

// Update handles partial producto updates.
func (h *ProductoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req structs.ProductoUpdate
	if !bindJSON(c, &req) {
		return
	}

	producto, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, h.logger, err, "failed to update producto", "id", id)
		return
	}

	resp.Success(c.Writer, producto)
}

// Delete handles producto deletion.
func (h *ProductoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.logger, err, "failed to delete producto", "id", id)
		return
	}

	resp.Success(c.Writer, map[string]string{"mensaje": ecode.Deleted("Producto")})
}
