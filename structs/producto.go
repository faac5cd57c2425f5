package structs

import (
	"time"

	"github.com/ncobase/microservicio/types"
	"github.com/ncobase/microservicio/validator"
)

// Producto is a stored product. Precio is an integer amount.
type Producto struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"`
	Descripcion        *string   `json:"descripcion"`
	Precio             int64     `json:"precio"`
	Stock              int64     `json:"stock"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// ProductoCreate is the body of POST /productos.
type ProductoCreate struct {
	Nombre      string  `json:"nombre" binding:"required,max=150"`
	Descripcion *string `json:"descripcion,omitempty" binding:"omitempty,max=500"`
	Precio      *int64  `json:"precio" binding:"required,min=0"`
	Stock       *int64  `json:"stock,omitempty" binding:"omitempty,min=0"`
}

// Build returns the producto to insert, with defaults applied.
func (r *ProductoCreate) Build() *Producto {
	return &Producto{
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Precio:      types.ToValue(r.Precio),
		Stock:       types.ToValue(r.Stock),
	}
}

// ProductoUpdate is the body of PUT /productos/{id}. Descripcion accepts
// null to clear it; the other fields reject null.
type ProductoUpdate struct {
	Nombre      types.Optional[string] `json:"nombre"`
	Descripcion types.Optional[string] `json:"descripcion"`
	Precio      types.Optional[int64]  `json:"precio"`
	Stock       types.Optional[int64]  `json:"stock"`
}

// Empty reports whether no field was supplied.
func (r *ProductoUpdate) Empty() bool {
	return !r.Nombre.Set && !r.Descripcion.Set && !r.Precio.Set && !r.Stock.Set
}

// Validate checks the supplied fields and returns messages keyed by JSON name.
func (r *ProductoUpdate) Validate() map[string]string {
	errs := make(map[string]string)
	checkOptional(errs, "nombre", r.Nombre, "max=150")
	if r.Descripcion.Present() {
		if msg := validator.Var("descripcion", r.Descripcion.Value, "max=500"); msg != "" {
			errs["descripcion"] = msg
		}
	}
	checkOptional(errs, "precio", r.Precio, "min=0")
	checkOptional(errs, "stock", r.Stock, "min=0")
	return errs
}
