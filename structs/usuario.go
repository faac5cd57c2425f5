package structs

import (
	"time"

	"github.com/ncobase/microservicio/types"
	"github.com/ncobase/microservicio/validator"
)

// Usuario is a stored user.
type Usuario struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"`
	Email              string    `json:"email"`
	Activo             bool      `json:"activo"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// UsuarioCreate is the body of POST /usuarios.
type UsuarioCreate struct {
	Nombre string `json:"nombre" binding:"required,max=100"`
	Email  string `json:"email" binding:"required,email,max=100"`
	Activo *bool  `json:"activo,omitempty"`
}

// Build returns the usuario to insert, with defaults applied.
func (r *UsuarioCreate) Build() *Usuario {
	return &Usuario{
		Nombre: r.Nombre,
		Email:  r.Email,
		Activo: types.ToValueOr(r.Activo, true),
	}
}

// UsuarioUpdate is the body of PUT /usuarios/{id}. Every field is optional.
type UsuarioUpdate struct {
	Nombre types.Optional[string] `json:"nombre"`
	Email  types.Optional[string] `json:"email"`
	Activo types.Optional[bool]   `json:"activo"`
}

// Empty reports whether no field was supplied.
func (r *UsuarioUpdate) Empty() bool {
	return !r.Nombre.Set && !r.Email.Set && !r.Activo.Set
}

// Validate checks the supplied fields and returns messages keyed by JSON name.
func (r *UsuarioUpdate) Validate() map[string]string {
	errs := make(map[string]string)
	checkOptional(errs, "nombre", r.Nombre, "max=100")
	checkOptional(errs, "email", r.Email, "email,max=100")
	checkOptional(errs, "activo", r.Activo, "")
	return errs
}

// checkOptional rejects null and validates present values against tag.
func checkOptional[T any](errs map[string]string, field string, o types.Optional[T], tag string) {
	switch {
	case !o.Set:
	case o.Null:
		errs[field] = validator.Message(field, "null")
	case tag != "":
		if msg := validator.Var(field, o.Value, tag); msg != "" {
			errs[field] = msg
		}
	}
}
