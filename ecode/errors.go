package ecode

import "fmt"

// Messages returned to API clients.
const (
	MsgInvalidInput = "Datos de entrada no válidos"
	MsgInvalidBody  = "Cuerpo de la petición no válido"
	MsgInvalidID    = "El ID debe ser un número entero"
	MsgEmailTaken   = "El email ya está registrado"
	MsgInternal     = "Error interno del servidor"
)

// NotExist returns the not-found message for an entity id.
func NotExist(entity string, id int64) string {
	return fmt.Sprintf("%s con ID %d no encontrado", entity, id)
}

// Deleted returns the confirmation sent after a delete.
func Deleted(entity string) string {
	return entity + " eliminado correctamente"
}
