package resp

import (
	"net/http"

	"github.com/ncobase/microservicio/ecode"
)

// BadRequest indicates a bad request.
func BadRequest(message string, data ...any) *Exception {
	return newException(http.StatusBadRequest, ecode.RequestErr, message, data...)
}

// InvalidParams indicates request fields that failed validation.
func InvalidParams(message string, data ...any) *Exception {
	return newException(http.StatusBadRequest, ecode.ParamErr, message, data...)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, data ...any) *Exception {
	return newException(http.StatusNotFound, ecode.NothingFound, message, data...)
}

// Conflict indicates a conflict error.
func Conflict(message string, data ...any) *Exception {
	return newException(http.StatusConflict, ecode.Conflict, message, data...)
}

// NotAllowed indicates a not allowed error.
func NotAllowed(message string, data ...any) *Exception {
	return newException(http.StatusMethodNotAllowed, ecode.MethodNotAllowed, message, data...)
}

// InternalServer indicates a server error.
func InternalServer(message string, data ...any) *Exception {
	return newException(http.StatusInternalServerError, ecode.ServerErr, message, data...)
}

// ServiceUnavailable indicates a dependency, such as the database, is down.
func ServiceUnavailable(message string, data ...any) *Exception {
	return newException(http.StatusInternalServerError, ecode.ServiceUnavailable, message, data...)
}
