// Package resp writes JSON success and failure bodies for HTTP handlers.
//
// Success bodies are the payload itself, so list endpoints answer with a
// bare array and item endpoints with a bare object:
//
//	resp.Success(c.Writer, producto)
//	resp.WithStatusCode(c.Writer, http.StatusCreated, usuario)
//
// Failures always carry a business code and a message:
//
//	resp.Fail(c.Writer, resp.NotFound("Producto con ID 9 no encontrado"))
//	// 404 {"code":-404,"message":"Producto con ID 9 no encontrado"}
package resp
