// Package middleware holds the gin middlewares shared by every route:
// request ids, access logging, panic recovery and CORS.
package middleware
