// Package ctxutil carries the request trace ID through context.Context.
// The server middleware sets it and the logger reads it back to correlate
// request lines.
package ctxutil
