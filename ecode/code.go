package ecode

import "sync"

const (
	OK                 = 0
	RequestErr         = -400
	ParamErr           = -422
	NothingFound       = -404
	MethodNotAllowed   = -405
	Conflict           = -409
	ServerErr          = -500
	ServiceUnavailable = -503
)

var (
	mu    sync.RWMutex
	texts = map[int]string{
		OK:                 "ok",
		RequestErr:         "Invalid request",
		ParamErr:           "Invalid parameters",
		NothingFound:       "Resource not found",
		MethodNotAllowed:   "Method not allowed",
		Conflict:           "Resource conflict",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
	}
)

// Text returns the default message for a code.
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := texts[code]; ok {
		return t
	}
	return texts[ServerErr]
}

// Register sets or replaces the message for a code.
func Register(code int, text string) {
	mu.Lock()
	defer mu.Unlock()
	texts[code] = text
}
