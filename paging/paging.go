package paging

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultLimit is the page size used when the request does not name one.
const DefaultLimit = 100

// ErrInvalidParams is returned for malformed or negative skip/limit values.
var ErrInvalidParams = errors.New("invalid pagination parameters")

// Params holds offset pagination parameters
type Params struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// NormalizeParams fills defaults and applies the optional upper bound.
// A maxLimit of zero or less leaves limit unbounded.
func NormalizeParams(params Params, maxLimit int) Params {
	if params.Skip < 0 {
		params.Skip = 0
	}
	if params.Limit < 0 {
		params.Limit = DefaultLimit
	}
	if maxLimit > 0 && params.Limit > maxLimit {
		params.Limit = maxLimit
	}
	return params
}

// Parse reads skip and limit from raw query values. Empty values take the
// defaults (0 and DefaultLimit); negative or non-numeric values are rejected.
func Parse(skip, limit string, maxLimit int) (Params, error) {
	params := Params{Limit: DefaultLimit}

	if s := strings.TrimSpace(skip); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Params{}, fmt.Errorf("%w: skip must be a non-negative integer", ErrInvalidParams)
		}
		params.Skip = n
	}
	if s := strings.TrimSpace(limit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Params{}, fmt.Errorf("%w: limit must be a non-negative integer", ErrInvalidParams)
		}
		params.Limit = n
	}

	return NormalizeParams(params, maxLimit), nil
}
