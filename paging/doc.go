// Package paging parses the skip/limit query parameters used by the list
// endpoints.
//
//	params, err := paging.Parse(c.Query("skip"), c.Query("limit"), cfg.MaxPageLimit)
//	if errors.Is(err, paging.ErrInvalidParams) {
//	    // 400
//	}
//
// Defaults are skip=0 and limit=100. Limit has no upper bound unless a
// positive maximum is passed.
package paging
