// Package types holds small generic helpers shared by the transfer and
// storage layers: pointer conversions and the presence-aware Optional
// used by partial updates.
package types
