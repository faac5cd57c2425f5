// Package structs defines the usuario and producto models together with
// their create and update payloads.
package structs
