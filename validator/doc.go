// Package validator wraps go-playground/validator with JSON-aware field
// names and translated messages.
//
// Create payloads are checked by gin's binding tags; TranslateErrors turns
// the resulting error into a {"field": "message"} map. Update payloads check
// individual values with Var.
package validator
