package types

// ToPointer is a helper function that returns a pointer to a value of any type.
func ToPointer[T any](v T) *T {
	return &v
}

// ToValue returns the value pointed to by v, or the zero value when v is nil.
func ToValue[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// ToValueOr returns the value pointed to by v, or def when v is nil.
func ToValueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
