// Package pointers has small helpers for optional values.
package pointers

// Ptr returns a pointer to v. Handy for optional request fields and
// test literals.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p, returning the zero value when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
