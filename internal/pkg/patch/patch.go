// Package patch holds the helpers used by the explicit per-entity merge
// functions behind PATCH endpoints.
package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Apply copies *src into *dst when src is set and differs, and reports whether it did.
func Apply[T comparable](dst *T, src *T) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src
	return true
}
