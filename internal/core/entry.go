// File: internal/core/entry.go
// Author: momentics <momentics@gmail.com>

package core

// entry describes one recycled buffer. count is immutable for the life
// of the entry; constructed tracks whether the elements currently hold
// live state that must be reconciled before being handed out again under
// a different recycling flavour.
type entry[T any] struct {
	data        []T
	count       int
	constructed bool
}
