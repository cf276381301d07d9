package obtree

import "weak"

// chunk is an internal tree node. Its parent is a weak back-reference,
// absent exactly for the root chunk (spec invariant: parent consistency).
// Strong ownership flows parent -> child only: a tree owns its root
// chunk, a branch chunk owns its children slice, a leaf chunk owns its
// leaves slice.
type chunk[V any] struct {
	parent weak.Pointer[chunk[V]]
	edges  edges[V]
}

// isRoot reports whether c has no live parent back-reference. The zero
// value of weak.Pointer resolves to nil, so a freshly allocated chunk
// with no parent ever assigned already reports isRoot() == true.
func (c *chunk[V]) isRoot() bool {
	return c.parent.Value() == nil
}

// weakSelf produces a weak reference to c for handing to children whose
// parent back-link is being (re)targeted at c.
func weakSelf[V any](c *chunk[V]) weak.Pointer[chunk[V]] {
	return weak.Make(c)
}
