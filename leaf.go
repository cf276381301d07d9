package obtree

import "weak"

// leafEntry holds one client value and a weak back-reference to the
// chunk that currently owns it. The tree owns leafEntry strongly
// (through its chunk's leaves slice); a Handle owns it strongly too,
// which is what keeps a removed leaf's value reachable by the client
// even after the tree has dropped its own reference to it.
type leafEntry[V any] struct {
	value  V
	parent weak.Pointer[chunk[V]]
}

// ownerChunk upgrades the weak parent reference. A nil result means the
// chunk this leaf last belonged to is no longer reachable from
// anywhere — that can only happen if a rebalance failed to retarget a
// moved leaf, which is an implementation bug rather than client misuse.
func (l *leafEntry[V]) ownerChunk() *chunk[V] {
	c := l.parent.Value()
	if c == nil {
		invariantConnection()
	}
	return c
}
