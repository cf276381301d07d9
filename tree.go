package obtree

import "github.com/rs/zerolog"

// Tree is an ordered positional list of values of type V, backed by a
// B+ tree with branching factor BP. The zero value is not usable; build
// one with New or NewDefault.
//
// Tree is not safe for concurrent use: mutating methods (InsertBefore,
// InsertAfter, Remove, ValueMut, PushFront, PushBack) require exclusive
// access to the tree for the duration of the call, while read-only
// methods (Value, GetID, GetIndex, Len) require only a reference to it
// (spec §5's shared-resource policy). Handles compose with either.
type Tree[V any] struct {
	bp      int
	half    int
	root    *chunk[V]
	log     zerolog.Logger
	metrics *Metrics
}

// New builds an empty tree from cfg. It panics with a FaultMisuse if
// cfg.BP is smaller than 4 (see Config's doc comment for why).
func New[V any](cfg Config) *Tree[V] {
	if err := newConfigValidator().Validate(cfg); err != nil {
		panicFault(FaultMisuse, err.Error())
	}
	return &Tree[V]{
		bp:      cfg.BP,
		half:    cfg.BP / 2,
		root:    &chunk[V]{edges: newLeafEdges[V](cfg.BP)},
		log:     defaultLogger(cfg.Logger),
		metrics: cfg.Metrics,
	}
}

// NewDefault builds an empty tree with BP = 8, no logging and no
// metrics — the configuration a one-off or throwaway list wants.
func NewDefault[V any]() *Tree[V] {
	return New[V](Config{BP: 8})
}

// Len returns the number of elements currently stored.
func (t *Tree[V]) Len() int {
	return t.root.edges.leafCount()
}

// ----------------------------------------------------------------------
// Positional index: select (GetID) and rank (GetIndex).
// ----------------------------------------------------------------------

// GetID returns a handle naming the element currently at index. index
// must be in [0, Len()); an out-of-range index is a fatal client
// misuse, not a returned error, since there is no sensible value to
// hand back.
func (t *Tree[V]) GetID(index int) Handle[V] {
	if index < 0 {
		misuseIndexOutOfRange(index, t.Len())
	}
	return Handle[V]{leaf: t.selectFrom(t.root, index)}
}

// selectFrom descends from c, accumulating a running total of subtree
// counts left to right. At the first child whose count pushes the
// running total past index, it recurses into that child with a
// residual index; at a leaf chunk it indexes directly into leaves.
func (t *Tree[V]) selectFrom(c *chunk[V], index int) *leafEntry[V] {
	if c.edges.kind == edgeBranch {
		if len(c.edges.children) != len(c.edges.counts) {
			invariantCountParallelism()
		}
		running := 0
		for i, count := range c.edges.counts {
			running += count
			if running > index {
				return t.selectFrom(c.edges.children[i], index-(running-count))
			}
		}
		misuseIndexOutOfRange(index, t.Len())
		return nil
	}
	if index >= len(c.edges.leaves) {
		misuseIndexOutOfRange(index, t.Len())
	}
	return c.edges.leaves[index]
}

// GetIndex returns the current ordinal position of the element h
// names. It ascends from the leaf, at each level adding the subtree
// counts of every sibling chunk to its left, per spec §4.1.
//
// This package follows spec.md's prose description of rank here rather
// than the retrieved Rust source's rank loop: that loop reuses the
// `parent_chunk` binding for both "the chunk being ascended from" and
// "the chunk whose edges are being scanned" in a way that searches a
// chunk for itself among its own children. The crate's only test is an
// empty stub, so that loop was never exercised; the prose in spec.md
// §4.1 (find position among the *parent's* children, not the
// grandparent's) is the version this package implements and tests
// against.
func (t *Tree[V]) GetIndex(h Handle[V]) int {
	c := h.leaf.ownerChunk()
	pos := c.edges.idxAmongLeaves(h.leaf)

	current := c
	for {
		parent := current.parent.Value()
		if parent == nil {
			break
		}
		p := parent.edges.idxAmongChunks(current)
		for i := 0; i < p; i++ {
			pos += parent.edges.counts[i]
		}
		current = parent
	}
	return pos
}

// ----------------------------------------------------------------------
// Value access.
// ----------------------------------------------------------------------

// Value returns a copy of the value h names. h must still be live; a
// handle naming a removed element is a fatal client misuse.
func (t *Tree[V]) Value(h Handle[V]) V {
	t.checkLive(h)
	return h.leaf.value
}

// ValueMut returns a pointer to the value h names, for in-place
// mutation. The pointer is valid until the next tree mutation; callers
// must not retain it across a call to InsertBefore, InsertAfter, or
// Remove on this tree.
func (t *Tree[V]) ValueMut(h Handle[V]) *V {
	t.checkLive(h)
	return &h.leaf.value
}

// checkLive re-derives h's position among its chunk's siblings, which
// both confirms liveness and is the localization step every
// handle-mediated mutator needs next.
func (t *Tree[V]) checkLive(h Handle[V]) {
	c := h.leaf.ownerChunk()
	c.edges.idxAmongLeaves(h.leaf)
}

// ----------------------------------------------------------------------
// Empty-tree bootstrap (spec.md open question #1).
//
// insert_before_id / insert_after_id both require an existing handle,
// so the public surface has no entry point for an empty tree. This
// package resolves that by exposing PushFront/PushBack, which insert
// directly into the (possibly empty) root chunk's leaves rather than
// routing through a handle. For a non-empty tree they are equivalent to
// InsertBefore/InsertAfter against the handle at index 0 / Len()-1.
// ----------------------------------------------------------------------

// PushFront inserts value as the new first element and returns its handle.
func (t *Tree[V]) PushFront(value V) Handle[V] {
	if t.Len() == 0 {
		return t.insertIntoEmptyRoot(value)
	}
	return t.InsertBefore(value, t.GetID(0))
}

// PushBack inserts value as the new last element and returns its handle.
func (t *Tree[V]) PushBack(value V) Handle[V] {
	if t.Len() == 0 {
		return t.insertIntoEmptyRoot(value)
	}
	return t.InsertAfter(value, t.GetID(t.Len()-1))
}

func (t *Tree[V]) insertIntoEmptyRoot(value V) Handle[V] {
	leaf := &leafEntry[V]{value: value, parent: weakSelf(t.root)}
	t.root.edges.leaves = append(t.root.edges.leaves, leaf)
	return Handle[V]{leaf: leaf}
}
