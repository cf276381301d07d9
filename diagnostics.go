package obtree

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/hashicorp/go-multierror"
)

// Check walks the whole tree and verifies its structural invariants
// (labelled I1-I6 in the messages below: edge shape, count parallelism,
// occupancy bounds, parent links, leaf total, leaf depth), returning
// every violation found rather than stopping at the first one. Handle
// stability and the rank/select round trip are not checked here.
// Grounded on the teacher codebase's
// dumpTreeToWriter, which performs the same level-order walk for
// debugging, generalized here into an invariant checker built on
// hashicorp/go-multierror for the aggregated error and
// gammazero/deque for the BFS queue (the old, non-generic deque API:
// the version this module's go.mod pins predates the generic rewrite).
//
// Check is diagnostic tooling, not something production code calls on
// every mutation: it re-walks the entire tree, so its cost is O(n).
func (t *Tree[V]) Check() error {
	var errs *multierror.Error

	type queued struct {
		c     *chunk[V]
		depth int
	}

	q := deque.New()
	q.PushBack(queued{c: t.root, depth: 0})

	leafDepth := -1
	total := 0

	for q.Len() > 0 {
		item := q.PopFront().(queued)
		c := item.c

		// I1: a chunk's edges are leaf-shaped or branch-shaped, never
		// mixed, and the kind tag agrees with which slice is populated.
		switch c.edges.kind {
		case edgeLeaf:
			if c.edges.children != nil || c.edges.counts != nil {
				errs = multierror.Append(errs, fmt.Errorf("I1: leaf chunk at depth %d also carries branch slices", item.depth))
			}
		case edgeBranch:
			if c.edges.leaves != nil {
				errs = multierror.Append(errs, fmt.Errorf("I1: branch chunk at depth %d also carries a leaves slice", item.depth))
			}
			if len(c.edges.children) != len(c.edges.counts) {
				// I2: counts is parallel to children.
				errs = multierror.Append(errs, fmt.Errorf("I2: chunk at depth %d has %d children but %d counts", item.depth, len(c.edges.children), len(c.edges.counts)))
			}
		}

		// I3: BP bounds. Max is BP-1, not BP (spec.md §3 invariant 2,
		// §8 I2) — a chunk is rebalanced as soon as it would hold BP
		// edges, so BP itself is never an equilibrium size. Root is
		// exempt from the HALF floor.
		n := c.edges.length()
		if !c.isRoot() {
			if n < t.half || n > t.bp-1 {
				errs = multierror.Append(errs, fmt.Errorf("I3: non-root chunk at depth %d has %d edges, want [%d, %d]", item.depth, n, t.half, t.bp-1))
			}
			if c.edges.kind == edgeBranch && n < 2 {
				errs = multierror.Append(errs, fmt.Errorf("I3: non-root branch chunk at depth %d has %d child(ren), want >= 2", item.depth, n))
			}
		} else if n > t.bp-1 {
			errs = multierror.Append(errs, fmt.Errorf("I3: root chunk has %d edges, want <= %d", n, t.bp-1))
		}

		// I4: parent back-references resolve and agree with position.
		if !c.isRoot() {
			parent := c.parent.Value()
			if parent == nil {
				errs = multierror.Append(errs, fmt.Errorf("I4: chunk at depth %d has a parent link that failed to upgrade", item.depth))
			} else {
				found := false
				for _, ch := range parent.edges.children {
					if ch == c {
						found = true
						break
					}
				}
				if !found {
					errs = multierror.Append(errs, fmt.Errorf("I4: chunk at depth %d is not listed among its parent's children", item.depth))
				}
			}
		}

		switch c.edges.kind {
		case edgeBranch:
			for i, child := range c.edges.children {
				// I2 (continued): each recorded count matches the
				// child's actual subtree size.
				if i < len(c.edges.counts) && c.edges.counts[i] != child.edges.leafCount() {
					errs = multierror.Append(errs, fmt.Errorf("I2: chunk at depth %d records count %d for child %d, actual is %d", item.depth, c.edges.counts[i], i, child.edges.leafCount()))
				}
				q.PushBack(queued{c: child, depth: item.depth + 1})
			}
		case edgeLeaf:
			// I6: every leaf chunk sits at the same depth.
			if leafDepth == -1 {
				leafDepth = item.depth
			} else if leafDepth != item.depth {
				errs = multierror.Append(errs, fmt.Errorf("I6: leaf chunk at depth %d, expected depth %d", item.depth, leafDepth))
			}
			for _, l := range c.edges.leaves {
				total++
				// I4 (continued): each leaf's parent link resolves to
				// the chunk that actually holds it.
				if l.parent.Value() != c {
					errs = multierror.Append(errs, fmt.Errorf("I4: leaf entry at depth %d has a parent link not pointing at its holding chunk", item.depth))
				}
			}
		}
	}

	// I5: the root's implicit total matches a direct leaf recount.
	if total != t.Len() {
		errs = multierror.Append(errs, fmt.Errorf("I5: recounted %d leaves, Len() reports %d", total, t.Len()))
	}

	return errs.ErrorOrNil()
}
