// Package obtree implements an ordered positional list backed by a B+
// tree: positional access, insertion, and removal all run in O(log n),
// and client-held handles stay valid across arbitrary insertions and
// removals of other elements.
//
// The tree is organized bottom-up, the same way the teacher codebase
// this was grown from lays out its own B+tree (leaf entry -> chunk ->
// edges -> tree root -> handle API):
//
//   - leaf.go   - leafEntry, the node that stores one client value
//   - edges.go  - the branch/leaf tagged-union payload of a chunk
//   - chunk.go  - chunk, an internal tree node
//   - tree.go   - Tree, the positional index (rank/select) and the
//     public handle-mediated operations
//   - rebalance.go - split on overflow, borrow-or-merge on underflow,
//     root promotion/demotion
//   - handle.go - Handle, the stable external reference to a leaf
//
// Parent back-references (chunk.parent, leafEntry.parent) are weak
// (package "weak"); strong ownership flows root -> chunk -> chunk/leaf
// only. This mirrors the Rc/Weak discipline of the Rust crate this
// package descends from without needing Go's GC to reason about cycles
// — it is instead what gives the rebalancer a uniform answer for when a
// detached chunk is safe to treat as gone: exactly when nothing reachable
// from the root still names it.
//
// The tree is not safe for concurrent use. Mutating methods on *Tree
// require exclusive access to the tree for their duration; methods that
// only read (Value, GetID, GetIndex) require just a reference to it.
// Handles themselves are plain, freely copyable values.
package obtree
