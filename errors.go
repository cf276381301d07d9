package obtree

import "fmt"

// FaultKind classifies a fatal condition raised by the tree. Both kinds
// are non-recoverable: there is no retry path because either the
// client handed the tree something that no longer exists (FaultMisuse)
// or the tree's own bookkeeping has drifted out of sync with itself
// (FaultInvariant). Callers that want to turn a fault into a returned
// error can recover() at the boundary and type-assert to *Fault.
type FaultKind int

const (
	// FaultMisuse marks an out-of-range positional lookup or an
	// operation against a handle whose leaf is no longer reachable
	// from the root.
	FaultMisuse FaultKind = iota
	// FaultInvariant marks a structural invariant violation: a weak
	// parent reference that failed to upgrade, a counts slice out of
	// step with its children, a branch/leaf shape mismatch, or a merge
	// whose absorbed side turned out not to be uniquely owned.
	FaultInvariant
)

func (k FaultKind) String() string {
	switch k {
	case FaultMisuse:
		return "misuse"
	case FaultInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Fault is the panic value raised by every fatal condition in this
// package. It carries a short, site-specific message in the style of
// the source crate's VIOL_* constants, so a panic trace names exactly
// which invariant broke.
type Fault struct {
	Kind FaultKind
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("obtree: %s: %s", f.Kind, f.Msg)
}

func panicFault(kind FaultKind, msg string) {
	panic(&Fault{Kind: kind, Msg: msg})
}

// Per-site invariant messages. Named the way the source crate names its
// VIOL_CONNECTION / VIOL_LEAF_DEPTH constants, extended to cover the
// sites the original collapses into a single expect(...) call.
const (
	violIndexOutOfRange  = "positional index out of range"
	violStaleHandle      = "handle names a leaf no longer present among its chunk's siblings"
	violConnection       = "parent back-reference failed to upgrade"
	violLeafDepth        = "branch/leaf edge shape mismatch on a path that must be uniform"
	violCountParallelism = "counts slice out of step with its children slice"
	violMergeOwnership   = "merge target is not uniquely owned"
)

func misuseIndexOutOfRange(index, length int) {
	panicFault(FaultMisuse, fmt.Sprintf("%s: index=%d length=%d", violIndexOutOfRange, index, length))
}

func misuseStaleHandle() {
	panicFault(FaultMisuse, violStaleHandle)
}

func invariantConnection() {
	panicFault(FaultInvariant, violConnection)
}

func invariantLeafDepth() {
	panicFault(FaultInvariant, violLeafDepth)
}

func invariantCountParallelism() {
	panicFault(FaultInvariant, violCountParallelism)
}

func invariantMergeOwnership() {
	panicFault(FaultInvariant, violMergeOwnership)
}
