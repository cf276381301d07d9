package obtree

import "github.com/rs/zerolog"

// rebalanceEvent names a structural change the rebalancer performs.
// This is the direct descendant of the teacher codebase's StepType
// enumeration (internal/btree/step_recorder.go), trimmed down to the
// operations an in-memory positional tree actually performs — no page
// IDs, no WAL, no transaction lifecycle events.
type rebalanceEvent uint8

const (
	eventSplit rebalanceEvent = iota
	eventBorrowNext
	eventBorrowPrev
	eventMergeNext
	eventMergePrev
	eventRootPromote
	eventRootDemote
)

func (e rebalanceEvent) String() string {
	switch e {
	case eventSplit:
		return "split"
	case eventBorrowNext:
		return "borrow_next"
	case eventBorrowPrev:
		return "borrow_prev"
	case eventMergeNext:
		return "merge_next"
	case eventMergePrev:
		return "merge_prev"
	case eventRootPromote:
		return "root_promote"
	case eventRootDemote:
		return "root_demote"
	default:
		return "unknown"
	}
}

// report logs e at debug level (if the tree was given a non-nil logger)
// and increments its counter (if the tree was given a non-nil Metrics).
func (t *Tree[V]) report(e rebalanceEvent, depth int) {
	t.log.Debug().Str("event", e.String()).Int("depth", depth).Msg("rebalance")
	if t.metrics != nil {
		t.metrics.record(e)
	}
}

func defaultLogger(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}
