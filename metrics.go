package obtree

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts rebalance events as Prometheus counters, grounded on
// the teacher-adjacent MetricsWriter pattern (a small struct of
// prometheus.Counter fields built with prometheus.CounterOpts, wrapping
// the thing it instruments). Unlike that pattern this package uses
// prometheus.NewCounter rather than promauto.NewCounter: promauto
// registers into the global default registry on construction, which
// would panic the second time a test constructs a Tree with metrics
// enabled. Callers that want the counters exposed on a /metrics
// endpoint register Collectors() themselves.
type Metrics struct {
	splits         prometheus.Counter
	borrows        prometheus.Counter
	merges         prometheus.Counter
	rootPromotions prometheus.Counter
	rootDemotions  prometheus.Counter
}

// NewMetrics builds an unregistered set of counters for one tree.
// namespace is used as the Prometheus metric namespace, letting callers
// that embed more than one tree tell their counters apart.
func NewMetrics(namespace string) *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}
	return &Metrics{
		splits:         counter("chunk_splits_total", "number of chunk overflow splits performed"),
		borrows:        counter("chunk_borrows_total", "number of underflow borrows from a sibling performed"),
		merges:         counter("chunk_merges_total", "number of underflow merges with a sibling performed"),
		rootPromotions: counter("root_promotions_total", "number of times the tree grew a new root level"),
		rootDemotions:  counter("root_demotions_total", "number of times the tree collapsed a root level"),
	}
}

// Collectors returns every counter so a caller can register them on
// whatever prometheus.Registerer they use.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.splits, m.borrows, m.merges, m.rootPromotions, m.rootDemotions}
}

func (m *Metrics) record(e rebalanceEvent) {
	switch e {
	case eventSplit:
		m.splits.Inc()
	case eventBorrowNext, eventBorrowPrev:
		m.borrows.Inc()
	case eventMergeNext, eventMergePrev:
		m.merges.Inc()
	case eventRootPromote:
		m.rootPromotions.Inc()
	case eventRootDemote:
		m.rootDemotions.Inc()
	}
}
