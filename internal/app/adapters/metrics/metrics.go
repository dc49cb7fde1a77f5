package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Operations - engine calls by operation and result.
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phfwd_operations_total",
			Help: "Total number of forwarding operations per operation and result",
		},
		[]string{"op", "result"},
	)

	// OperationTime - time spent inside the engine, registered in app.
	OperationTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "phfwd_operation_milliseconds",
			Help:    "Time to run a forwarding operation",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 20),
		},
		[]string{"op"},
	)

	// Rules - number of stored forwards.
	Rules = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "phfwd_rules",
		Help: "Number of stored forwards",
	})

	// Nodes - number of trie nodes in use.
	Nodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "phfwd_trie_nodes",
		Help: "Number of trie nodes in use",
	})

	// CacheLookups - query cache hits and misses.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phfwd_cache_lookups_total",
			Help: "Query cache lookups per operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	// EventSubscribers - connected change feed clients.
	EventSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "phfwd_event_subscribers",
		Help: "Number of connected change feed clients",
	})
)
