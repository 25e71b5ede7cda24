// Package metrics exposes the sizes of the status structures as Prometheus
// metrics and writes them for the node exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ObakengPitse/municipal-issue-reporter/internal/status"
)

// Metrics is a registry with the reporter's collectors.
type Metrics struct {
	registry *prometheus.Registry

	Issues        prometheus.Gauge
	TreeHeight    *prometheus.GaugeVec
	HeapLength    prometheus.Gauge
	GraphNodes    prometheus.Gauge
	GraphEdges    prometheus.Gauge
	MSTWeight     prometheus.Gauge
	BuildDuration prometheus.Histogram
}

// New returns Metrics registered on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Issues: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reporter_issues",
			Help: "Issues in the loaded snapshot",
		}),
		TreeHeight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "reporter_tree_height",
			Help: "Height of the timeline tree",
		}, []string{"tree"}),
		HeapLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reporter_priority_queue_length",
			Help: "Issues held by the priority queue",
		}),
		GraphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reporter_graph_nodes",
			Help: "Nodes in the issue graph",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reporter_graph_edges",
			Help: "Undirected edges in the issue graph",
		}),
		MSTWeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reporter_mst_weight",
			Help: "Total weight of the minimum spanning tree",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "reporter_index_build_duration_seconds",
			Help:    "Time spent building the status index",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	m.registry.MustRegister(
		m.Issues, m.TreeHeight, m.HeapLength,
		m.GraphNodes, m.GraphEdges, m.MSTWeight,
		m.BuildDuration,
	)

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Observe records one index build.
func (m *Metrics) Observe(s status.Stats) {
	m.Issues.Set(float64(s.Issues))
	m.TreeHeight.WithLabelValues("bst").Set(float64(s.TreeHeight))
	m.TreeHeight.WithLabelValues("avl").Set(float64(s.AVLHeight))
	m.HeapLength.Set(float64(s.HeapLen))
	m.GraphNodes.Set(float64(s.Nodes))
	m.GraphEdges.Set(float64(s.Edges))
	m.MSTWeight.Set(s.MSTWeight)
	m.BuildDuration.Observe(s.Duration.Seconds())
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
