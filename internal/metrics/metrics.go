// Package metrics wraps the pipeline's stages with
// prometheus/client_golang collectors, grounded in
// jinterlante1206-AleutianLocal's use of the same library for
// per-stage timing. Registration happens against the default
// registry; nothing in this package is exposed anywhere unless a
// caller (internal/devserver, in --watch mode) mounts
// promhttp.Handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StageDuration observes how long one pipeline stage took, labeled by
// stage name ("construct_tree", which includes tokenizing,
// "build_layout", "paint").
var StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "toybrowser_stage_duration_seconds",
	Help:    "Duration of each rendering pipeline stage.",
	Buckets: prometheus.DefBuckets,
}, []string{"stage"})

// DOMNodes is the node count of the most recently parsed document.
var DOMNodes = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "toybrowser_dom_nodes_total",
	Help: "Number of DOM nodes in the most recently parsed document.",
})

// LayoutObjects is the object count of the most recently built layout tree.
var LayoutObjects = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "toybrowser_layout_objects_total",
	Help: "Number of LayoutObjects in the most recently built layout tree.",
})

// DisplayItems is the item count of the most recently produced paint list.
var DisplayItems = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "toybrowser_display_items_total",
	Help: "Number of display items in the most recently painted page.",
})

// Observe times fn under the named stage and records it in StageDuration.
func Observe(stage string, fn func()) {
	timer := prometheus.NewTimer(StageDuration.WithLabelValues(stage))
	defer timer.ObserveDuration()
	fn()
}
