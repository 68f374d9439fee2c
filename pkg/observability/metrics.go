package observability

import (
	"context"

	"github.com/aretw0/fable/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by session lifecycle hooks.
type Metrics struct {
	StoryLoads   *prometheus.CounterVec
	NodeEntries  *prometheus.CounterVec
	ChoicesTaken prometheus.Counter
	Errors       *prometheus.CounterVec
	StoryNodes   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StoryLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fable_story_loads_total",
			Help: "Total number of successfully loaded stories",
		}, []string{"story"}),
		NodeEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fable_node_entries_total",
			Help: "Total number of node visits",
		}, []string{"node"}),
		ChoicesTaken: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fable_choices_taken_total",
			Help: "Total number of choices taken",
		}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fable_errors_total",
			Help: "Total number of session diagnostics by kind",
		}, []string{"mode", "kind"}),
		StoryNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fable_story_nodes",
			Help: "Number of nodes in the loaded story",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.StoryLoads, m.NodeEntries, m.ChoicesTaken, m.Errors, m.StoryNodes)
	}
	return m
}

// Hooks returns lifecycle hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStoryLoaded: func(_ context.Context, e *domain.StoryEvent) {
			m.StoryLoads.WithLabelValues(e.Story).Inc()
			m.StoryNodes.Set(float64(e.Nodes))
		},
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			m.NodeEntries.WithLabelValues(e.NodeName).Inc()
		},
		OnChoiceTaken: func(context.Context, *domain.ChoiceEvent) {
			m.ChoicesTaken.Inc()
		},
		OnError: func(_ context.Context, e *domain.ErrorEvent) {
			m.Errors.WithLabelValues(e.Mode.String(), string(e.Kind)).Inc()
		},
	}
}
