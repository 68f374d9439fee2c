package observability_test

import (
	"context"
	"testing"

	"github.com/aretw0/fable"
	"github.com/aretw0/fable/pkg/adapters/memory"
	"github.com/aretw0/fable/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_FromSession(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	loader := memory.NewLoader(map[string]string{
		"s.yaml": "start: A\nA:\n  choices:\n    go: {target: B}\nB: {}\nC: {}\n",
	})
	eng, err := fable.New("", fable.WithLoader(loader), fable.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)

	ctx := context.Background()
	_, _ = eng.Process(ctx, "missing.yaml")
	_, _ = eng.Process(ctx, "s.yaml")
	_, _ = eng.Process(ctx, "fly")
	_, _ = eng.Process(ctx, "go")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoryLoads.WithLabelValues("s.yaml")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StoryNodes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodeEntries.WithLabelValues("A")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodeEntries.WithLabelValues("B")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChoicesTaken))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("load", "io")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("play", "choice_not_found")))

	count, err := testutil.GatherAndCount(reg, "fable_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_NilRegisterer(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.Hooks().OnChoiceTaken(context.Background(), nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChoicesTaken))
}
