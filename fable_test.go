package fable_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/fable"
	"github.com/aretw0/fable/internal/testutils"
	"github.com/aretw0/fable/pkg/adapters/memory"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const story = `start: A
A:
  choices:
    go: {target: B, text: You go.}
B:
  enter: Arrived.
`

func TestNew_RequiresRootWithoutLoader(t *testing.T) {
	_, err := fable.New("")
	assert.Error(t, err)

	eng, err := fable.New("", fable.WithLoader(memory.NewLoader(nil)))
	require.NoError(t, err)
	assert.Empty(t, eng.AssetsRoot)
}

func TestEngine_FilesystemRoundTrip(t *testing.T) {
	root := testutils.SetupStoryDir(t, map[string]string{"story.yaml": story})

	eng, err := fable.New(root)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(eng.AssetsRoot))
	assert.Equal(t, domain.ModeLoad, eng.Mode())

	ctx := context.Background()
	out, err := eng.Process(ctx, "story.yaml")
	require.NoError(t, err)
	assert.Equal(t, "\nChoices:\ngo\n", out)

	out, err = eng.Process(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, "go\nYou go.\nArrived.\nChoices:\n\n", out)

	current, ok := eng.CurrentNode()
	assert.True(t, ok)
	assert.Equal(t, "B", current)
	assert.Equal(t, "story.yaml", eng.Story())
	assert.Len(t, eng.Graph().Nodes, 2)
}

func TestEngine_StrictAndHooks(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"broken.yaml": "start: A\nA:\n  choices:\n    x: {target: ghost}\n",
	})

	var kinds []domain.Kind
	eng, err := fable.New("", fable.WithLoader(loader),
		fable.WithStrictTargets(true),
		fable.WithLifecycleHooks(domain.LifecycleHooks{
			OnError: func(_ context.Context, e *domain.ErrorEvent) { kinds = append(kinds, e.Kind) },
		}),
	)
	require.NoError(t, err)

	_, err = eng.Process(context.Background(), "broken.yaml")
	assert.ErrorIs(t, err, domain.ErrDanglingTarget)
	assert.Equal(t, []domain.Kind{domain.KindDanglingTarget}, kinds)
	assert.Equal(t, domain.ModeLoad, eng.Mode())
}

func TestEngine_Reset(t *testing.T) {
	eng, err := fable.New("", fable.WithLoader(memory.NewLoader(map[string]string{"s.yaml": story})))
	require.NoError(t, err)

	_, err = eng.Process(context.Background(), "s.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.ModePlay, eng.Mode())

	eng.Reset()
	assert.Equal(t, domain.ModeLoad, eng.Mode())
	assert.Nil(t, eng.Graph())
}
