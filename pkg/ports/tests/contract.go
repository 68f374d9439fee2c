package tests

import (
	"context"
	"testing"

	"github.com/aretw0/fable/pkg/domain"
	"github.com/aretw0/fable/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StoryLoaderContractTest is a reusable suite that verifies an adapter complies with ports.StoryLoader.
// setupData must already be served by loader.
func StoryLoaderContractTest(t *testing.T, loader ports.StoryLoader, setupData map[string][]byte) {
	t.Helper()
	ctx := context.Background()

	t.Run("ReadStory_Success", func(t *testing.T) {
		for name, expected := range setupData {
			content, err := loader.ReadStory(ctx, name)
			require.NoError(t, err, "reading %s", name)
			assert.Equal(t, string(expected), string(content), "content mismatch for %s", name)
		}
	})

	t.Run("ReadStory_NotFound", func(t *testing.T) {
		_, err := loader.ReadStory(ctx, "non-existent-story.yaml")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrIO)
	})

	t.Run("ReadStory_EmptyName", func(t *testing.T) {
		_, err := loader.ReadStory(ctx, "")
		assert.ErrorIs(t, err, domain.ErrIO)
	})

	lister, ok := loader.(ports.StoryLister)
	if !ok {
		return
	}

	t.Run("ListStories", func(t *testing.T) {
		names, err := lister.ListStories(ctx)
		require.NoError(t, err)
		assert.Len(t, names, len(setupData))
		for name := range setupData {
			assert.Contains(t, names, name)
		}
		assert.IsNonDecreasing(t, names, "listing must be sorted")
	})
}
