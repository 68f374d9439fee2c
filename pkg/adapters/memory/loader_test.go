package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/fable/pkg/adapters/memory"
	contract "github.com/aretw0/fable/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	data := map[string]string{
		"cave.yaml":   "start: entrance\nentrance:\n  enter: Dark.\n",
		"forest.yaml": "start: edge\n",
	}

	bytesData := make(map[string][]byte)
	for k, v := range data {
		bytesData[k] = []byte(v)
	}

	contract.StoryLoaderContractTest(t, memory.NewLoader(data), bytesData)
}

func TestInMemoryLoader_PutIsolation(t *testing.T) {
	loader := memory.NewLoader(nil)
	buf := []byte("start: a\n")
	loader.Put("a.yaml", buf)
	buf[0] = 'X'

	got, err := loader.ReadStory(context.Background(), "a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "start: a\n", string(got))

	got[0] = 'Y'
	again, err := loader.ReadStory(context.Background(), "a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "start: a\n", string(again))
}
