package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/timebar/internal/adapters/snapshot"
	"go.trai.ch/timebar/internal/core/domain"
)

func sampleSnapshot() domain.GraphSnapshot {
	return domain.GraphSnapshot{
		Nodes: []domain.Node{
			{ID: "a", Date: "2020-01", Label: "Alpha"},
			{ID: "b", Date: "2020-02", Attrs: map[string]any{"size": 3.0}},
		},
		Edges: []domain.Edge{{ID: "ab", Source: "a", Target: "b"}},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	store := snapshot.NewStore()
	path := filepath.Join(t.TempDir(), "nested", "graph.json")

	require.NoError(t, store.Save(path, sampleSnapshot()))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestStore_Load_Missing(t *testing.T) {
	t.Parallel()

	_, err := snapshot.NewStore().Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSnapshotReadFailed.Error())
}

func TestStore_Load_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte("{nodes: nope"), domain.FilePerm))

	_, err := snapshot.NewStore().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSnapshotUnmarshalFailed.Error())
}

func TestStore_Decode_FillsMissingLists(t *testing.T) {
	t.Parallel()

	got, err := snapshot.NewStore().Decode(strings.NewReader(`{"nodes":[{"id":"a","date":"2020"}]}`))
	require.NoError(t, err)
	assert.Len(t, got.Nodes, 1)
	assert.NotNil(t, got.Edges)
	assert.Empty(t, got.Edges)
}

func TestStore_Encode_EmptySnapshot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, snapshot.NewStore().Encode(&buf, domain.GraphSnapshot{}))
	assert.JSONEq(t, `{"nodes":[],"edges":[]}`, buf.String())
}
