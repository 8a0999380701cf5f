// Package snapshot stores graph snapshots as JSON files.
package snapshot

import (
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore with one JSON document per file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the snapshot stored at path.
func (s *Store) Load(path string) (domain.GraphSnapshot, error) {
	//nolint:gosec // Path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.GraphSnapshot{}, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}
	snapshot, err := decode(data)
	if err != nil {
		return domain.GraphSnapshot{}, zerr.With(err, "path", path)
	}
	return snapshot, nil
}

// Save writes snapshot to path, creating parent directories as needed.
func (s *Store) Save(path string, snapshot domain.GraphSnapshot) error {
	data, err := encode(snapshot)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is chosen by the user
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}
	return nil
}

// Decode reads one snapshot document from r.
func (s *Store) Decode(r io.Reader) (domain.GraphSnapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.GraphSnapshot{}, zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error())
	}
	return decode(data)
}

// Encode writes snapshot to w as an indented JSON document.
func (s *Store) Encode(w io.Writer, snapshot domain.GraphSnapshot) error {
	data, err := encode(snapshot)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}
	return nil
}

func decode(data []byte) (domain.GraphSnapshot, error) {
	var snapshot domain.GraphSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.GraphSnapshot{}, zerr.Wrap(err, domain.ErrSnapshotUnmarshalFailed.Error())
	}
	if snapshot.Nodes == nil {
		snapshot.Nodes = []domain.Node{}
	}
	if snapshot.Edges == nil {
		snapshot.Edges = []domain.Edge{}
	}
	return snapshot, nil
}

func encode(snapshot domain.GraphSnapshot) ([]byte, error) {
	if snapshot.Nodes == nil {
		snapshot.Nodes = []domain.Node{}
	}
	if snapshot.Edges == nil {
		snapshot.Edges = []domain.Edge{}
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}
