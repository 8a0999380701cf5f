package ports

import (
	"io"

	"go.trai.ch/timebar/internal/core/domain"
)

// SnapshotStore defines the interface for reading and writing graph snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the snapshot stored at path.
	Load(path string) (domain.GraphSnapshot, error)

	// Save writes snapshot to path, creating parent directories as needed.
	Save(path string, snapshot domain.GraphSnapshot) error

	// Encode writes snapshot to w.
	Encode(w io.Writer, snapshot domain.GraphSnapshot) error
}
