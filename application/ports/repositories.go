package ports

import (
	"context"
	"io"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
)

// ModelRepository defines the interface for persisting a whole model
// snapshot to a durable store.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type ModelRepository interface {
	// Export writes the model to the store, overwriting the previous
	// snapshot. expectedVersion guards against concurrent writers: the
	// store rejects the export when its stored version differs.
	Export(ctx context.Context, m *model.Model, expectedVersion int) error

	// Import rebuilds a model from the stored snapshot
	Import(ctx context.Context) (*model.Model, error)

	// Version returns the stored snapshot version, 0 when empty
	Version(ctx context.Context) (int, error)

	// Close releases the underlying store handle
	Close() error
}

// ModelCodec reads and writes models in an external document format
type ModelCodec interface {
	// Decode parses a model document
	Decode(r io.Reader) (*model.Model, error)

	// Encode writes the model as a document
	Encode(w io.Writer, m *model.Model) error
}
