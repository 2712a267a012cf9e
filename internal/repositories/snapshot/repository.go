// Package snapshot provides the interface for dashboard state persistence.
package snapshot

import (
	"context"

	"github.com/fennwald/tracker-api/internal/entities"
)

// Repository persists the durable subset of dashboard state: the party
// collection and the active-party pointer, under a single namespaced
// record.
type Repository interface {
	// Save serializes the snapshot over the previous record.
	// Returns errors.InvalidArgument for a nil snapshot
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load deserializes the stored snapshot. A missing record is not an
	// error: the output carries empty defaults.
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Clear removes the stored record.
	// Returns errors.Internal for storage failures
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// SaveInput defines the input for saving a snapshot.
type SaveInput struct {
	Snapshot *entities.Snapshot
}

// SaveOutput defines the output for saving a snapshot.
type SaveOutput struct{}

// LoadInput defines the input for loading a snapshot.
type LoadInput struct{}

// LoadOutput defines the output for loading a snapshot.
type LoadOutput struct {
	Snapshot *entities.Snapshot
	// Found is false when no record existed and Snapshot holds empty
	// defaults.
	Found bool
}

// ClearInput defines the input for clearing the stored snapshot.
type ClearInput struct{}

// ClearOutput defines the output for clearing the stored snapshot.
type ClearOutput struct{}
