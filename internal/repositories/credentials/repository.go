// Package credentials provides the interface for durable refresh-token
// storage, kept separate from the dashboard snapshot so a login survives
// restarts independently of tracked state.
package credentials

import "context"

// Repository stores the current refresh token under a single key. The
// key is absent when logged out.
type Repository interface {
	// Put stores the refresh token, replacing any previous one.
	// Returns errors.InvalidArgument for an empty token
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves the stored refresh token.
	// Returns errors.NotFound when no token is stored
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the stored refresh token. Deleting an absent token
	// is not an error.
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// PutInput defines the input for storing a refresh token.
type PutInput struct {
	RefreshToken string
}

// PutOutput defines the output for storing a refresh token.
type PutOutput struct{}

// GetInput defines the input for retrieving the refresh token.
type GetInput struct{}

// GetOutput defines the output for retrieving the refresh token.
type GetOutput struct {
	RefreshToken string
}

// DeleteInput defines the input for deleting the refresh token.
type DeleteInput struct{}

// DeleteOutput defines the output for deleting the refresh token.
type DeleteOutput struct{}
