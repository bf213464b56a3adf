package tmdb

import (
	"context"
)

// API defines the interface for TMDb operations
type API interface {
	// TestConnection verifies the client can reach TMDb
	TestConnection(ctx context.Context) error

	// GetConfiguration retrieves the system-wide configuration
	GetConfiguration(ctx context.Context) (*Configuration, error)

	// GetRequestToken creates a temporary request token
	GetRequestToken(ctx context.Context) (*RequestToken, error)

	// GetSessionToken exchanges an approved request token for a session
	GetSessionToken(ctx context.Context, requestToken string) (*SessionToken, error)

	// GetGuestSessionToken creates a guest session
	GetGuestSessionToken(ctx context.Context) (*SessionToken, error)

	// GetList retrieves a list and its items by id
	GetList(ctx context.Context, listID string) (*MovieList, error)

	// IsMovieOnList checks whether a movie id is already on a list
	IsMovieOnList(ctx context.Context, listID string, movieID int) (bool, error)

	// CreateList creates a new list
	CreateList(ctx context.Context, sessionID, name, description string) (*StatusCodeList, error)

	// AddMovieToList adds a movie to a list
	AddMovieToList(ctx context.Context, sessionID, listID string, movieID int) (*StatusCode, error)

	// RemoveMovieFromList removes a movie from a list
	RemoveMovieFromList(ctx context.Context, sessionID, listID string, movieID int) (*StatusCode, error)

	// DeleteList deletes a list
	DeleteList(ctx context.Context, sessionID, listID string) (*StatusCode, error)
}
