package store

import (
	"context"
	"io"
	"time"

	"github.com/Madelineqt/clontagram-servidor/models"
)

// PostRepository is the persistence contract for posts. The service layer
// never touches SQL directly; every post read and write goes through this
// interface so handlers can be tested against mocks.
type PostRepository interface {
	// ListPosts returns every post, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost returns the post with the given id, or [ErrPostNotFound].
	GetPost(ctx context.Context, postID string) (models.Post, error)

	// GetPostsForUser returns the posts authored by userID, newest first.
	GetPostsForUser(ctx context.Context, userID int64) ([]models.Post, error)

	// GetFeed returns the page of feed posts for userID created at or
	// before the given boundary, newest first.
	GetFeed(ctx context.Context, userID int64, before time.Time) ([]models.Post, error)

	// CreatePost persists post and returns the stored record with
	// server-assigned fields populated (CreatedAt).
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// DeletePost removes the post with the given id and returns the deleted
	// record, or [ErrPostNotFound] when nothing was deleted.
	DeletePost(ctx context.Context, postID string) (models.Post, error)
}

// UserRepository handles user account creation and lookup.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// server-assigned UserID, or [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account matching user.Login, or
	// [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// ImageStorage persists uploaded image payloads outside the relational
// database and serves them back by storage name.
type ImageStorage interface {
	// SaveImage writes data under name and returns the public URL the
	// stored image is reachable at. One write per call; collision avoidance
	// is the caller's concern (names carry a random unique token).
	SaveImage(ctx context.Context, name string, data []byte) (string, error)

	// OpenImage opens the stored image with the given name for reading, or
	// returns [ErrImageNotFound].
	OpenImage(ctx context.Context, name string) (io.ReadCloser, error)
}
