package service

import (
	"context"
	"io"

	"github.com/Madelineqt/clontagram-servidor/models"
)

// PostService is the application-level contract for everything posts: feed
// reads, authoring, image upload and owner-restricted deletion. All input
// validation lives behind this interface so that HTTP handlers stay thin.
type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	GetPostsForUser(ctx context.Context, rawUserID string) ([]models.Post, error)

	// GetFeed returns one feed page for userID. rawBoundary is the optional
	// pagination boundary from the `fecha` query parameter; when empty the
	// page starts at the current time.
	GetFeed(ctx context.Context, userID int64, rawBoundary string) ([]models.Post, error)

	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// SaveImage validates an uploaded image payload, stores it under a
	// freshly generated collision-free name and returns its public URL.
	SaveImage(ctx context.Context, contentType string, data []byte) (string, error)

	// OpenImage opens a previously stored image by storage name.
	OpenImage(ctx context.Context, name string) (io.ReadCloser, error)

	// DeletePost removes postID on behalf of userID. Deletion is restricted
	// to the post's author; see ErrNotPostOwner.
	DeletePost(ctx context.Context, userID int64, postID string) (models.Post, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
