// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madelineqt

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/internal/store"
	"github.com/Madelineqt/clontagram-servidor/internal/utils"
	"github.com/Madelineqt/clontagram-servidor/internal/validators"
	"github.com/Madelineqt/clontagram-servidor/models"
)

// postService is the concrete implementation of PostService. It owns the
// business rules around posts: input validation, feed pagination defaults,
// upload naming and the author-only deletion check. Persistence and image
// bytes are delegated to the store layer.
type postService struct {
	postRepository store.PostRepository
	imageStorage   store.ImageStorage

	validator *validators.PostValidator
	uuid      *utils.UUIDGenerator

	// now supplies the default feed boundary; swapped in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewPostService constructs a PostService backed by the given repositories.
// The returned service is safe for concurrent use.
func NewPostService(postRepository store.PostRepository, imageStorage store.ImageStorage, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		imageStorage:   imageStorage,
		validator:      validators.NewPostValidator(),
		uuid:           utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// ListPosts returns every post, newest first.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepository.ListPosts(ctx)
}

// GetPost returns the post with the given id.
//
// Returns validators.ErrInvalidPostID for a malformed id and
// store.ErrPostNotFound when no such post exists.
func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if err := validators.ValidatePostID(postID); err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, notFoundWithID(err, postID)
	}

	return post, nil
}

// notFoundWithID stamps the missing post's id into a not-found error so the
// client response names the post that was asked for. Other errors pass
// through untouched.
func notFoundWithID(err error, postID string) error {
	if errors.Is(err, store.ErrPostNotFound) {
		return fmt.Errorf("%w: [%s]", store.ErrPostNotFound, postID)
	}
	return err
}

// GetPostsForUser returns the posts authored by the user identified by
// rawUserID, newest first. rawUserID comes straight from the URL path and is
// validated here; a malformed value yields validators.ErrInvalidUserID.
func (p *postService) GetPostsForUser(ctx context.Context, rawUserID string) ([]models.Post, error) {
	userID, err := validators.ValidateUserID(rawUserID)
	if err != nil {
		return nil, err
	}

	return p.postRepository.GetPostsForUser(ctx, userID)
}

// GetFeed returns one feed page for userID.
//
// rawBoundary is the raw `fecha` query parameter: an RFC 3339 timestamp or a
// plain date. When absent the page starts at the current time, so a first
// request with no parameters always returns the newest posts. A value that
// parses as neither layout yields validators.ErrInvalidDate.
func (p *postService) GetFeed(ctx context.Context, userID int64, rawBoundary string) ([]models.Post, error) {
	boundary := p.now()

	if rawBoundary != "" {
		parsed, err := validators.ParseFeedBoundary(rawBoundary)
		if err != nil {
			return nil, err
		}
		boundary = parsed
	}

	return p.postRepository.GetFeed(ctx, userID, boundary)
}

// CreatePost validates and persists a new post. The post id is assigned here
// (a fresh UUID), never taken from the caller.
//
// Returns the stored post with server-assigned fields, or a validators error
// when the caption or image URL is rejected.
func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, post); err != nil {
		log.Error().Err(err).Int64("user_id", post.UserID).Msg("post validation failed")
		return models.Post{}, err
	}

	post.ID = p.uuid.Generate()

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("user_id", post.UserID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// SaveImage validates an uploaded image payload and stores it under a name
// built from a fresh UUID plus the extension resolved from contentType.
// Random names keep the storage directory flat and make collisions between
// concurrent uploads practically impossible.
//
// Returns the public URL of the stored image.
func (p *postService) SaveImage(ctx context.Context, contentType string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	extension, err := validators.ValidateImage(contentType, data)
	if err != nil {
		log.Error().Err(err).Str("content_type", contentType).Msg("image validation failed")
		return "", err
	}

	name := p.uuid.Generate() + "." + extension

	url, err := p.imageStorage.SaveImage(ctx, name, data)
	if err != nil {
		log.Err(err).Str("name", name).Msg("image saving ended with error")
		return "", fmt.Errorf("image saving ended with error: %w", err)
	}

	return url, nil
}

// OpenImage opens a stored image by storage name.
func (p *postService) OpenImage(ctx context.Context, name string) (io.ReadCloser, error) {
	return p.imageStorage.OpenImage(ctx, name)
}

// DeletePost removes postID on behalf of userID.
//
// The post is loaded first so that ownership can be checked before anything
// is mutated. Identifiers are compared in their canonical decimal string
// form, mirroring how they travel in tokens and URLs.
//
// Returns the deleted post, or:
//   - validators.ErrInvalidPostID for a malformed id;
//   - store.ErrPostNotFound when the post does not exist (a repeated delete
//     therefore reports not-found, keeping the operation idempotent);
//   - ErrNotPostOwner when userID did not author the post.
func (p *postService) DeletePost(ctx context.Context, userID int64, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidatePostID(postID); err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post lookup before deletion failed")
		return models.Post{}, notFoundWithID(err, postID)
	}

	if strconv.FormatInt(post.UserID, 10) != strconv.FormatInt(userID, 10) {
		log.Error().
			Str("post_id", postID).
			Int64("owner_id", post.UserID).
			Int64("caller_id", userID).
			Msg("deletion attempted by non-owner")
		// The message names both parties so the client can see whose post it
		// tried to delete.
		return models.Post{}, fmt.Errorf("%w: post [%s] belongs to user [%d], caller is user [%d]",
			ErrNotPostOwner, postID, post.UserID, userID)
	}

	deletedPost, err := p.postRepository.DeletePost(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post deletion ended with error")
		return models.Post{}, notFoundWithID(err, postID)
	}

	return deletedPost, nil
}
