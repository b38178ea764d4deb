package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// It executes all post CRUD operations directly against the "posts" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (post_id, user_id, boundary timestamp).
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// ListPosts returns every post ordered newest-first.
func (p *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, getAllPosts)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanPosts(ctx, rows)
}

// GetPost retrieves a single post by id.
//
// Error handling:
//   - No matching row → [ErrPostNotFound].
//   - Driver-level error → wrapped [ErrExecutingQuery].
//   - Scan failure → wrapped [ErrScanningRow].
func (p *postRepository) GetPost(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	row := p.DB.QueryRowContext(ctx, getPost, postID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.GetPost").Str("post_id", postID).Msg("error: row is nil")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&post.ID, &post.UserID, &post.Caption, &post.ImageURL, &post.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.GetPost").Str("post_id", postID).Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// GetPostsForUser returns the posts authored by userID, newest first.
func (p *postRepository) GetPostsForUser(ctx context.Context, userID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, getPostsForUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.GetPostsForUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing user posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanPosts(ctx, rows)
}

// GetFeed returns one page of feed posts for userID created at or before
// the given boundary, newest first. The page size is capped at
// [feedPageSize] rows; see [buildFeedQuery] for the pagination contract.
func (p *postRepository) GetFeed(ctx context.Context, userID int64, before time.Time) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFeedQuery(userID, before)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.GetFeed").
			Int64("user_id", userID).
			Msg("failed to create feed query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.GetFeed").
			Int64("user_id", userID).
			Time("before", before).
			Msg("failed to execute feed query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanPosts(ctx, rows)
}

// CreatePost persists a new post record and returns the fully populated
// [models.Post] with the server-assigned CreatedAt.
//
// The INSERT uses the [createPost] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created post.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createPost, post.ID, post.UserID, post.Caption, post.ImageURL)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Int64("user_id", post.UserID).
			Msg("error: row is nil")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var saved models.Post
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Caption, &saved.ImageURL, &saved.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Int64("user_id", post.UserID).
			Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// DeletePost removes the post with the given id and returns the deleted row.
//
// The DELETE uses a RETURNING clause so the caller receives the record as it
// existed at deletion time. A delete that matches no row yields
// [ErrPostNotFound], which keeps a repeated delete idempotent at the API
// level (second call → 404).
func (p *postRepository) DeletePost(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	var deleted models.Post
	row := p.DB.QueryRowContext(ctx, deletePost, postID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Str("post_id", postID).Msg("error: row is nil")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := row.Scan(&deleted.ID, &deleted.UserID, &deleted.Caption, &deleted.ImageURL, &deleted.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.DeletePost").Str("post_id", postID).Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deleted, nil
}

// scanPosts drains rows into a slice of posts, wrapping scan and iteration
// failures in the package's low-level sentinels.
func scanPosts(ctx context.Context, rows *sql.Rows) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts := make([]models.Post, 0, feedPageSize)

	for rows.Next() {
		var post models.Post

		if err := rows.Scan(&post.ID, &post.UserID, &post.Caption, &post.ImageURL, &post.CreatedAt); err != nil {
			log.Err(err).Str("func", "scanPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "scanPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}
