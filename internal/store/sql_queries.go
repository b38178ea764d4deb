package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createPost = `INSERT INTO posts (post_id, user_id, caption, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING post_id, user_id, caption, image_url, created_at;`

	getPost = `SELECT post_id, user_id, caption, image_url, created_at
		FROM posts
		WHERE post_id = $1;`

	getAllPosts = `SELECT post_id, user_id, caption, image_url, created_at
		FROM posts
		ORDER BY created_at DESC, post_id DESC;`

	getPostsForUser = `SELECT post_id, user_id, caption, image_url, created_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC, post_id DESC;`

	deletePost = `DELETE FROM posts
		WHERE post_id = $1
		RETURNING post_id, user_id, caption, image_url, created_at;`
)

// feedPageSize caps one feed page. Callers page further by passing the
// created_at of the last returned post as the next boundary.
const feedPageSize = 20

// buildFeedQuery constructs the parameterised feed SELECT for the given
// caller and pagination boundary.
//
// The boundary is an inclusive upper bound: only posts created at or before
// it are returned, newest first, tie-broken by post_id so that pages are
// stable when several posts share a timestamp. The caller id is not a filter
// today (the feed spans all authors) but is kept in the signature so a
// follows-based feed can be introduced without touching call sites.
func buildFeedQuery(_ int64, before time.Time) (string, []any, error) {
	query, args, err := sq.
		Select("post_id", "user_id", "caption", "image_url", "created_at").
		From("posts").
		Where(sq.LtOrEq{"created_at": before}).
		OrderBy("created_at DESC", "post_id DESC").
		Limit(feedPageSize).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
