package models

import "time"

// Post represents a single feed item: a caption plus an optional image,
// authored by exactly one user. Posts are immutable after creation; the only
// mutation the application performs on them is deletion by their owner.
type Post struct {
	// ID is the opaque, stable identifier of the post (UUID string).
	// Assigned by the server at creation time.
	ID string `json:"id"`

	// UserID is the identifier of the user that authored the post.
	// Every post persisted by the repository carries a resolvable owner.
	UserID int64 `json:"user_id"`

	// Caption is the free-form text attached to the post.
	Caption string `json:"caption"`

	// ImageURL is the resolvable URL of the post's image, produced by a
	// prior upload. May be empty for text-only posts.
	ImageURL string `json:"image_url,omitempty"`

	// CreatedAt is the server-assigned creation timestamp. The feed is
	// ordered newest-first on this column.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
