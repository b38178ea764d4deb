package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/models"
)

var postColumns = []string{"post_id", "user_id", "caption", "image_url", "created_at"}

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &postRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetPost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	postID := "018f3c6e-2f4a-7bbd-9e6a-2c6c1a6d0001"
	now := time.Now()

	rows := sqlmock.NewRows(postColumns).
		AddRow(postID, int64(3), "un atardecer", "/images/a.jpg", now)

	mock.ExpectQuery("SELECT post_id, user_id, caption, image_url, created_at").
		WithArgs(postID).
		WillReturnRows(rows)

	post, err := repo.GetPost(ctx, postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != postID {
		t.Errorf("expected post id %s, got %s", postID, post.ID)
	}
	if post.UserID != 3 {
		t.Errorf("expected user id 3, got %d", post.UserID)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT post_id, user_id, caption, image_url, created_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := repo.GetPost(ctx, "missing")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestGetPost_QueryError(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT post_id, user_id, caption, image_url, created_at").
		WithArgs("any").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetPost(ctx, "any")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	post := models.Post{
		ID:       "018f3c6e-2f4a-7bbd-9e6a-2c6c1a6d0002",
		UserID:   5,
		Caption:  "hola",
		ImageURL: "/images/b.png",
	}

	rows := sqlmock.NewRows(postColumns).
		AddRow(post.ID, post.UserID, post.Caption, post.ImageURL, now)

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(post.ID, post.UserID, post.Caption, post.ImageURL).
		WillReturnRows(rows)

	saved, err := repo.CreatePost(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != post.ID {
		t.Errorf("expected post id %s, got %s", post.ID, saved.ID)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected server-assigned CreatedAt, got zero value")
	}
}

func TestDeletePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	postID := "018f3c6e-2f4a-7bbd-9e6a-2c6c1a6d0003"
	now := time.Now()

	rows := sqlmock.NewRows(postColumns).
		AddRow(postID, int64(9), "borrado", "/images/c.gif", now)

	mock.ExpectQuery("DELETE FROM posts").
		WithArgs(postID).
		WillReturnRows(rows)

	deleted, err := repo.DeletePost(ctx, postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != postID {
		t.Errorf("expected deleted post id %s, got %s", postID, deleted.ID)
	}
	if deleted.UserID != 9 {
		t.Errorf("expected deleted post owner 9, got %d", deleted.UserID)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("DELETE FROM posts").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := repo.DeletePost(ctx, "missing")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListPosts_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(postColumns).
		AddRow("id-newer", int64(1), "segundo", "/images/2.jpg", now).
		AddRow("id-older", int64(2), "primero", "/images/1.jpg", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT post_id, user_id, caption, image_url, created_at").
		WillReturnRows(rows)

	posts, err := repo.ListPosts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "id-newer" {
		t.Errorf("expected newest post first, got %s", posts[0].ID)
	}
}

func TestListPosts_Empty(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT post_id, user_id, caption, image_url, created_at").
		WillReturnRows(sqlmock.NewRows(postColumns))

	posts, err := repo.ListPosts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestGetPostsForUser_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(postColumns).
		AddRow("id-1", int64(4), "mío", "/images/m.jpg", now)

	mock.ExpectQuery("SELECT post_id, user_id, caption, image_url, created_at").
		WithArgs(int64(4)).
		WillReturnRows(rows)

	posts, err := repo.GetPostsForUser(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].UserID != 4 {
		t.Errorf("expected user id 4, got %d", posts[0].UserID)
	}
}

func TestGetFeed_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	boundary := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(postColumns).
		AddRow("id-a", int64(2), "dentro del límite", "/images/a.jpg", boundary.Add(-time.Minute))

	mock.ExpectQuery("SELECT post_id, user_id, caption, image_url, created_at FROM posts").
		WithArgs(boundary).
		WillReturnRows(rows)

	posts, err := repo.GetFeed(ctx, 1, boundary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].CreatedAt.After(boundary) {
		t.Errorf("feed returned a post newer than the boundary: %v", posts[0].CreatedAt)
	}
}

func TestGetFeed_QueryError(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	boundary := time.Now()

	mock.ExpectQuery("SELECT post_id, user_id, caption, image_url, created_at FROM posts").
		WithArgs(boundary).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetFeed(ctx, 1, boundary)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
