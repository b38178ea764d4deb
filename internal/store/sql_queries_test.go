package store

import (
	"strings"
	"testing"
	"time"
)

func TestBuildFeedQuery(t *testing.T) {
	boundary := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	query, args, err := buildFeedQuery(1, boundary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{
		"SELECT post_id, user_id, caption, image_url, created_at",
		"FROM posts",
		"created_at <= $1",
		"ORDER BY created_at DESC, post_id DESC",
		"LIMIT 20",
	} {
		if !strings.Contains(query, fragment) {
			t.Errorf("query is missing %q:\n%s", fragment, query)
		}
	}

	if len(args) != 1 {
		t.Fatalf("expected 1 query argument, got %d", len(args))
	}
	got, ok := args[0].(time.Time)
	if !ok {
		t.Fatalf("expected time.Time argument, got %T", args[0])
	}
	if !got.Equal(boundary) {
		t.Errorf("expected boundary %v, got %v", boundary, got)
	}
}
