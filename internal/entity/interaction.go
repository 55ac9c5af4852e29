package entity

import "time"

// Like and Bookmark are toggle relations: at most one row per
// (user, article) pair, enforced by a storage-level unique constraint.
// Presence of the row is the toggle state.

type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ArticleID string    `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ArticleID string    `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// View is an append-only event: one row per view, repeat viewers included,
// anonymous viewers allowed (empty UserID).
type View struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	ArticleID string    `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}
