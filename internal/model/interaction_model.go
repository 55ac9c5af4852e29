package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The unique composite indexes on likes and bookmarks are the sole
// concurrency safeguard for the toggle operations: concurrent duplicate
// inserts race in application logic and exactly one wins at the store.

type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_article" json:"user_id"`
	ArticleID string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_article;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type BookmarkModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_article" json:"user_id"`
	ArticleID string    `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_article;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (BookmarkModel) TableName() string {
	return "bookmarks"
}

func (b *BookmarkModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// ViewModel is append-only and deliberately not unique: every fetch of a
// published article inserts a row, repeat viewers included. UserID is a
// pointer so anonymous views store NULL rather than an empty string the
// uuid column would reject.
type ViewModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *string   `gorm:"type:uuid;index" json:"user_id"`
	ArticleID string    `gorm:"type:uuid;not null;index" json:"article_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ViewModel) TableName() string {
	return "views"
}

func (v *ViewModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
