package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleModel struct {
	ID              string     `gorm:"type:uuid;primary_key" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug            string     `gorm:"type:varchar(300);uniqueIndex;not null" json:"slug"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Excerpt         string     `gorm:"type:text" json:"excerpt"`
	CoverImage      string     `gorm:"type:varchar(500)" json:"cover_image"`
	EducatorID      string     `gorm:"type:uuid;not null;index" json:"educator_id"`
	UserID          string     `gorm:"type:uuid;not null;index" json:"user_id"`
	SubjectID       string     `gorm:"type:uuid;not null;index" json:"subject_id"`
	Tags            string     `gorm:"type:text" json:"tags"`
	Status          string     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason"`
	IsFlagged       bool       `gorm:"default:false;index" json:"is_flagged"`
	FlagReason      string     `gorm:"type:text" json:"flag_reason"`
	ViewCount       int64      `gorm:"default:0" json:"view_count"`
	LikeCount       int64      `gorm:"default:0" json:"like_count"`
	BookmarkCount   int64      `gorm:"default:0" json:"bookmark_count"`
	ReadingTime     int        `gorm:"default:1" json:"reading_time"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

func (a *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
