package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EducatorProfileModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Bio            string    `gorm:"type:text" json:"bio"`
	ProfilePhoto   string    `gorm:"type:varchar(500)" json:"profile_photo"`
	SubjectIDs     string    `gorm:"type:text" json:"subject_ids"`
	IsApproved     bool      `gorm:"default:false;index" json:"is_approved"`
	TotalArticles  int64     `gorm:"default:0" json:"total_articles"`
	TotalViews     int64     `gorm:"default:0" json:"total_views"`
	TotalLikes     int64     `gorm:"default:0" json:"total_likes"`
	TotalBookmarks int64     `gorm:"default:0" json:"total_bookmarks"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (EducatorProfileModel) TableName() string {
	return "educator_profiles"
}

func (p *EducatorProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
