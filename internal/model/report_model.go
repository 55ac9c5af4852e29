package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	ReporterID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_reports_reporter_article" json:"reporter_id"`
	ArticleID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_reports_reporter_article;index" json:"article_id"`
	Reason         string    `gorm:"type:varchar(50);not null" json:"reason"`
	Description    string    `gorm:"type:text" json:"description"`
	Status         string    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ReviewedBy     *string   `gorm:"type:uuid" json:"reviewed_by"`
	ResolutionNote string    `gorm:"type:text" json:"resolution_note"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ReportModel) TableName() string {
	return "reports"
}

func (r *ReportModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type ModerationLogModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	AdminID    string    `gorm:"type:uuid;not null;index" json:"admin_id"`
	Action     string    `gorm:"type:varchar(100);not null" json:"action"`
	TargetType string    `gorm:"type:varchar(50);not null" json:"target_type"`
	TargetID   string    `gorm:"type:uuid;not null;index" json:"target_id"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ModerationLogModel) TableName() string {
	return "moderation_logs"
}

func (m *ModerationLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
