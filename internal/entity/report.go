package entity

import "time"

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type ReportReason string

const (
	ReasonCopyright      ReportReason = "copyright"
	ReasonAbuse          ReportReason = "abuse"
	ReasonSpam           ReportReason = "spam"
	ReasonMisinformation ReportReason = "misinformation"
	ReasonOther          ReportReason = "other"
)

func (r ReportReason) Valid() bool {
	switch r {
	case ReasonCopyright, ReasonAbuse, ReasonSpam, ReasonMisinformation, ReasonOther:
		return true
	}
	return false
}

// Report is unique per (reporter, article); duplicates are a conflict.
type Report struct {
	ID             string       `json:"id"`
	ReporterID     string       `json:"reporter_id"`
	ArticleID      string       `json:"article_id"`
	Reason         ReportReason `json:"reason"`
	Description    string       `json:"description"`
	Status         ReportStatus `json:"status"`
	ReviewedBy     string       `json:"reviewed_by,omitempty"`
	ResolutionNote string       `json:"resolution_note,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
