package entity

import "time"

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPending   ArticleStatus = "pending"
	StatusPublished ArticleStatus = "published"
	StatusRejected  ArticleStatus = "rejected"
)

type ArticleAction string

const (
	ActionSubmit   ArticleAction = "submit"
	ActionWithdraw ArticleAction = "withdraw"
	ActionApprove  ArticleAction = "approve"
	ActionReject   ArticleAction = "reject"
)

// transitions is the article state machine. Anything not listed here is
// rejected. published has no outgoing transitions: it is a closed terminal
// state for content edits, only moderation actions (flag toggling, report
// resolution) may still touch a published article.
var transitions = map[ArticleStatus]map[ArticleAction]ArticleStatus{
	StatusDraft: {
		ActionSubmit: StatusPending,
	},
	StatusPending: {
		ActionWithdraw: StatusDraft,
		ActionApprove:  StatusPublished,
		ActionReject:   StatusRejected,
	},
	StatusRejected: {
		ActionSubmit: StatusPending,
	},
}

// Transition resolves (from, action) against the transition table.
func Transition(from ArticleStatus, action ArticleAction) (ArticleStatus, bool) {
	to, ok := transitions[from][action]
	return to, ok
}

// Mutable reports whether the owning educator may still edit or delete the
// article. Published articles are immutable to their author.
func (s ArticleStatus) Mutable() bool {
	return s != StatusPublished
}

func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

type Article struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Content         string        `json:"content"`
	Excerpt         string        `json:"excerpt"`
	CoverImage      string        `json:"cover_image"`
	EducatorID      string        `json:"educator_id"`
	UserID          string        `json:"user_id"`
	SubjectID       string        `json:"subject_id"`
	Tags            []string      `json:"tags"`
	Status          ArticleStatus `json:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	IsFlagged       bool          `json:"is_flagged"`
	FlagReason      string        `json:"flag_reason,omitempty"`
	ViewCount       int64         `json:"view_count"`
	LikeCount       int64         `json:"like_count"`
	BookmarkCount   int64         `json:"bookmark_count"`
	ReadingTime     int           `json:"reading_time"`
	PublishedAt     *time.Time    `json:"published_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
