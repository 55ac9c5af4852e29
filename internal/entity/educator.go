package entity

import "time"

// EducatorProfile carries denormalized aggregates over the educator's
// articles. They are derived, secondary state: every mutation path must
// remember to update them, and ReconcileEducatorStats can recompute them
// from the authoritative per-article counters.
type EducatorProfile struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Bio            string    `json:"bio"`
	ProfilePhoto   string    `json:"profile_photo"`
	SubjectIDs     []string  `json:"subject_ids"`
	IsApproved     bool      `json:"is_approved"`
	TotalArticles  int64     `json:"total_articles"`
	TotalViews     int64     `json:"total_views"`
	TotalLikes     int64     `json:"total_likes"`
	TotalBookmarks int64     `json:"total_bookmarks"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AssignedTo reports whether the educator may author under the subject.
func (p *EducatorProfile) AssignedTo(subjectID string) bool {
	for _, id := range p.SubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}

// EducatorStats is the educator dashboard payload: the stored aggregates
// plus live per-status counts.
type EducatorStats struct {
	TotalArticles  int64 `json:"total_articles"`
	TotalViews     int64 `json:"total_views"`
	TotalLikes     int64 `json:"total_likes"`
	TotalBookmarks int64 `json:"total_bookmarks"`
	DraftCount     int64 `json:"draft_count"`
	PendingCount   int64 `json:"pending_count"`
	PublishedCount int64 `json:"published_count"`
	RejectedCount  int64 `json:"rejected_count"`
}
