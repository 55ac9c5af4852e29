package persistent

import (
	"encoding/json"

	"edupress/internal/entity"
	"edupress/internal/model"

	"github.com/google/uuid"
)

// uuidOrNil maps an optional uuid reference to its stored form. Empty
// strings must become NULL: Postgres rejects '' as uuid input.
func uuidOrNil(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func uuidOrEmpty(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

// idOrSlugColumn picks the lookup column for a combined id-or-slug
// parameter. Slugs never parse as UUIDs, and comparing a slug against the
// uuid id column is a query error in Postgres, not a miss.
func idOrSlugColumn(idOrSlug string) string {
	if _, err := uuid.Parse(idOrSlug); err == nil {
		return "id"
	}
	return "slug"
}

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

func ToArticleEntity(m *model.ArticleModel) *entity.Article {
	if m == nil {
		return nil
	}

	return &entity.Article{
		ID:              m.ID,
		Title:           m.Title,
		Slug:            m.Slug,
		Content:         m.Content,
		Excerpt:         m.Excerpt,
		CoverImage:      m.CoverImage,
		EducatorID:      m.EducatorID,
		UserID:          m.UserID,
		SubjectID:       m.SubjectID,
		Tags:            decodeStrings(m.Tags),
		Status:          entity.ArticleStatus(m.Status),
		RejectionReason: m.RejectionReason,
		IsFlagged:       m.IsFlagged,
		FlagReason:      m.FlagReason,
		ViewCount:       m.ViewCount,
		LikeCount:       m.LikeCount,
		BookmarkCount:   m.BookmarkCount,
		ReadingTime:     m.ReadingTime,
		PublishedAt:     m.PublishedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToArticleModel(e *entity.Article) *model.ArticleModel {
	if e == nil {
		return nil
	}

	return &model.ArticleModel{
		ID:              e.ID,
		Title:           e.Title,
		Slug:            e.Slug,
		Content:         e.Content,
		Excerpt:         e.Excerpt,
		CoverImage:      e.CoverImage,
		EducatorID:      e.EducatorID,
		UserID:          e.UserID,
		SubjectID:       e.SubjectID,
		Tags:            encodeStrings(e.Tags),
		Status:          string(e.Status),
		RejectionReason: e.RejectionReason,
		IsFlagged:       e.IsFlagged,
		FlagReason:      e.FlagReason,
		ViewCount:       e.ViewCount,
		LikeCount:       e.LikeCount,
		BookmarkCount:   e.BookmarkCount,
		ReadingTime:     e.ReadingTime,
		PublishedAt:     e.PublishedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Role:      entity.Role(m.Role),
		Password:  m.Password,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Name:      e.Name,
		Password:  e.Password,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToEducatorProfileEntity(m *model.EducatorProfileModel) *entity.EducatorProfile {
	if m == nil {
		return nil
	}

	return &entity.EducatorProfile{
		ID:             m.ID,
		UserID:         m.UserID,
		Bio:            m.Bio,
		ProfilePhoto:   m.ProfilePhoto,
		SubjectIDs:     decodeStrings(m.SubjectIDs),
		IsApproved:     m.IsApproved,
		TotalArticles:  m.TotalArticles,
		TotalViews:     m.TotalViews,
		TotalLikes:     m.TotalLikes,
		TotalBookmarks: m.TotalBookmarks,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToEducatorProfileModel(e *entity.EducatorProfile) *model.EducatorProfileModel {
	if e == nil {
		return nil
	}

	return &model.EducatorProfileModel{
		ID:             e.ID,
		UserID:         e.UserID,
		Bio:            e.Bio,
		ProfilePhoto:   e.ProfilePhoto,
		SubjectIDs:     encodeStrings(e.SubjectIDs),
		IsApproved:     e.IsApproved,
		TotalArticles:  e.TotalArticles,
		TotalViews:     e.TotalViews,
		TotalLikes:     e.TotalLikes,
		TotalBookmarks: e.TotalBookmarks,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToSubjectEntity(m *model.SubjectModel) *entity.Subject {
	if m == nil {
		return nil
	}

	return &entity.Subject{
		ID:           m.ID,
		Name:         m.Name,
		Slug:         m.Slug,
		Description:  m.Description,
		Icon:         m.Icon,
		Color:        m.Color,
		ArticleCount: m.ArticleCount,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func ToSubjectModel(e *entity.Subject) *model.SubjectModel {
	if e == nil {
		return nil
	}

	return &model.SubjectModel{
		ID:           e.ID,
		Name:         e.Name,
		Slug:         e.Slug,
		Description:  e.Description,
		Icon:         e.Icon,
		Color:        e.Color,
		ArticleCount: e.ArticleCount,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
}

func ToReportEntity(m *model.ReportModel) *entity.Report {
	if m == nil {
		return nil
	}

	return &entity.Report{
		ID:             m.ID,
		ReporterID:     m.ReporterID,
		ArticleID:      m.ArticleID,
		Reason:         entity.ReportReason(m.Reason),
		Description:    m.Description,
		Status:         entity.ReportStatus(m.Status),
		ReviewedBy:     uuidOrEmpty(m.ReviewedBy),
		ResolutionNote: m.ResolutionNote,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToReportModel(e *entity.Report) *model.ReportModel {
	if e == nil {
		return nil
	}

	return &model.ReportModel{
		ID:             e.ID,
		ReporterID:     e.ReporterID,
		ArticleID:      e.ArticleID,
		Reason:         string(e.Reason),
		Description:    e.Description,
		Status:         string(e.Status),
		ReviewedBy:     uuidOrNil(e.ReviewedBy),
		ResolutionNote: e.ResolutionNote,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToViewEntity(m *model.ViewModel) *entity.View {
	if m == nil {
		return nil
	}

	return &entity.View{
		ID:        m.ID,
		UserID:    uuidOrEmpty(m.UserID),
		ArticleID: m.ArticleID,
		CreatedAt: m.CreatedAt,
	}
}

func ToViewModel(e *entity.View) *model.ViewModel {
	if e == nil {
		return nil
	}

	return &model.ViewModel{
		ID:        e.ID,
		UserID:    uuidOrNil(e.UserID),
		ArticleID: e.ArticleID,
		CreatedAt: e.CreatedAt,
	}
}

func ToModerationLogEntity(m *model.ModerationLogModel) *entity.ModerationLog {
	if m == nil {
		return nil
	}

	return &entity.ModerationLog{
		ID:         m.ID,
		AdminID:    m.AdminID,
		Action:     m.Action,
		TargetType: m.TargetType,
		TargetID:   m.TargetID,
		Details:    m.Details,
		CreatedAt:  m.CreatedAt,
	}
}

func ToModerationLogModel(e *entity.ModerationLog) *model.ModerationLogModel {
	if e == nil {
		return nil
	}

	return &model.ModerationLogModel{
		ID:         e.ID,
		AdminID:    e.AdminID,
		Action:     e.Action,
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt,
	}
}
