package usecase

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"edupress/internal/entity"
	"edupress/internal/repo/persistent"
	"edupress/pkg/apperr"
	"edupress/pkg/logger"
	"edupress/pkg/moderation"
	"edupress/pkg/s3"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateArticleInput struct {
	Title      string
	Content    string
	Excerpt    string
	CoverImage string
	SubjectID  string
	Tags       []string
	Status     entity.ArticleStatus
}

// UpdateArticleInput carries partial updates; nil pointer fields are left
// unchanged. Tags are replaced wholesale when non-nil.
type UpdateArticleInput struct {
	Title      *string
	Content    *string
	Excerpt    *string
	CoverImage *string
	SubjectID  *string
	Tags       []string
	Status     *entity.ArticleStatus
}

type ArticleUseCase interface {
	CreateArticle(userID string, input CreateArticleInput) (*entity.Article, error)
	UpdateArticle(articleID, userID string, input UpdateArticleInput) (*entity.Article, error)
	DeleteArticle(articleID, userID string) error
	GetMyArticle(articleID, userID string) (*entity.Article, error)
	ListMyArticles(userID string, status string, limit, offset int) ([]*entity.Article, error)
	MyStats(userID string) (*entity.EducatorStats, error)
	MyProfile(userID string) (*entity.EducatorProfile, error)
	UpdateMyProfile(userID string, input UpdateProfileInput) (*entity.EducatorProfile, error)
	UploadCoverImage(userID string, file *multipart.FileHeader) (string, error)
}

// UpdateProfileInput carries the self-service fields. Approval and subject
// assignment stay admin-only.
type UpdateProfileInput struct {
	Bio          *string
	ProfilePhoto *string
}

type articleUseCase struct {
	articleRepo  persistent.ArticleRepository
	educatorRepo persistent.EducatorRepository
	subjectRepo  persistent.SubjectRepository
	s3Client     *s3.Client
	logger       *logger.Logger
}

func NewArticleUseCase(
	articleRepo persistent.ArticleRepository,
	educatorRepo persistent.EducatorRepository,
	subjectRepo persistent.SubjectRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) ArticleUseCase {
	return &articleUseCase{
		articleRepo:  articleRepo,
		educatorRepo: educatorRepo,
		subjectRepo:  subjectRepo,
		s3Client:     s3Client,
		logger:       logger,
	}
}

// approvedProfile loads the educator profile for userID and checks it may
// author content.
func (uc *articleUseCase) approvedProfile(userID string) (*entity.EducatorProfile, error) {
	profile, err := uc.educatorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("educator profile not found")
	}
	if !profile.IsApproved {
		return nil, apperr.Forbidden("educator account is not approved")
	}
	return profile, nil
}

func (uc *articleUseCase) CreateArticle(userID string, input CreateArticleInput) (*entity.Article, error) {
	profile, err := uc.approvedProfile(userID)
	if err != nil {
		return nil, err
	}

	subject, err := uc.subjectRepo.GetByID(input.SubjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil || !subject.IsActive {
		return nil, apperr.NotFound("subject not found")
	}
	if !profile.AssignedTo(subject.ID) {
		return nil, apperr.Forbidden("educator is not assigned to this subject")
	}

	status := input.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if status != entity.StatusDraft && status != entity.StatusPending {
		return nil, apperr.InvalidState("new articles must start as draft or pending")
	}

	base := makeSlug(input.Title)
	if base == "" {
		base = slugSuffix()
	}
	slug := base
	exists, err := uc.articleRepo.SlugExists(slug)
	if err != nil {
		return nil, err
	}
	if exists {
		slug = fmt.Sprintf("%s-%s", base, slugSuffix())
	}

	article := &entity.Article{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Slug:        slug,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		CoverImage:  input.CoverImage,
		EducatorID:  profile.ID,
		UserID:      userID,
		SubjectID:   subject.ID,
		Tags:        input.Tags,
		Status:      status,
		ReadingTime: readingTime(input.Content),
	}

	result := moderation.ModerateArticle(article.Title, article.Content, article.Excerpt)
	if result.IsFlagged {
		article.IsFlagged = true
		article.FlagReason = result.Reason
		uc.logger.Warn("Article %s flagged on create: %s", article.ID, result.Reason)
	}

	if err := uc.articleRepo.Create(article); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// Lost the slug unique-index race to a concurrent same-title
		// create. A fresh random suffix resolves it.
		article.Slug = fmt.Sprintf("%s-%s", base, slugSuffix())
		if err := uc.articleRepo.Create(article); err != nil {
			return nil, err
		}
	}

	if err := uc.educatorRepo.AddTotalArticles(profile.ID, 1); err != nil {
		uc.logger.Error("Failed to bump total_articles for educator %s: %v", profile.ID, err)
	}

	uc.logger.Info("Educator %s created article %s (%s)", userID, article.ID, article.Status)
	return article, nil
}

// ownedMutable fetches an article and checks the caller owns it and may
// still edit it.
func (uc *articleUseCase) ownedMutable(articleID, userID string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}
	if article.UserID != userID {
		return nil, apperr.Forbidden("article belongs to another educator")
	}
	if !article.Status.Mutable() {
		return nil, apperr.InvalidState("published articles cannot be modified")
	}
	return article, nil
}

func (uc *articleUseCase) UpdateArticle(articleID, userID string, input UpdateArticleInput) (*entity.Article, error) {
	article, err := uc.ownedMutable(articleID, userID)
	if err != nil {
		return nil, err
	}

	contentChanged := false
	if input.Title != nil && *input.Title != article.Title {
		article.Title = *input.Title
		contentChanged = true
	}
	if input.Content != nil && *input.Content != article.Content {
		article.Content = *input.Content
		article.ReadingTime = readingTime(article.Content)
		contentChanged = true
	}
	if input.Excerpt != nil {
		article.Excerpt = *input.Excerpt
	}
	if input.CoverImage != nil {
		article.CoverImage = *input.CoverImage
	}
	if input.Tags != nil {
		article.Tags = input.Tags
	}

	if input.SubjectID != nil && *input.SubjectID != article.SubjectID {
		profile, err := uc.educatorRepo.GetByUserID(userID)
		if err != nil {
			return nil, err
		}
		subject, err := uc.subjectRepo.GetByID(*input.SubjectID)
		if err != nil {
			return nil, err
		}
		if subject == nil || !subject.IsActive {
			return nil, apperr.NotFound("subject not found")
		}
		if profile == nil || !profile.AssignedTo(subject.ID) {
			return nil, apperr.Forbidden("educator is not assigned to this subject")
		}
		article.SubjectID = subject.ID
	}

	if input.Status != nil && *input.Status != article.Status {
		var action entity.ArticleAction
		switch *input.Status {
		case entity.StatusPending:
			action = entity.ActionSubmit
		case entity.StatusDraft:
			action = entity.ActionWithdraw
		default:
			return nil, apperr.InvalidState("educators may only move articles between draft and pending")
		}
		next, ok := entity.Transition(article.Status, action)
		if !ok {
			return nil, apperr.InvalidState("cannot %s an article in status %s", action, article.Status)
		}
		article.Status = next
	}

	// Re-moderate when the visible text changed; a previously clean flag
	// state is recomputed rather than kept stale.
	if contentChanged {
		result := moderation.ModerateArticle(article.Title, article.Content, article.Excerpt)
		article.IsFlagged = result.IsFlagged
		article.FlagReason = result.Reason
		if result.IsFlagged {
			uc.logger.Warn("Article %s flagged on update: %s", article.ID, result.Reason)
		}
	}

	article.UpdatedAt = time.Now()
	if err := uc.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (uc *articleUseCase) DeleteArticle(articleID, userID string) error {
	article, err := uc.ownedMutable(articleID, userID)
	if err != nil {
		return err
	}

	if err := uc.articleRepo.Delete(article.ID); err != nil {
		return err
	}

	if err := uc.educatorRepo.AddTotalArticles(article.EducatorID, -1); err != nil {
		uc.logger.Error("Failed to decrement total_articles for educator %s: %v", article.EducatorID, err)
	}

	uc.logger.Info("Educator %s deleted article %s", userID, articleID)
	return nil
}

func (uc *articleUseCase) GetMyArticle(articleID, userID string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}
	if article.UserID != userID {
		return nil, apperr.Forbidden("article belongs to another educator")
	}
	return article, nil
}

func (uc *articleUseCase) ListMyArticles(userID string, status string, limit, offset int) ([]*entity.Article, error) {
	filter := persistent.ArticleFilter{
		UserID: userID,
		Sort:   "recent",
		Limit:  limit,
		Offset: offset,
	}
	if status != "" {
		s := entity.ArticleStatus(status)
		if !s.Valid() {
			return nil, apperr.InvalidState("unknown article status %q", status)
		}
		filter.Status = s
	}
	return uc.articleRepo.List(filter)
}

func (uc *articleUseCase) MyStats(userID string) (*entity.EducatorStats, error) {
	profile, err := uc.educatorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("educator profile not found")
	}

	stats := &entity.EducatorStats{
		TotalArticles:  profile.TotalArticles,
		TotalViews:     profile.TotalViews,
		TotalLikes:     profile.TotalLikes,
		TotalBookmarks: profile.TotalBookmarks,
	}

	counts := []struct {
		status entity.ArticleStatus
		dest   *int64
	}{
		{entity.StatusDraft, &stats.DraftCount},
		{entity.StatusPending, &stats.PendingCount},
		{entity.StatusPublished, &stats.PublishedCount},
		{entity.StatusRejected, &stats.RejectedCount},
	}
	for _, c := range counts {
		n, err := uc.articleRepo.CountByEducatorAndStatus(profile.ID, c.status)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}

	return stats, nil
}

func (uc *articleUseCase) MyProfile(userID string) (*entity.EducatorProfile, error) {
	profile, err := uc.educatorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("educator profile not found")
	}
	return profile, nil
}

func (uc *articleUseCase) UpdateMyProfile(userID string, input UpdateProfileInput) (*entity.EducatorProfile, error) {
	profile, err := uc.MyProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.ProfilePhoto != nil {
		profile.ProfilePhoto = *input.ProfilePhoto
	}
	profile.UpdatedAt = time.Now()

	if err := uc.educatorRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *articleUseCase) UploadCoverImage(userID string, file *multipart.FileHeader) (string, error) {
	if _, err := uc.approvedProfile(userID); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
	default:
		return "", apperr.InvalidState("unsupported cover image type %q", ext)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	fileKey := fmt.Sprintf("covers/%s/%s%s", userID, uuid.New().String(), ext)
	url, err := uc.s3Client.UploadFile(fileKey, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload cover image: %w", err)
	}

	return url, nil
}
