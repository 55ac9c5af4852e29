package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"edupress/internal/entity"
	"edupress/internal/repo/persistent"
	"edupress/pkg/apperr"
	"edupress/pkg/logger"
	"edupress/pkg/mailer"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	platformStatsKey = "stats:platform"
	platformStatsTTL = 5 * time.Minute

	educatorPasswordLength = 12
)

type CreateEducatorInput struct {
	Email        string
	Name         string
	Bio          string
	ProfilePhoto string
	SubjectIDs   []string
}

type UpdateEducatorInput struct {
	Bio          *string
	ProfilePhoto *string
	SubjectIDs   []string
	IsApproved   *bool
}

// EducatorAccount is the admin-facing creation result. The initial password
// is returned once and otherwise only leaves the system by mail.
type EducatorAccount struct {
	User            *entity.User            `json:"user"`
	Profile         *entity.EducatorProfile `json:"profile"`
	InitialPassword string                  `json:"initial_password"`
}

type CreateSubjectInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
}

type UpdateSubjectInput struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
	IsActive    *bool
}

type PlatformStats struct {
	ApprovedEducators   int64 `json:"approved_educators"`
	UnapprovedEducators int64 `json:"unapproved_educators"`
	PublishedArticles   int64 `json:"published_articles"`
	PendingArticles     int64 `json:"pending_articles"`
	FlaggedArticles     int64 `json:"flagged_articles"`
	TotalViews          int64 `json:"total_views"`
	PendingReports      int64 `json:"pending_reports"`
}

type AdminUseCase interface {
	ReviewQueue(limit, offset int) ([]*entity.Article, error)
	FlaggedArticles(limit, offset int) ([]*entity.Article, error)
	GetArticle(articleID string) (*entity.Article, error)
	ReviewArticle(adminID, articleID string, action entity.ArticleAction, reason string) (*entity.Article, error)
	ClearFlag(adminID, articleID string) (*entity.Article, error)
	ListReports(status string, limit, offset int) ([]*entity.Report, error)
	ResolveReport(adminID, reportID string, status entity.ReportStatus, note string) (*entity.Report, error)
	CreateEducator(adminID string, input CreateEducatorInput) (*EducatorAccount, error)
	UpdateEducator(adminID, educatorID string, input UpdateEducatorInput) (*entity.EducatorProfile, error)
	DeactivateEducator(adminID, educatorID string) error
	ListEducators(approved *bool, limit, offset int) ([]*entity.EducatorProfile, error)
	CreateSubject(adminID string, input CreateSubjectInput) (*entity.Subject, error)
	UpdateSubject(adminID, subjectID string, input UpdateSubjectInput) (*entity.Subject, error)
	GetPlatformStats() (*PlatformStats, error)
	ReconcileEducatorStats(adminID, educatorID string) (*persistent.CounterAggregates, error)
	ReconcileSubjectCount(adminID, subjectID string) (int64, error)
	AuditLog(limit, offset int) ([]*entity.ModerationLog, error)
}

type adminUseCase struct {
	articleRepo  persistent.ArticleRepository
	userRepo     persistent.UserRepository
	educatorRepo persistent.EducatorRepository
	subjectRepo  persistent.SubjectRepository
	reportRepo   persistent.ReportRepository
	auditRepo    persistent.AuditRepository
	redisClient  *redis.Client
	mailer       *mailer.Mailer
	logger       *logger.Logger
}

func NewAdminUseCase(
	articleRepo persistent.ArticleRepository,
	userRepo persistent.UserRepository,
	educatorRepo persistent.EducatorRepository,
	subjectRepo persistent.SubjectRepository,
	reportRepo persistent.ReportRepository,
	auditRepo persistent.AuditRepository,
	redisClient *redis.Client,
	mail *mailer.Mailer,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		educatorRepo: educatorRepo,
		subjectRepo:  subjectRepo,
		reportRepo:   reportRepo,
		auditRepo:    auditRepo,
		redisClient:  redisClient,
		mailer:       mail,
		logger:       logger,
	}
}

// audit appends to the moderation trail. Failures are logged only: the
// admin action itself has already been applied.
func (uc *adminUseCase) audit(adminID, action, targetType, targetID, details string) {
	entry := &entity.ModerationLog{
		ID:         uuid.New().String(),
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
	}
	if err := uc.auditRepo.Create(entry); err != nil {
		uc.logger.Error("Failed to write moderation log (%s %s/%s): %v", action, targetType, targetID, err)
	}
}

func (uc *adminUseCase) ReviewQueue(limit, offset int) ([]*entity.Article, error) {
	return uc.articleRepo.List(persistent.ArticleFilter{
		Status: entity.StatusPending,
		Sort:   "created",
		Limit:  limit,
		Offset: offset,
	})
}

func (uc *adminUseCase) FlaggedArticles(limit, offset int) ([]*entity.Article, error) {
	flagged := true
	return uc.articleRepo.List(persistent.ArticleFilter{
		Flagged: &flagged,
		Sort:    "created",
		Limit:   limit,
		Offset:  offset,
	})
}

func (uc *adminUseCase) GetArticle(articleID string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}
	return article, nil
}

func (uc *adminUseCase) ReviewArticle(adminID, articleID string, action entity.ArticleAction, reason string) (*entity.Article, error) {
	if action != entity.ActionApprove && action != entity.ActionReject {
		return nil, apperr.InvalidState("review action must be approve or reject")
	}
	if action == entity.ActionReject && reason == "" {
		return nil, apperr.InvalidState("rejection requires a reason")
	}

	article, err := uc.GetArticle(articleID)
	if err != nil {
		return nil, err
	}

	next, ok := entity.Transition(article.Status, action)
	if !ok {
		return nil, apperr.InvalidState("cannot %s an article in status %s", action, article.Status)
	}

	now := time.Now()
	fields := map[string]interface{}{
		"status":     string(next),
		"updated_at": now,
	}
	if next == entity.StatusPublished {
		fields["published_at"] = now
		fields["rejection_reason"] = ""
	} else {
		fields["rejection_reason"] = reason
	}
	if err := uc.articleRepo.UpdateFields(article.ID, fields); err != nil {
		return nil, err
	}

	article.Status = next
	article.UpdatedAt = now
	if next == entity.StatusPublished {
		article.PublishedAt = &now
		article.RejectionReason = ""
		if err := uc.subjectRepo.AddArticleCount(article.SubjectID, 1); err != nil {
			uc.logger.Error("Failed to bump article_count for subject %s: %v", article.SubjectID, err)
		}
	} else {
		article.RejectionReason = reason
	}

	uc.notifyAuthor(article, action, reason)
	uc.audit(adminID, string(action), "article", article.ID, reason)
	uc.logger.Info("Admin %s %sd article %s", adminID, action, article.ID)
	return article, nil
}

func (uc *adminUseCase) notifyAuthor(article *entity.Article, action entity.ArticleAction, reason string) {
	author, err := uc.userRepo.GetByID(article.UserID)
	if err != nil || author == nil {
		uc.logger.Error("Failed to load author %s for article %s notification", article.UserID, article.ID)
		return
	}
	if action == entity.ActionApprove {
		uc.mailer.SendArticlePublished(author.Email, author.Name, article.Title)
	} else {
		uc.mailer.SendArticleRejected(author.Email, author.Name, article.Title, reason)
	}
}

func (uc *adminUseCase) ClearFlag(adminID, articleID string) (*entity.Article, error) {
	article, err := uc.GetArticle(articleID)
	if err != nil {
		return nil, err
	}
	if !article.IsFlagged {
		return article, nil
	}

	err = uc.articleRepo.UpdateFields(article.ID, map[string]interface{}{
		"is_flagged":  false,
		"flag_reason": "",
	})
	if err != nil {
		return nil, err
	}

	article.IsFlagged = false
	article.FlagReason = ""
	uc.audit(adminID, "clear_flag", "article", article.ID, "")
	return article, nil
}

func (uc *adminUseCase) ListReports(status string, limit, offset int) ([]*entity.Report, error) {
	var s entity.ReportStatus
	if status != "" {
		s = entity.ReportStatus(status)
		switch s {
		case entity.ReportPending, entity.ReportResolved, entity.ReportDismissed:
		default:
			return nil, apperr.InvalidState("unknown report status %q", status)
		}
	}
	return uc.reportRepo.List(s, limit, offset)
}

func (uc *adminUseCase) ResolveReport(adminID, reportID string, status entity.ReportStatus, note string) (*entity.Report, error) {
	if status != entity.ReportResolved && status != entity.ReportDismissed {
		return nil, apperr.InvalidState("report can only be resolved or dismissed")
	}

	report, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, apperr.NotFound("report not found")
	}
	if report.Status != entity.ReportPending {
		return nil, apperr.InvalidState("report has already been reviewed")
	}

	now := time.Now()
	err = uc.reportRepo.UpdateFields(report.ID, map[string]interface{}{
		"status":          string(status),
		"reviewed_by":     adminID,
		"resolution_note": note,
		"updated_at":      now,
	})
	if err != nil {
		return nil, err
	}

	report.Status = status
	report.ReviewedBy = adminID
	report.ResolutionNote = note
	report.UpdatedAt = now

	uc.audit(adminID, "report_"+string(status), "report", report.ID, note)
	return report, nil
}

func (uc *adminUseCase) CreateEducator(adminID string, input CreateEducatorInput) (*EducatorAccount, error) {
	existing, err := uc.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("user with this email already exists")
	}

	for _, subjectID := range input.SubjectIDs {
		subject, err := uc.subjectRepo.GetByID(subjectID)
		if err != nil {
			return nil, err
		}
		if subject == nil {
			return nil, apperr.NotFound("subject %s not found", subjectID)
		}
	}

	password := generatePassword(educatorPasswordLength)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to create educator account")
	}

	user := &entity.User{
		ID:       uuid.New().String(),
		Email:    input.Email,
		Name:     input.Name,
		Password: string(hashedPassword),
		Role:     entity.RoleEducator,
		IsActive: true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	profile := &entity.EducatorProfile{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Bio:          input.Bio,
		ProfilePhoto: input.ProfilePhoto,
		SubjectIDs:   input.SubjectIDs,
		IsApproved:   true,
	}
	if err := uc.educatorRepo.Create(profile); err != nil {
		return nil, err
	}

	uc.mailer.SendEducatorCredentials(user.Email, user.Name, password)
	uc.audit(adminID, "create_educator", "educator", profile.ID, user.Email)
	uc.logger.Info("Admin %s created educator %s (%s)", adminID, profile.ID, user.Email)

	user.Password = ""
	return &EducatorAccount{User: user, Profile: profile, InitialPassword: password}, nil
}

func (uc *adminUseCase) UpdateEducator(adminID, educatorID string, input UpdateEducatorInput) (*entity.EducatorProfile, error) {
	profile, err := uc.educatorRepo.GetByIDOrUserID(educatorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("educator not found")
	}

	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.ProfilePhoto != nil {
		profile.ProfilePhoto = *input.ProfilePhoto
	}
	if input.SubjectIDs != nil {
		for _, subjectID := range input.SubjectIDs {
			subject, err := uc.subjectRepo.GetByID(subjectID)
			if err != nil {
				return nil, err
			}
			if subject == nil {
				return nil, apperr.NotFound("subject %s not found", subjectID)
			}
		}
		profile.SubjectIDs = input.SubjectIDs
	}
	if input.IsApproved != nil {
		profile.IsApproved = *input.IsApproved
	}
	profile.UpdatedAt = time.Now()

	if err := uc.educatorRepo.Update(profile); err != nil {
		return nil, err
	}

	uc.audit(adminID, "update_educator", "educator", profile.ID, "")
	return profile, nil
}

// DeactivateEducator disables the login and withdraws authoring rights.
// Published articles stay up.
func (uc *adminUseCase) DeactivateEducator(adminID, educatorID string) error {
	profile, err := uc.educatorRepo.GetByIDOrUserID(educatorID)
	if err != nil {
		return err
	}
	if profile == nil {
		return apperr.NotFound("educator not found")
	}

	if err := uc.userRepo.Deactivate(profile.UserID); err != nil {
		return err
	}

	profile.IsApproved = false
	profile.UpdatedAt = time.Now()
	if err := uc.educatorRepo.Update(profile); err != nil {
		return err
	}

	uc.audit(adminID, "deactivate_educator", "educator", profile.ID, "")
	uc.logger.Info("Admin %s deactivated educator %s", adminID, profile.ID)
	return nil
}

func (uc *adminUseCase) ListEducators(approved *bool, limit, offset int) ([]*entity.EducatorProfile, error) {
	return uc.educatorRepo.List(approved, limit, offset)
}

func (uc *adminUseCase) CreateSubject(adminID string, input CreateSubjectInput) (*entity.Subject, error) {
	slug := makeSlug(input.Name)
	existing, err := uc.subjectRepo.GetByIDOrSlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("subject with this name already exists")
	}

	subject := &entity.Subject{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		IsActive:    true,
	}
	if err := uc.subjectRepo.Create(subject); err != nil {
		return nil, err
	}

	uc.audit(adminID, "create_subject", "subject", subject.ID, subject.Name)
	return subject, nil
}

func (uc *adminUseCase) UpdateSubject(adminID, subjectID string, input UpdateSubjectInput) (*entity.Subject, error) {
	subject, err := uc.subjectRepo.GetByIDOrSlug(subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperr.NotFound("subject not found")
	}

	// The slug stays put even when the name changes, links keep working.
	if input.Name != nil {
		subject.Name = *input.Name
	}
	if input.Description != nil {
		subject.Description = *input.Description
	}
	if input.Icon != nil {
		subject.Icon = *input.Icon
	}
	if input.Color != nil {
		subject.Color = *input.Color
	}
	if input.IsActive != nil {
		subject.IsActive = *input.IsActive
	}

	if err := uc.subjectRepo.Update(subject); err != nil {
		return nil, err
	}

	uc.audit(adminID, "update_subject", "subject", subject.ID, "")
	return subject, nil
}

func (uc *adminUseCase) GetPlatformStats() (*PlatformStats, error) {
	ctx := context.Background()

	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(ctx, platformStatsKey).Result()
		if err == nil {
			var stats PlatformStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats := &PlatformStats{}
	var err error
	if stats.ApprovedEducators, err = uc.educatorRepo.CountApproved(); err != nil {
		return nil, err
	}
	if stats.UnapprovedEducators, err = uc.educatorRepo.CountUnapproved(); err != nil {
		return nil, err
	}
	if stats.PublishedArticles, err = uc.articleRepo.CountByStatus(entity.StatusPublished); err != nil {
		return nil, err
	}
	if stats.PendingArticles, err = uc.articleRepo.CountByStatus(entity.StatusPending); err != nil {
		return nil, err
	}
	if stats.FlaggedArticles, err = uc.articleRepo.CountFlagged(); err != nil {
		return nil, err
	}
	if stats.TotalViews, err = uc.articleRepo.SumPublishedViews(); err != nil {
		return nil, err
	}
	if stats.PendingReports, err = uc.reportRepo.CountByStatus(entity.ReportPending); err != nil {
		return nil, err
	}

	if uc.redisClient != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := uc.redisClient.Set(ctx, platformStatsKey, payload, platformStatsTTL).Err(); err != nil {
				uc.logger.Warn("Failed to cache platform stats: %v", err)
			}
		}
	}

	return stats, nil
}

// ReconcileEducatorStats recomputes the educator aggregates from the
// per-article counters and overwrites the stored totals with them.
func (uc *adminUseCase) ReconcileEducatorStats(adminID, educatorID string) (*persistent.CounterAggregates, error) {
	profile, err := uc.educatorRepo.GetByIDOrUserID(educatorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("educator not found")
	}

	agg, err := uc.articleRepo.AggregateByEducator(profile.ID)
	if err != nil {
		return nil, err
	}
	if err := uc.educatorRepo.SetTotals(profile.ID, agg); err != nil {
		return nil, err
	}

	uc.audit(adminID, "reconcile_stats", "educator", profile.ID,
		fmt.Sprintf("articles=%d views=%d likes=%d bookmarks=%d", agg.Articles, agg.Views, agg.Likes, agg.Bookmarks))
	return agg, nil
}

// ReconcileSubjectCount recounts a subject's published articles.
func (uc *adminUseCase) ReconcileSubjectCount(adminID, subjectID string) (int64, error) {
	subject, err := uc.subjectRepo.GetByIDOrSlug(subjectID)
	if err != nil {
		return 0, err
	}
	if subject == nil {
		return 0, apperr.NotFound("subject not found")
	}

	count, err := uc.articleRepo.CountPublishedBySubject(subject.ID)
	if err != nil {
		return 0, err
	}
	if err := uc.subjectRepo.SetArticleCount(subject.ID, count); err != nil {
		return 0, err
	}

	uc.audit(adminID, "reconcile_count", "subject", subject.ID, fmt.Sprintf("article_count=%d", count))
	return count, nil
}

func (uc *adminUseCase) AuditLog(limit, offset int) ([]*entity.ModerationLog, error) {
	return uc.auditRepo.List(limit, offset)
}
