package usecase

import (
	"errors"

	"edupress/internal/entity"
	"edupress/internal/repo/persistent"
	"edupress/pkg/apperr"
	"edupress/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InteractionUseCase interface {
	ToggleLike(userID, articleID string) (bool, int64, error)
	ToggleBookmark(userID, articleID string) (bool, int64, error)
	LikedArticles(userID string, limit, offset int) ([]*entity.Article, error)
	BookmarkedArticles(userID string, limit, offset int) ([]*entity.Article, error)
	ViewHistory(userID string, limit, offset int) ([]*entity.Article, error)
	ReportArticle(userID, articleID string, reason entity.ReportReason, description string) (*entity.Report, error)
}

type interactionUseCase struct {
	articleRepo     persistent.ArticleRepository
	educatorRepo    persistent.EducatorRepository
	interactionRepo persistent.InteractionRepository
	reportRepo      persistent.ReportRepository
	logger          *logger.Logger
}

func NewInteractionUseCase(
	articleRepo persistent.ArticleRepository,
	educatorRepo persistent.EducatorRepository,
	interactionRepo persistent.InteractionRepository,
	reportRepo persistent.ReportRepository,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		articleRepo:     articleRepo,
		educatorRepo:    educatorRepo,
		interactionRepo: interactionRepo,
		reportRepo:      reportRepo,
		logger:          logger,
	}
}

func (uc *interactionUseCase) publishedArticle(articleID string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil || article.Status != entity.StatusPublished {
		return nil, apperr.NotFound("article not found")
	}
	return article, nil
}

// toggle flips a relation row and keeps the article counter and the
// educator aggregate in step with it. The unique index on the relation is
// the arbiter under concurrency: whichever insert loses the race sees a
// duplicate-key error and skips the counter updates, so one relation row
// never counts twice.
func (uc *interactionUseCase) toggle(
	article *entity.Article,
	active bool,
	create func() error,
	remove func() error,
	addArticle func(delta int) error,
	addEducator func(delta int) error,
	current int64,
) (bool, int64, error) {
	if active {
		if err := remove(); err != nil {
			return false, current, err
		}
		if err := addArticle(-1); err != nil {
			uc.logger.Error("Failed to decrement counter for article %s: %v", article.ID, err)
			return false, current, nil
		}
		if err := addEducator(-1); err != nil {
			uc.logger.Error("Failed to decrement aggregate for educator %s: %v", article.EducatorID, err)
		}
		return false, current - 1, nil
	}

	if err := create(); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, current, nil
		}
		return false, current, err
	}
	if err := addArticle(1); err != nil {
		uc.logger.Error("Failed to increment counter for article %s: %v", article.ID, err)
		return true, current, nil
	}
	if err := addEducator(1); err != nil {
		uc.logger.Error("Failed to increment aggregate for educator %s: %v", article.EducatorID, err)
	}
	return true, current + 1, nil
}

func (uc *interactionUseCase) ToggleLike(userID, articleID string) (bool, int64, error) {
	article, err := uc.publishedArticle(articleID)
	if err != nil {
		return false, 0, err
	}

	liked, err := uc.interactionRepo.IsLiked(userID, article.ID)
	if err != nil {
		return false, 0, err
	}

	return uc.toggle(article, liked,
		func() error { return uc.interactionRepo.CreateLike(userID, article.ID) },
		func() error { return uc.interactionRepo.DeleteLike(userID, article.ID) },
		func(delta int) error { return uc.articleRepo.AddLikeCount(article.ID, delta) },
		func(delta int) error { return uc.educatorRepo.AddTotalLikes(article.EducatorID, delta) },
		article.LikeCount,
	)
}

func (uc *interactionUseCase) ToggleBookmark(userID, articleID string) (bool, int64, error) {
	article, err := uc.publishedArticle(articleID)
	if err != nil {
		return false, 0, err
	}

	bookmarked, err := uc.interactionRepo.IsBookmarked(userID, article.ID)
	if err != nil {
		return false, 0, err
	}

	return uc.toggle(article, bookmarked,
		func() error { return uc.interactionRepo.CreateBookmark(userID, article.ID) },
		func() error { return uc.interactionRepo.DeleteBookmark(userID, article.ID) },
		func(delta int) error { return uc.articleRepo.AddBookmarkCount(article.ID, delta) },
		func(delta int) error { return uc.educatorRepo.AddTotalBookmarks(article.EducatorID, delta) },
		article.BookmarkCount,
	)
}

// articlesByIDs resolves ids preserving their order, dropping any that have
// since been deleted or unpublished.
func (uc *interactionUseCase) articlesByIDs(ids []string) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, len(ids))
	for _, id := range ids {
		article, err := uc.articleRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if article == nil || article.Status != entity.StatusPublished {
			continue
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (uc *interactionUseCase) LikedArticles(userID string, limit, offset int) ([]*entity.Article, error) {
	ids, err := uc.interactionRepo.LikedArticleIDs(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.articlesByIDs(ids)
}

func (uc *interactionUseCase) BookmarkedArticles(userID string, limit, offset int) ([]*entity.Article, error) {
	ids, err := uc.interactionRepo.BookmarkedArticleIDs(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.articlesByIDs(ids)
}

func (uc *interactionUseCase) ViewHistory(userID string, limit, offset int) ([]*entity.Article, error) {
	ids, err := uc.interactionRepo.ViewedArticleIDs(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.articlesByIDs(ids)
}

func (uc *interactionUseCase) ReportArticle(userID, articleID string, reason entity.ReportReason, description string) (*entity.Report, error) {
	if !reason.Valid() {
		return nil, apperr.InvalidState("unknown report reason %q", reason)
	}

	article, err := uc.publishedArticle(articleID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.reportRepo.Exists(userID, article.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("article already reported by this user")
	}

	report := &entity.Report{
		ID:          uuid.New().String(),
		ReporterID:  userID,
		ArticleID:   article.ID,
		Reason:      reason,
		Description: description,
		Status:      entity.ReportPending,
	}
	if err := uc.reportRepo.Create(report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("article already reported by this user")
		}
		return nil, err
	}

	uc.logger.Info("User %s reported article %s (%s)", userID, article.ID, reason)
	return report, nil
}
