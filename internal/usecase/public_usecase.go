package usecase

import (
	"edupress/internal/entity"
	"edupress/internal/repo/persistent"
	"edupress/pkg/apperr"
	"edupress/pkg/logger"

	"github.com/google/uuid"
)

// ArticleView is the public detail payload: the article plus the viewer's
// own toggle state.
type ArticleView struct {
	Article      *entity.Article `json:"article"`
	IsLiked      bool            `json:"is_liked"`
	IsBookmarked bool            `json:"is_bookmarked"`
}

type ListPublishedInput struct {
	SubjectID  string
	EducatorID string
	Search     string
	Sort       string
	Limit      int
	Offset     int
}

type PublicUseCase interface {
	ListPublished(input ListPublishedInput) ([]*entity.Article, error)
	GetPublished(idOrSlug, viewerID string) (*ArticleView, error)
	RelatedArticles(idOrSlug string, limit int) ([]*entity.Article, error)
	GetEducator(educatorID string) (*entity.EducatorProfile, []*entity.Article, error)
}

type publicUseCase struct {
	articleRepo     persistent.ArticleRepository
	educatorRepo    persistent.EducatorRepository
	subjectRepo     persistent.SubjectRepository
	interactionRepo persistent.InteractionRepository
	logger          *logger.Logger
}

func NewPublicUseCase(
	articleRepo persistent.ArticleRepository,
	educatorRepo persistent.EducatorRepository,
	subjectRepo persistent.SubjectRepository,
	interactionRepo persistent.InteractionRepository,
	logger *logger.Logger,
) PublicUseCase {
	return &publicUseCase{
		articleRepo:     articleRepo,
		educatorRepo:    educatorRepo,
		subjectRepo:     subjectRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

func (uc *publicUseCase) ListPublished(input ListPublishedInput) ([]*entity.Article, error) {
	subjectID := input.SubjectID
	if subjectID != "" {
		subject, err := uc.subjectRepo.GetByIDOrSlug(subjectID)
		if err != nil {
			return nil, err
		}
		if subject == nil {
			return nil, apperr.NotFound("subject not found")
		}
		subjectID = subject.ID
	}

	return uc.articleRepo.List(persistent.ArticleFilter{
		Status:     entity.StatusPublished,
		SubjectID:  subjectID,
		EducatorID: input.EducatorID,
		Search:     input.Search,
		Sort:       input.Sort,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
}

// publishedByIDOrSlug resolves an article and hides anything that is not
// published behind a not-found.
func (uc *publicUseCase) publishedByIDOrSlug(idOrSlug string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByIDOrSlug(idOrSlug)
	if err != nil {
		return nil, err
	}
	if article == nil || article.Status != entity.StatusPublished {
		return nil, apperr.NotFound("article not found")
	}
	return article, nil
}

func (uc *publicUseCase) GetPublished(idOrSlug, viewerID string) (*ArticleView, error) {
	article, err := uc.publishedByIDOrSlug(idOrSlug)
	if err != nil {
		return nil, err
	}

	// Every read is a view: the event row lands first, then the article
	// counter, then the educator aggregate. Counter failures are logged,
	// not surfaced; the read itself already succeeded.
	view := &entity.View{
		ID:        uuid.New().String(),
		UserID:    viewerID,
		ArticleID: article.ID,
	}
	if err := uc.interactionRepo.CreateView(view); err != nil {
		uc.logger.Error("Failed to record view for article %s: %v", article.ID, err)
	} else {
		if err := uc.articleRepo.AddViewCount(article.ID, 1); err != nil {
			uc.logger.Error("Failed to bump view_count for article %s: %v", article.ID, err)
		} else {
			article.ViewCount++
		}
		if err := uc.educatorRepo.AddTotalViews(article.EducatorID, 1); err != nil {
			uc.logger.Error("Failed to bump total_views for educator %s: %v", article.EducatorID, err)
		}
	}

	result := &ArticleView{Article: article}
	if viewerID != "" {
		result.IsLiked, _ = uc.interactionRepo.IsLiked(viewerID, article.ID)
		result.IsBookmarked, _ = uc.interactionRepo.IsBookmarked(viewerID, article.ID)
	}
	return result, nil
}

func (uc *publicUseCase) RelatedArticles(idOrSlug string, limit int) ([]*entity.Article, error) {
	article, err := uc.publishedByIDOrSlug(idOrSlug)
	if err != nil {
		return nil, err
	}
	return uc.articleRepo.Related(article.ID, article.SubjectID, article.Tags, limit)
}

func (uc *publicUseCase) GetEducator(educatorID string) (*entity.EducatorProfile, []*entity.Article, error) {
	profile, err := uc.educatorRepo.GetByIDOrUserID(educatorID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil || !profile.IsApproved {
		return nil, nil, apperr.NotFound("educator not found")
	}

	articles, err := uc.articleRepo.List(persistent.ArticleFilter{
		Status:     entity.StatusPublished,
		EducatorID: profile.ID,
		Sort:       "recent",
	})
	if err != nil {
		return nil, nil, err
	}
	return profile, articles, nil
}
