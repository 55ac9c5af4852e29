package persistent

import (
	"errors"

	"edupress/internal/entity"
	"edupress/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleFilter narrows List queries. Zero values mean "no filter".
type ArticleFilter struct {
	Status     entity.ArticleStatus
	SubjectID  string
	EducatorID string
	UserID     string
	Flagged    *bool
	Search     string
	Sort       string // recent | trending | views | likes | created
	Limit      int
	Offset     int
}

// CounterAggregates are the authoritative sums over an educator's articles,
// used to reconcile the denormalized profile aggregates.
type CounterAggregates struct {
	Articles  int64
	Views     int64
	Likes     int64
	Bookmarks int64
}

// ArticleRepository, like all repositories in this package, returns
// (nil, nil) from Get methods when no row matches.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	GetByIDOrSlug(idOrSlug string) (*entity.Article, error)
	SlugExists(slug string) (bool, error)
	List(filter ArticleFilter) ([]*entity.Article, error)
	Related(articleID, subjectID string, tags []string, limit int) ([]*entity.Article, error)
	Update(article *entity.Article) error
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
	AddViewCount(id string, delta int) error
	AddLikeCount(id string, delta int) error
	AddBookmarkCount(id string, delta int) error
	CountByEducatorAndStatus(educatorID string, status entity.ArticleStatus) (int64, error)
	CountByStatus(status entity.ArticleStatus) (int64, error)
	CountFlagged() (int64, error)
	SumPublishedViews() (int64, error)
	CountPublishedBySubject(subjectID string) (int64, error)
	AggregateByEducator(educatorID string) (*CounterAggregates, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *entity.Article) error {
	articleModel := ToArticleModel(article)
	if err := r.db.Create(articleModel).Error; err != nil {
		return err
	}
	*article = *ToArticleEntity(articleModel)
	return nil
}

func (r *articleRepository) GetByID(id string) (*entity.Article, error) {
	var articleModel model.ArticleModel
	if err := r.db.Where("id = ?", id).First(&articleModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToArticleEntity(&articleModel), nil
}

func (r *articleRepository) GetByIDOrSlug(idOrSlug string) (*entity.Article, error) {
	var articleModel model.ArticleModel
	if err := r.db.Where(idOrSlugColumn(idOrSlug)+" = ?", idOrSlug).First(&articleModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToArticleEntity(&articleModel), nil
}

func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ArticleModel{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) List(filter ArticleFilter) ([]*entity.Article, error) {
	query := r.db.Model(&model.ArticleModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.SubjectID != "" {
		query = query.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.EducatorID != "" {
		query = query.Where("educator_id = ?", filter.EducatorID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Flagged != nil {
		query = query.Where("is_flagged = ?", *filter.Flagged)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ? OR tags ILIKE ?", pattern, pattern, pattern)
	}

	switch filter.Sort {
	case "trending":
		query = query.Order("view_count DESC").Order("published_at DESC")
	case "views":
		query = query.Order("view_count DESC")
	case "likes":
		query = query.Order("like_count DESC")
	case "created":
		query = query.Order("created_at DESC")
	default: // recent
		query = query.Order("published_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var articleModels []model.ArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, err
	}

	articles := make([]*entity.Article, len(articleModels))
	for i := range articleModels {
		articles[i] = ToArticleEntity(&articleModels[i])
	}
	return articles, nil
}

func (r *articleRepository) Related(articleID, subjectID string, tags []string, limit int) ([]*entity.Article, error) {
	query := r.db.Model(&model.ArticleModel{}).
		Where("status = ?", string(entity.StatusPublished)).
		Where("id <> ?", articleID)

	// Same subject, or at least one shared tag. Tags are stored as a JSON
	// array in a text column, so tag overlap is a substring match on the
	// quoted tag.
	cond := r.db.Where("subject_id = ?", subjectID)
	for _, tag := range tags {
		cond = cond.Or("tags LIKE ?", `%"`+tag+`"%`)
	}
	query = query.Where(cond).Order("like_count DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var articleModels []model.ArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, err
	}

	articles := make([]*entity.Article, len(articleModels))
	for i := range articleModels {
		articles[i] = ToArticleEntity(&articleModels[i])
	}
	return articles, nil
}

func (r *articleRepository) Update(article *entity.Article) error {
	return r.db.Save(ToArticleModel(article)).Error
}

func (r *articleRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.ArticleModel{}).Where("id = ?", id).Updates(fields).Error
}

func (r *articleRepository) Delete(id string) error {
	return r.db.Delete(&model.ArticleModel{}, "id = ?", id).Error
}

// Counter updates are issued as atomic single-field increments at the store
// to avoid read-modify-write races on the counter itself.
func (r *articleRepository) addCounter(id, column string, delta int) error {
	return r.db.Model(&model.ArticleModel{}).Where("id = ?", id).
		UpdateColumn(column, clause.Expr{SQL: column + " + ?", Vars: []interface{}{delta}}).Error
}

func (r *articleRepository) AddViewCount(id string, delta int) error {
	return r.addCounter(id, "view_count", delta)
}

func (r *articleRepository) AddLikeCount(id string, delta int) error {
	return r.addCounter(id, "like_count", delta)
}

func (r *articleRepository) AddBookmarkCount(id string, delta int) error {
	return r.addCounter(id, "bookmark_count", delta)
}

func (r *articleRepository) CountByEducatorAndStatus(educatorID string, status entity.ArticleStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.ArticleModel{}).
		Where("educator_id = ? AND status = ?", educatorID, string(status)).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByStatus(status entity.ArticleStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.ArticleModel{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountFlagged() (int64, error) {
	var count int64
	err := r.db.Model(&model.ArticleModel{}).Where("is_flagged = ?", true).Count(&count).Error
	return count, err
}

func (r *articleRepository) SumPublishedViews() (int64, error) {
	var total int64
	err := r.db.Model(&model.ArticleModel{}).
		Where("status = ?", string(entity.StatusPublished)).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *articleRepository) CountPublishedBySubject(subjectID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ArticleModel{}).
		Where("subject_id = ? AND status = ?", subjectID, string(entity.StatusPublished)).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) AggregateByEducator(educatorID string) (*CounterAggregates, error) {
	var agg CounterAggregates
	err := r.db.Model(&model.ArticleModel{}).
		Where("educator_id = ?", educatorID).
		Select("COUNT(*) AS articles, COALESCE(SUM(view_count), 0) AS views, COALESCE(SUM(like_count), 0) AS likes, COALESCE(SUM(bookmark_count), 0) AS bookmarks").
		Scan(&agg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CounterAggregates{}, nil
		}
		return nil, err
	}
	return &agg, nil
}
