package persistent

import (
	"edupress/internal/entity"
	"edupress/internal/model"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	IsLiked(userID, articleID string) (bool, error)
	CreateLike(userID, articleID string) error
	DeleteLike(userID, articleID string) error
	IsBookmarked(userID, articleID string) (bool, error)
	CreateBookmark(userID, articleID string) error
	DeleteBookmark(userID, articleID string) error
	CreateView(view *entity.View) error
	LikedArticleIDs(userID string, limit, offset int) ([]string, error)
	BookmarkedArticleIDs(userID string, limit, offset int) ([]string, error)
	ViewedArticleIDs(userID string, limit, offset int) ([]string, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) IsLiked(userID, articleID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

// CreateLike relies on the unique (user_id, article_id) index: a concurrent
// duplicate insert surfaces as gorm.ErrDuplicatedKey and exactly one row
// persists.
func (r *interactionRepository) CreateLike(userID, articleID string) error {
	return r.db.Create(&model.LikeModel{UserID: userID, ArticleID: articleID}).Error
}

func (r *interactionRepository) DeleteLike(userID, articleID string) error {
	return r.db.Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.LikeModel{}).Error
}

func (r *interactionRepository) IsBookmarked(userID, articleID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.BookmarkModel{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

func (r *interactionRepository) CreateBookmark(userID, articleID string) error {
	return r.db.Create(&model.BookmarkModel{UserID: userID, ArticleID: articleID}).Error
}

func (r *interactionRepository) DeleteBookmark(userID, articleID string) error {
	return r.db.Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.BookmarkModel{}).Error
}

func (r *interactionRepository) CreateView(view *entity.View) error {
	viewModel := ToViewModel(view)
	if err := r.db.Create(viewModel).Error; err != nil {
		return err
	}
	view.ID = viewModel.ID
	view.CreatedAt = viewModel.CreatedAt
	return nil
}

func (r *interactionRepository) LikedArticleIDs(userID string, limit, offset int) ([]string, error) {
	return r.articleIDsFrom(&model.LikeModel{}, userID, limit, offset)
}

func (r *interactionRepository) BookmarkedArticleIDs(userID string, limit, offset int) ([]string, error) {
	return r.articleIDsFrom(&model.BookmarkModel{}, userID, limit, offset)
}

func (r *interactionRepository) articleIDsFrom(table interface{}, userID string, limit, offset int) ([]string, error) {
	query := r.db.Model(table).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Select("article_id")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ids []string
	if err := query.Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ViewedArticleIDs returns distinct articles, most recently viewed first.
func (r *interactionRepository) ViewedArticleIDs(userID string, limit, offset int) ([]string, error) {
	query := r.db.Model(&model.ViewModel{}).
		Where("user_id = ?", userID).
		Group("article_id").
		Order("MAX(created_at) DESC").
		Select("article_id")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ids []string
	if err := query.Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
