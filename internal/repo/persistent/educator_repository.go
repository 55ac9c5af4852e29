package persistent

import (
	"errors"

	"edupress/internal/entity"
	"edupress/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EducatorRepository interface {
	Create(profile *entity.EducatorProfile) error
	GetByID(id string) (*entity.EducatorProfile, error)
	GetByIDOrUserID(id string) (*entity.EducatorProfile, error)
	GetByUserID(userID string) (*entity.EducatorProfile, error)
	List(approved *bool, limit, offset int) ([]*entity.EducatorProfile, error)
	Update(profile *entity.EducatorProfile) error
	Delete(id string) error
	AddTotalArticles(id string, delta int) error
	AddTotalViews(id string, delta int) error
	AddTotalLikes(id string, delta int) error
	AddTotalBookmarks(id string, delta int) error
	SetTotals(id string, agg *CounterAggregates) error
	CountApproved() (int64, error)
	CountUnapproved() (int64, error)
}

type educatorRepository struct {
	db *gorm.DB
}

func NewEducatorRepository(db *gorm.DB) EducatorRepository {
	return &educatorRepository{db: db}
}

func (r *educatorRepository) Create(profile *entity.EducatorProfile) error {
	profileModel := ToEducatorProfileModel(profile)
	if err := r.db.Create(profileModel).Error; err != nil {
		return err
	}
	*profile = *ToEducatorProfileEntity(profileModel)
	return nil
}

func (r *educatorRepository) GetByID(id string) (*entity.EducatorProfile, error) {
	var profileModel model.EducatorProfileModel
	if err := r.db.Where("id = ?", id).First(&profileModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToEducatorProfileEntity(&profileModel), nil
}

func (r *educatorRepository) GetByIDOrUserID(id string) (*entity.EducatorProfile, error) {
	var profileModel model.EducatorProfileModel
	if err := r.db.Where("id = ? OR user_id = ?", id, id).First(&profileModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToEducatorProfileEntity(&profileModel), nil
}

func (r *educatorRepository) GetByUserID(userID string) (*entity.EducatorProfile, error) {
	var profileModel model.EducatorProfileModel
	if err := r.db.Where("user_id = ?", userID).First(&profileModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToEducatorProfileEntity(&profileModel), nil
}

func (r *educatorRepository) List(approved *bool, limit, offset int) ([]*entity.EducatorProfile, error) {
	query := r.db.Model(&model.EducatorProfileModel{}).Order("created_at ASC")
	if approved != nil {
		query = query.Where("is_approved = ?", *approved)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var profileModels []model.EducatorProfileModel
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entity.EducatorProfile, len(profileModels))
	for i := range profileModels {
		profiles[i] = ToEducatorProfileEntity(&profileModels[i])
	}
	return profiles, nil
}

func (r *educatorRepository) Update(profile *entity.EducatorProfile) error {
	return r.db.Save(ToEducatorProfileModel(profile)).Error
}

func (r *educatorRepository) Delete(id string) error {
	return r.db.Delete(&model.EducatorProfileModel{}, "id = ?", id).Error
}

func (r *educatorRepository) addCounter(id, column string, delta int) error {
	return r.db.Model(&model.EducatorProfileModel{}).Where("id = ?", id).
		UpdateColumn(column, clause.Expr{SQL: column + " + ?", Vars: []interface{}{delta}}).Error
}

func (r *educatorRepository) AddTotalArticles(id string, delta int) error {
	return r.addCounter(id, "total_articles", delta)
}

func (r *educatorRepository) AddTotalViews(id string, delta int) error {
	return r.addCounter(id, "total_views", delta)
}

func (r *educatorRepository) AddTotalLikes(id string, delta int) error {
	return r.addCounter(id, "total_likes", delta)
}

func (r *educatorRepository) AddTotalBookmarks(id string, delta int) error {
	return r.addCounter(id, "total_bookmarks", delta)
}

// SetTotals overwrites the denormalized aggregates with authoritative sums,
// healing any drift accumulated by partial counter updates.
func (r *educatorRepository) SetTotals(id string, agg *CounterAggregates) error {
	return r.db.Model(&model.EducatorProfileModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"total_articles":  agg.Articles,
			"total_views":     agg.Views,
			"total_likes":     agg.Likes,
			"total_bookmarks": agg.Bookmarks,
		}).Error
}

func (r *educatorRepository) CountApproved() (int64, error) {
	var count int64
	err := r.db.Model(&model.EducatorProfileModel{}).Where("is_approved = ?", true).Count(&count).Error
	return count, err
}

func (r *educatorRepository) CountUnapproved() (int64, error) {
	var count int64
	err := r.db.Model(&model.EducatorProfileModel{}).Where("is_approved = ?", false).Count(&count).Error
	return count, err
}
