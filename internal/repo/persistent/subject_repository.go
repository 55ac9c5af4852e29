package persistent

import (
	"errors"

	"edupress/internal/entity"
	"edupress/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubjectRepository interface {
	Create(subject *entity.Subject) error
	GetByID(id string) (*entity.Subject, error)
	GetByIDOrSlug(idOrSlug string) (*entity.Subject, error)
	List(activeOnly bool) ([]*entity.Subject, error)
	Update(subject *entity.Subject) error
	AddArticleCount(id string, delta int) error
	SetArticleCount(id string, count int64) error
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *entity.Subject) error {
	subjectModel := ToSubjectModel(subject)
	if err := r.db.Create(subjectModel).Error; err != nil {
		return err
	}
	*subject = *ToSubjectEntity(subjectModel)
	return nil
}

func (r *subjectRepository) GetByID(id string) (*entity.Subject, error) {
	var subjectModel model.SubjectModel
	if err := r.db.Where("id = ?", id).First(&subjectModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToSubjectEntity(&subjectModel), nil
}

func (r *subjectRepository) GetByIDOrSlug(idOrSlug string) (*entity.Subject, error) {
	var subjectModel model.SubjectModel
	if err := r.db.Where(idOrSlugColumn(idOrSlug)+" = ?", idOrSlug).First(&subjectModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToSubjectEntity(&subjectModel), nil
}

func (r *subjectRepository) List(activeOnly bool) ([]*entity.Subject, error) {
	query := r.db.Model(&model.SubjectModel{}).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var subjectModels []model.SubjectModel
	if err := query.Find(&subjectModels).Error; err != nil {
		return nil, err
	}

	subjects := make([]*entity.Subject, len(subjectModels))
	for i := range subjectModels {
		subjects[i] = ToSubjectEntity(&subjectModels[i])
	}
	return subjects, nil
}

func (r *subjectRepository) Update(subject *entity.Subject) error {
	return r.db.Save(ToSubjectModel(subject)).Error
}

func (r *subjectRepository) AddArticleCount(id string, delta int) error {
	return r.db.Model(&model.SubjectModel{}).Where("id = ?", id).
		UpdateColumn("article_count", clause.Expr{SQL: "article_count + ?", Vars: []interface{}{delta}}).Error
}

func (r *subjectRepository) SetArticleCount(id string, count int64) error {
	return r.db.Model(&model.SubjectModel{}).Where("id = ?", id).
		UpdateColumn("article_count", count).Error
}
