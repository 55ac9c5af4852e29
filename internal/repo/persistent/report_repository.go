package persistent

import (
	"errors"

	"edupress/internal/entity"
	"edupress/internal/model"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id string) (*entity.Report, error)
	Exists(reporterID, articleID string) (bool, error)
	List(status entity.ReportStatus, limit, offset int) ([]*entity.Report, error)
	UpdateFields(id string, fields map[string]interface{}) error
	CountByStatus(status entity.ReportStatus) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *entity.Report) error {
	reportModel := ToReportModel(report)
	if err := r.db.Create(reportModel).Error; err != nil {
		return err
	}
	*report = *ToReportEntity(reportModel)
	return nil
}

func (r *reportRepository) GetByID(id string) (*entity.Report, error) {
	var reportModel model.ReportModel
	if err := r.db.Where("id = ?", id).First(&reportModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToReportEntity(&reportModel), nil
}

func (r *reportRepository) Exists(reporterID, articleID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ReportModel{}).
		Where("reporter_id = ? AND article_id = ?", reporterID, articleID).
		Count(&count).Error
	return count > 0, err
}

func (r *reportRepository) List(status entity.ReportStatus, limit, offset int) ([]*entity.Report, error) {
	query := r.db.Model(&model.ReportModel{}).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var reportModels []model.ReportModel
	if err := query.Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]*entity.Report, len(reportModels))
	for i := range reportModels {
		reports[i] = ToReportEntity(&reportModels[i])
	}
	return reports, nil
}

func (r *reportRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.ReportModel{}).Where("id = ?", id).Updates(fields).Error
}

func (r *reportRepository) CountByStatus(status entity.ReportStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.ReportModel{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}
