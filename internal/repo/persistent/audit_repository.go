package persistent

import (
	"edupress/internal/entity"
	"edupress/internal/model"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(log *entity.ModerationLog) error
	List(limit, offset int) ([]*entity.ModerationLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(log *entity.ModerationLog) error {
	logModel := ToModerationLogModel(log)
	if err := r.db.Create(logModel).Error; err != nil {
		return err
	}
	*log = *ToModerationLogEntity(logModel)
	return nil
}

func (r *auditRepository) List(limit, offset int) ([]*entity.ModerationLog, error) {
	query := r.db.Model(&model.ModerationLogModel{}).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var logModels []model.ModerationLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]*entity.ModerationLog, len(logModels))
	for i := range logModels {
		logs[i] = ToModerationLogEntity(&logModels[i])
	}
	return logs, nil
}
