package implementation

import (
	"context"

	"text-annotation-be/internal/model"
	"text-annotation-be/internal/repository/contract"
	"text-annotation-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EventLogRepositoryImpl struct {
	db *gorm.DB
}

func NewEventLogRepository(db *gorm.DB) contract.EventLogRepository {
	return &EventLogRepositoryImpl{db: db}
}

func (r *EventLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EventLogRepositoryImpl) Create(ctx context.Context, log *model.EventLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *EventLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.EventLog, error) {
	var logs []*model.EventLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *EventLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.EventLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
