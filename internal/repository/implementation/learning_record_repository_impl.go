package implementation

import (
	"context"

	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/mapper"
	"text-annotation-be/internal/model"
	"text-annotation-be/internal/repository/contract"
	"text-annotation-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearningRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningRecordMapper
}

func NewLearningRecordRepository(db *gorm.DB) contract.LearningRecordRepository {
	return &LearningRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningRecordMapper(),
	}
}

func (r *LearningRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LearningRecordRepositoryImpl) Create(ctx context.Context, record *entity.LearningRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *LearningRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningRecord, error) {
	var models []*model.LearningRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LearningRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LearningRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LearningRecordRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LearningRecord{}, id).Error
}
