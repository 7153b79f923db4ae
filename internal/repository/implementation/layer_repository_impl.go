package implementation

import (
	"context"
	"errors"

	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/mapper"
	"text-annotation-be/internal/model"
	"text-annotation-be/internal/repository/contract"
	"text-annotation-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LayerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchemaMapper
}

func NewLayerRepository(db *gorm.DB) contract.LayerRepository {
	return &LayerRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchemaMapper(),
	}
}

func (r *LayerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LayerRepositoryImpl) Create(ctx context.Context, layer *entity.AnnotationLayer) error {
	m := r.mapper.LayerToModel(layer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*layer = *r.mapper.LayerToEntity(m)
	return nil
}

func (r *LayerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnnotationLayer, error) {
	var m model.AnnotationLayer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LayerToEntity(&m), nil
}

func (r *LayerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnnotationLayer, error) {
	var models []*model.AnnotationLayer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.LayersToEntities(models), nil
}
