package service

import (
	"context"

	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/repository/specification"
	"text-annotation-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ISchemaService resolves the annotation model: layers, their features and
// the adapter that knows how to apply suggestions of a layer type.
type ISchemaService interface {
	GetLayer(ctx context.Context, projectId uuid.UUID, layerId uuid.UUID) (*entity.AnnotationLayer, error)
	GetFeature(ctx context.Context, name string, layer *entity.AnnotationLayer) (*entity.AnnotationFeature, error)
	GetAdapter(layer *entity.AnnotationLayer) (AnnotationAdapter, error)
}

type schemaService struct {
	uowFactory unitofwork.RepositoryFactory
	adapters   map[entity.LayerType]AnnotationAdapter
}

func NewSchemaService(uowFactory unitofwork.RepositoryFactory, adapters map[entity.LayerType]AnnotationAdapter) ISchemaService {
	return &schemaService{
		uowFactory: uowFactory,
		adapters:   adapters,
	}
}

// GetLayer returns nil without error when the layer is unknown in the
// project; the caller decides whether that is a configuration error.
func (s *schemaService) GetLayer(ctx context.Context, projectId uuid.UUID, layerId uuid.UUID) (*entity.AnnotationLayer, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LayerRepository().FindOne(ctx,
		specification.ByID{ID: layerId},
		specification.ByProject{ProjectID: projectId},
	)
}

func (s *schemaService) GetFeature(ctx context.Context, name string, layer *entity.AnnotationLayer) (*entity.AnnotationFeature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindOne(ctx,
		specification.ByName{Name: name},
		specification.ByLayer{LayerID: layer.Id},
	)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, &ConfigurationError{Kind: "feature", Ref: name}
	}
	return feature, nil
}

func (s *schemaService) GetAdapter(layer *entity.AnnotationLayer) (AnnotationAdapter, error) {
	adapter, ok := s.adapters[layer.Type]
	if !ok {
		return nil, &ConfigurationError{Kind: "layer", Ref: string(layer.Type)}
	}
	return adapter, nil
}
