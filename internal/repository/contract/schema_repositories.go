package contract

import (
	"context"

	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/repository/specification"
)

type LayerRepository interface {
	Create(ctx context.Context, layer *entity.AnnotationLayer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnnotationLayer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnnotationLayer, error)
}

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.AnnotationFeature) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnnotationFeature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnnotationFeature, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.SourceDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SourceDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SourceDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
