package mapper

import (
	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/model"
)

type SchemaMapper struct{}

func NewSchemaMapper() *SchemaMapper {
	return &SchemaMapper{}
}

func (m *SchemaMapper) LayerToEntity(l *model.AnnotationLayer) *entity.AnnotationLayer {
	if l == nil {
		return nil
	}
	return &entity.AnnotationLayer{
		Id:        l.Id,
		ProjectId: l.ProjectId,
		Name:      l.Name,
		UiName:    l.UiName,
		Type:      entity.LayerType(l.Type),
		Enabled:   l.Enabled,
	}
}

func (m *SchemaMapper) LayerToModel(l *entity.AnnotationLayer) *model.AnnotationLayer {
	if l == nil {
		return nil
	}
	return &model.AnnotationLayer{
		Id:        l.Id,
		ProjectId: l.ProjectId,
		Name:      l.Name,
		UiName:    l.UiName,
		Type:      string(l.Type),
		Enabled:   l.Enabled,
	}
}

func (m *SchemaMapper) LayersToEntities(layers []*model.AnnotationLayer) []*entity.AnnotationLayer {
	entities := make([]*entity.AnnotationLayer, len(layers))
	for i, l := range layers {
		entities[i] = m.LayerToEntity(l)
	}
	return entities
}

func (m *SchemaMapper) FeatureToEntity(f *model.AnnotationFeature) *entity.AnnotationFeature {
	if f == nil {
		return nil
	}
	return &entity.AnnotationFeature{
		Id:      f.Id,
		LayerId: f.LayerId,
		Name:    f.Name,
		UiName:  f.UiName,
		Type:    f.Type,
	}
}

func (m *SchemaMapper) FeatureToModel(f *entity.AnnotationFeature) *model.AnnotationFeature {
	if f == nil {
		return nil
	}
	return &model.AnnotationFeature{
		Id:      f.Id,
		LayerId: f.LayerId,
		Name:    f.Name,
		UiName:  f.UiName,
		Type:    f.Type,
	}
}

func (m *SchemaMapper) DocumentToEntity(d *model.SourceDocument) *entity.SourceDocument {
	if d == nil {
		return nil
	}
	return &entity.SourceDocument{
		Id:        d.Id,
		ProjectId: d.ProjectId,
		Name:      d.Name,
		State:     d.State,
		CreatedAt: d.CreatedAt,
	}
}

func (m *SchemaMapper) DocumentToModel(d *entity.SourceDocument) *model.SourceDocument {
	if d == nil {
		return nil
	}
	return &model.SourceDocument{
		Id:        d.Id,
		ProjectId: d.ProjectId,
		Name:      d.Name,
		State:     d.State,
		CreatedAt: d.CreatedAt,
	}
}

func (m *SchemaMapper) DocumentsToEntities(docs []*model.SourceDocument) []*entity.SourceDocument {
	entities := make([]*entity.SourceDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.DocumentToEntity(d)
	}
	return entities
}
