package mapper

import (
	"encoding/json"

	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/model"

	"gorm.io/datatypes"
)

type LearningRecordMapper struct{}

func NewLearningRecordMapper() *LearningRecordMapper {
	return &LearningRecordMapper{}
}

func (m *LearningRecordMapper) ToEntity(r *model.LearningRecord) *entity.LearningRecord {
	if r == nil {
		return nil
	}

	var details map[string]interface{}
	if len(r.Details) > 0 {
		// Corrupt JSONB only loses the detail snapshot, never the record.
		_ = json.Unmarshal(r.Details, &details)
	}

	return &entity.LearningRecord{
		Id:             r.Id,
		Username:       r.Username,
		ProjectId:      r.ProjectId,
		DocumentId:     r.DocumentId,
		DocumentName:   r.DocumentName,
		LayerId:        r.LayerId,
		Feature:        r.Feature,
		Annotation:     r.Annotation,
		OffsetBegin:    r.OffsetBegin,
		OffsetEnd:      r.OffsetEnd,
		SuggestionKind: entity.SuggestionKind(r.SuggestionKind),
		Action:         entity.LearningRecordAction(r.Action),
		ChangeLocation: entity.LearningRecordChangeLocation(r.ChangeLocation),
		Details:        details,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *LearningRecordMapper) ToModel(r *entity.LearningRecord) *model.LearningRecord {
	if r == nil {
		return nil
	}

	var details datatypes.JSON
	if r.Details != nil {
		if b, err := json.Marshal(r.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	return &model.LearningRecord{
		Id:             r.Id,
		Username:       r.Username,
		ProjectId:      r.ProjectId,
		DocumentId:     r.DocumentId,
		DocumentName:   r.DocumentName,
		LayerId:        r.LayerId,
		Feature:        r.Feature,
		Annotation:     r.Annotation,
		OffsetBegin:    r.OffsetBegin,
		OffsetEnd:      r.OffsetEnd,
		SuggestionKind: string(r.SuggestionKind),
		Action:         string(r.Action),
		ChangeLocation: string(r.ChangeLocation),
		Details:        details,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *LearningRecordMapper) ToEntities(records []*model.LearningRecord) []*entity.LearningRecord {
	entities := make([]*entity.LearningRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
