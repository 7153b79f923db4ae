package service

import (
	"context"
	"time"

	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/pkg/logger"
	"text-annotation-be/internal/repository/specification"
	"text-annotation-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ILearningRecordService is the learning history store: an append-only log of
// user decisions on suggestions.
type ILearningRecordService interface {
	ListRecords(ctx context.Context, username string, layer *entity.AnnotationLayer) ([]*entity.LearningRecord, error)
	LogRecord(ctx context.Context, document *entity.SourceDocument, dataOwner string,
		suggestion *entity.AnnotationSuggestion, feature *entity.AnnotationFeature,
		action entity.LearningRecordAction, location entity.LearningRecordChangeLocation) (*entity.LearningRecord, error)
	HasSkippedSuggestions(ctx context.Context, username string, layer *entity.AnnotationLayer) (bool, error)
	// DeleteRecord removes a history entry. It deliberately does not restore
	// the visibility of a suggestion hidden by that record; visibility is
	// only recomputed on the next prediction run.
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

type learningRecordService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewLearningRecordService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ILearningRecordService {
	return &learningRecordService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *learningRecordService) ListRecords(ctx context.Context, username string, layer *entity.AnnotationLayer) ([]*entity.LearningRecord, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LearningRecordRepository().FindAll(ctx,
		specification.ByUsername{Username: username},
		specification.ByLayer{LayerID: layer.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (s *learningRecordService) LogRecord(ctx context.Context, document *entity.SourceDocument, dataOwner string,
	suggestion *entity.AnnotationSuggestion, feature *entity.AnnotationFeature,
	action entity.LearningRecordAction, location entity.LearningRecordChangeLocation) (*entity.LearningRecord, error) {

	record := BuildLearningRecord(document, dataOwner, suggestion, feature, action, location)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LearningRecordRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Debug("LearningRecordService", "Logged learning record", map[string]interface{}{
		"user":     dataOwner,
		"document": document.Name,
		"action":   string(action),
	})
	return record, nil
}

func (s *learningRecordService) HasSkippedSuggestions(ctx context.Context, username string, layer *entity.AnnotationLayer) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.LearningRecordRepository().Count(ctx,
		specification.ByUsername{Username: username},
		specification.ByLayer{LayerID: layer.Id},
		specification.ByAction{Action: string(entity.ActionSkipped)},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *learningRecordService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LearningRecordRepository().Delete(ctx, id)
}

// BuildLearningRecord assembles the audit entry for one decision. Shared with
// the active learning service so transactional appends produce the same shape
// as standalone ones.
func BuildLearningRecord(document *entity.SourceDocument, dataOwner string,
	suggestion *entity.AnnotationSuggestion, feature *entity.AnnotationFeature,
	action entity.LearningRecordAction, location entity.LearningRecordChangeLocation) *entity.LearningRecord {

	return &entity.LearningRecord{
		Id:             uuid.New(),
		Username:       dataOwner,
		ProjectId:      document.ProjectId,
		DocumentId:     document.Id,
		DocumentName:   document.Name,
		LayerId:        feature.LayerId,
		Feature:        feature.Name,
		Annotation:     suggestion.Label,
		OffsetBegin:    suggestion.Begin,
		OffsetEnd:      suggestion.End,
		SuggestionKind: suggestion.Kind,
		Action:         action,
		ChangeLocation: location,
		Details: map[string]interface{}{
			"recommender": suggestion.RecommenderName,
			"score":       suggestion.Score,
		},
		CreatedAt: time.Now(),
	}
}
