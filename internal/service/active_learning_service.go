package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"text-annotation-be/internal/constant"
	"text-annotation-be/internal/dto"
	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/pkg/logger"
	"text-annotation-be/internal/repository/memory"
	"text-annotation-be/internal/repository/specification"
	"text-annotation-be/internal/repository/unitofwork"
	"text-annotation-be/internal/service/strategy"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// IActiveLearningService manages the suggestion lifecycle of active learning
// sessions: fetching and filtering the current suggestions, picking the next
// one to present, and recording the user's decision.
type IActiveLearningService interface {
	// Session lifecycle
	StartSession(ctx context.Context, username string, projectId uuid.UUID, layer *entity.AnnotationLayer, strategyName string) (*entity.ActiveLearningUserState, error)
	GetSession(username string, projectId uuid.UUID) (*entity.ActiveLearningUserState, bool)
	EndSession(username string, projectId uuid.UUID)

	// Suggestion lifecycle
	GetSuggestions(ctx context.Context, username string, layer *entity.AnnotationLayer) ([]entity.SuggestionGroup, error)
	HideRejectedOrSkippedSuggestions(ctx context.Context, username string, layer *entity.AnnotationLayer, groups []entity.SuggestionGroup) error
	GenerateNextSuggestion(ctx context.Context, dataOwner string, state *entity.ActiveLearningUserState) (*entity.Delta, error)
	IsSuggestionVisible(ctx context.Context, record *entity.LearningRecord) (bool, error)
	HasSkippedSuggestions(ctx context.Context, username string, layer *entity.AnnotationLayer) (bool, error)

	// Decisions on entities
	AcceptSuggestion(ctx context.Context, document *entity.SourceDocument, dataOwner string, suggestion *entity.AnnotationSuggestion, value interface{}) error
	RejectSuggestion(ctx context.Context, dataOwner string, layer *entity.AnnotationLayer, suggestion *entity.AnnotationSuggestion) error
	SkipSuggestion(ctx context.Context, dataOwner string, layer *entity.AnnotationLayer, suggestion *entity.AnnotationSuggestion) error

	// Decisions by opaque reference into the live prediction batch
	Accept(ctx context.Context, req *dto.AcceptSuggestionRequest) error
	Reject(ctx context.Context, req *dto.RejectSuggestionRequest) error
	Skip(ctx context.Context, req *dto.SkipSuggestionRequest) error
}

type activeLearningService struct {
	uowFactory            unitofwork.RepositoryFactory
	recommendationService RecommendationEngine
	learningRecordService ILearningRecordService
	schemaService         ISchemaService
	storage               AnnotationStorage
	featureSupport        FeatureSupportRegistry
	eventPublisher        DecisionEventPublisher
	strategies            *strategy.Registry
	sessionRepo           *memory.ALSessionRepository
	validate              *validator.Validate
	logger                logger.ILogger
}

func NewActiveLearningService(
	uowFactory unitofwork.RepositoryFactory,
	recommendationService RecommendationEngine,
	learningRecordService ILearningRecordService,
	schemaService ISchemaService,
	storage AnnotationStorage,
	featureSupport FeatureSupportRegistry,
	eventPublisher DecisionEventPublisher,
	strategies *strategy.Registry,
	sessionRepo *memory.ALSessionRepository,
	log logger.ILogger,
) IActiveLearningService {
	return &activeLearningService{
		uowFactory:            uowFactory,
		recommendationService: recommendationService,
		learningRecordService: learningRecordService,
		schemaService:         schemaService,
		storage:               storage,
		featureSupport:        featureSupport,
		eventPublisher:        eventPublisher,
		strategies:            strategies,
		sessionRepo:           sessionRepo,
		validate:              validator.New(),
		logger:                log,
	}
}

// ---------------------------------------------------------------------------
// Session lifecycle

func (s *activeLearningService) StartSession(ctx context.Context, username string, projectId uuid.UUID,
	layer *entity.AnnotationLayer, strategyName string) (*entity.ActiveLearningUserState, error) {

	if strategyName == "" {
		strategyName = s.strategies.Default().Name()
	}
	if _, err := s.strategies.Get(strategyName); err != nil {
		return nil, &ConfigurationError{Kind: "strategy", Ref: strategyName}
	}

	state := s.sessionRepo.GetOrCreate(username, projectId)
	state.SessionActive = true
	state.Layer = layer
	state.StrategyName = strategyName

	groups, err := s.GetSuggestions(ctx, username, layer)
	if err != nil {
		return nil, err
	}
	state.SetSuggestions(groups)

	if _, err := s.GenerateNextSuggestion(ctx, username, state); err != nil {
		return nil, err
	}

	s.sessionRepo.Save(username, projectId, state)
	return state, nil
}

func (s *activeLearningService) GetSession(username string, projectId uuid.UUID) (*entity.ActiveLearningUserState, bool) {
	return s.sessionRepo.Get(username, projectId)
}

func (s *activeLearningService) EndSession(username string, projectId uuid.UUID) {
	s.sessionRepo.Delete(username, projectId)
}

// ---------------------------------------------------------------------------
// Suggestion lifecycle

// GetSuggestions returns the span suggestion groups of the current prediction
// batch for the user and layer, restricted to the documents of the layer's
// project and flattened across documents in name order. Returns an empty
// slice while no prediction run has completed.
func (s *activeLearningService) GetSuggestions(ctx context.Context, username string, layer *entity.AnnotationLayer) ([]entity.SuggestionGroup, error) {
	predictions := s.recommendationService.GetPredictions(username, layer.ProjectId)
	if predictions == nil {
		return []entity.SuggestionGroup{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	documents, err := uow.DocumentRepository().FindAll(ctx, specification.ByProject{ProjectID: layer.ProjectId})
	if err != nil {
		return nil, err
	}
	docNames := make([]string, len(documents))
	for i, d := range documents {
		docNames[i] = d.Name
	}

	grouped := predictions.GroupedPredictions(layer.Id, docNames)

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []entity.SuggestionGroup
	for _, name := range names {
		out = append(out, grouped[name]...)
	}
	if out == nil {
		out = []entity.SuggestionGroup{}
	}
	return out, nil
}

// IsSuggestionVisible reports whether the record still corresponds to a
// visible on-screen suggestion in the live batch. Returns false when the
// batch was refreshed away or the suggestion has been hidden.
func (s *activeLearningService) IsSuggestionVisible(ctx context.Context, record *entity.LearningRecord) (bool, error) {
	layer, err := s.schemaService.GetLayer(ctx, record.ProjectId, record.LayerId)
	if err != nil {
		return false, err
	}
	if layer == nil {
		return false, nil
	}

	groups, err := s.GetSuggestions(ctx, record.Username, layer)
	if err != nil {
		return false, err
	}

	for _, group := range groups {
		for _, suggestion := range group {
			if suggestion.DocumentName == record.DocumentName &&
				suggestion.Feature == record.Feature &&
				suggestion.LabelEquals(record.Annotation) &&
				suggestion.Begin == record.OffsetBegin &&
				suggestion.End == record.OffsetEnd &&
				suggestion.Visible {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *activeLearningService) HasSkippedSuggestions(ctx context.Context, username string, layer *entity.AnnotationLayer) (bool, error) {
	return s.learningRecordService.HasSkippedSuggestions(ctx, username, layer)
}

// HideRejectedOrSkippedSuggestions marks every visible suggestion hidden for
// which a history record matches on (document, begin, end, label), carrying
// the record's action as the reason. Idempotent: already hidden suggestions
// are skipped. Mind that deleting a skip record does not unhide a suggestion
// here; it only reappears with the next prediction run.
func (s *activeLearningService) HideRejectedOrSkippedSuggestions(ctx context.Context, username string,
	layer *entity.AnnotationLayer, groups []entity.SuggestionGroup) error {

	records, err := s.learningRecordService.ListRecords(ctx, username, layer)
	if err != nil {
		return err
	}

	for _, group := range groups {
		for _, suggestion := range group {
			if !suggestion.Visible {
				continue
			}
			for _, record := range records {
				if record.Matches(suggestion) {
					suggestion.Hide(record.Action)
				}
			}
		}
	}
	return nil
}

// removeDuplicateSuggestions keeps, in original order, only the first
// suggestion per (recommender, label, document) triple of the group.
func removeDuplicateSuggestions(group entity.SuggestionGroup) entity.SuggestionGroup {
	var clean entity.SuggestionGroup
	for _, candidate := range group {
		if !containsDuplicate(clean, candidate) {
			clean = append(clean, candidate)
		}
	}
	return clean
}

func containsDuplicate(group entity.SuggestionGroup, candidate *entity.AnnotationSuggestion) bool {
	for _, existing := range group {
		if existing.RecommenderName == candidate.RecommenderName &&
			existing.LabelEquals(candidate.Label) &&
			existing.DocumentName == candidate.DocumentName {
			return true
		}
	}
	return false
}

// GenerateNextSuggestion runs the fixed filter pipeline over the session's
// current groups and asks the configured strategy for the next delta to
// present. The order is fixed: dedupe first, then hide by history, then the
// strategy — hiding must see deduplicated groups so a duplicate cannot match
// a history record independently.
func (s *activeLearningService) GenerateNextSuggestion(ctx context.Context, dataOwner string,
	state *entity.ActiveLearningUserState) (*entity.Delta, error) {

	groups := state.Suggestions

	deduped := make([]entity.SuggestionGroup, len(groups))
	for i, group := range groups {
		deduped[i] = removeDuplicateSuggestions(group)
	}

	if err := s.HideRejectedOrSkippedSuggestions(ctx, dataOwner, state.Layer, deduped); err != nil {
		return nil, err
	}
	state.SetSuggestions(deduped)

	strat, err := s.strategies.Get(state.StrategyName)
	if err != nil {
		strat = s.strategies.Default()
	}

	prefs := s.recommendationService.GetPreferences(dataOwner, state.Layer.ProjectId)
	delta, ok := strat.GenerateNextSuggestion(prefs, deduped)
	if !ok {
		state.SetCurrentDelta(nil)
		return nil, nil
	}

	state.SetCurrentDelta(&delta)
	return &delta, nil
}

// ---------------------------------------------------------------------------
// Decisions

// AcceptSuggestion upserts an annotation based on the suggestion and the user
// chosen value. When the value differs from the suggested label the action is
// recorded as a correction, and an additional rejection is written for the
// original value so it does not get suggested again. The storage write and
// the history appends are one transactional unit.
func (s *activeLearningService) AcceptSuggestion(ctx context.Context, document *entity.SourceDocument,
	dataOwner string, suggestion *entity.AnnotationSuggestion, value interface{}) error {

	layer, err := s.schemaService.GetLayer(ctx, document.ProjectId, suggestion.LayerId)
	if err != nil {
		return err
	}
	if layer == nil {
		return &ConfigurationError{Kind: "layer", Ref: suggestion.LayerId.String()}
	}

	feature, err := s.schemaService.GetFeature(ctx, suggestion.Feature, layer)
	if err != nil {
		return err
	}

	adapter, err := s.schemaService.GetAdapter(layer)
	if err != nil {
		return err
	}

	// Load the annotation state to mutate. This may belong to a different
	// document than the one currently viewed, e.g. if the user switched
	// documents after the suggestion was loaded into the sidebar.
	cas, err := s.storage.ReadAnnotationCas(ctx, document, dataOwner)
	if err != nil {
		return err
	}

	label, err := s.featureSupport.UnwrapFeatureValue(feature, value)
	if err != nil {
		return err
	}

	accepted := suggestion.WithLabel(label)

	action := entity.ActionAccepted
	if !suggestion.LabelEquals(label) {
		action = entity.ActionCorrected
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	switch suggestion.Kind {
	case entity.SuggestionKindSpan:
		err = adapter.UpsertSpanFeature(ctx, cas, document, dataOwner, feature, accepted)
	case entity.SuggestionKindRelation:
		err = adapter.UpsertRelationFeature(ctx, cas, document, dataOwner, feature, accepted)
	default:
		err = fmt.Errorf("unsupported suggestion kind: %q", suggestion.Kind)
	}
	if err != nil {
		_ = uow.Rollback()
		return err
	}

	if err := s.storage.WriteAnnotationCas(ctx, cas, document, dataOwner); err != nil {
		_ = uow.Rollback()
		return err
	}

	records := uow.LearningRecordRepository()
	if err := records.Create(ctx, BuildLearningRecord(document, dataOwner, accepted, feature, action, entity.LocationALSidebar)); err != nil {
		_ = uow.Rollback()
		return err
	}
	if action == entity.ActionCorrected {
		// Reject the original value so it does not reappear.
		if err := records.Create(ctx, BuildLearningRecord(document, dataOwner, suggestion, feature, entity.ActionRejected, entity.LocationALSidebar)); err != nil {
			_ = uow.Rollback()
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishDecision(ctx, document, accepted, dataOwner, layer, action)
	return nil
}

func (s *activeLearningService) RejectSuggestion(ctx context.Context, dataOwner string,
	layer *entity.AnnotationLayer, suggestion *entity.AnnotationSuggestion) error {
	return s.recordDecision(ctx, dataOwner, layer, suggestion, entity.ActionRejected)
}

func (s *activeLearningService) SkipSuggestion(ctx context.Context, dataOwner string,
	layer *entity.AnnotationLayer, suggestion *entity.AnnotationSuggestion) error {
	return s.recordDecision(ctx, dataOwner, layer, suggestion, entity.ActionSkipped)
}

// recordDecision writes the history record and publishes the decision event
// for the actions that do not mutate annotation state.
func (s *activeLearningService) recordDecision(ctx context.Context, dataOwner string,
	layer *entity.AnnotationLayer, suggestion *entity.AnnotationSuggestion, action entity.LearningRecordAction) error {

	feature, err := s.schemaService.GetFeature(ctx, suggestion.Feature, layer)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByName{Name: suggestion.DocumentName},
		specification.ByProject{ProjectID: layer.ProjectId},
	)
	if err != nil {
		return err
	}
	if document == nil {
		return fmt.Errorf("no such document: %q", suggestion.DocumentName)
	}

	if _, err := s.learningRecordService.LogRecord(ctx, document, dataOwner, suggestion, feature, action, entity.LocationALSidebar); err != nil {
		return err
	}

	s.publishDecision(ctx, document, suggestion, dataOwner, layer, action)
	return nil
}

// ---------------------------------------------------------------------------
// Decisions by opaque reference

// resolveSuggestion finds the live suggestion the reference points at.
// References go stale when the prediction batch is refreshed; that resolves
// to ErrSuggestionNotFound, not a failure.
func (s *activeLearningService) resolveSuggestion(username string, projectId uuid.UUID, suggestionId uuid.UUID) (*entity.AnnotationSuggestion, error) {
	predictions := s.recommendationService.GetPredictions(username, projectId)
	if predictions == nil {
		return nil, ErrSuggestionNotFound
	}
	suggestion := predictions.FindSuggestion(suggestionId)
	if suggestion == nil {
		return nil, ErrSuggestionNotFound
	}
	return suggestion, nil
}

func (s *activeLearningService) Accept(ctx context.Context, req *dto.AcceptSuggestionRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	suggestion, err := s.resolveSuggestion(req.Username, req.ProjectId, req.SuggestionId)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByName{Name: suggestion.DocumentName},
		specification.ByProject{ProjectID: req.ProjectId},
	)
	if err != nil {
		return err
	}
	if document == nil {
		return ErrSuggestionNotFound
	}

	return s.AcceptSuggestion(ctx, document, req.Username, suggestion, req.Value)
}

func (s *activeLearningService) Reject(ctx context.Context, req *dto.RejectSuggestionRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	suggestion, err := s.resolveSuggestion(req.Username, req.ProjectId, req.SuggestionId)
	if err != nil {
		return err
	}

	layer, err := s.schemaService.GetLayer(ctx, req.ProjectId, suggestion.LayerId)
	if err != nil {
		return err
	}
	if layer == nil {
		return &ConfigurationError{Kind: "layer", Ref: suggestion.LayerId.String()}
	}

	return s.RejectSuggestion(ctx, req.Username, layer, suggestion)
}

func (s *activeLearningService) Skip(ctx context.Context, req *dto.SkipSuggestionRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	suggestion, err := s.resolveSuggestion(req.Username, req.ProjectId, req.SuggestionId)
	if err != nil {
		return err
	}

	layer, err := s.schemaService.GetLayer(ctx, req.ProjectId, suggestion.LayerId)
	if err != nil {
		return err
	}
	if layer == nil {
		return &ConfigurationError{Kind: "layer", Ref: suggestion.LayerId.String()}
	}

	return s.SkipSuggestion(ctx, req.Username, layer, suggestion)
}

// ---------------------------------------------------------------------------
// Events

var actionEventTypes = map[entity.LearningRecordAction]string{
	entity.ActionAccepted:  constant.EventSuggestionAccepted,
	entity.ActionRejected:  constant.EventSuggestionRejected,
	entity.ActionCorrected: constant.EventSuggestionCorrected,
	entity.ActionSkipped:   constant.EventSuggestionSkipped,
}

func (s *activeLearningService) publishDecision(ctx context.Context, document *entity.SourceDocument,
	suggestion *entity.AnnotationSuggestion, dataOwner string, layer *entity.AnnotationLayer,
	action entity.LearningRecordAction) {

	var alternatives []dto.AlternativeSuggestion
	if predictions := s.recommendationService.GetPredictions(dataOwner, layer.ProjectId); predictions != nil {
		for _, alt := range predictions.PredictionsAt(suggestion.DocumentName, layer.Id, suggestion.Begin, suggestion.End, suggestion.Feature) {
			alternatives = append(alternatives, dto.AlternativeSuggestion{
				RecommenderName: alt.RecommenderName,
				Label:           alt.Label,
				Score:           alt.Score,
				Visible:         alt.Visible,
			})
		}
	}

	event := &dto.SuggestionDecisionEvent{
		EventType:    actionEventTypes[action],
		ProjectId:    layer.ProjectId,
		DocumentId:   document.Id,
		DocumentName: document.Name,
		DataOwner:    dataOwner,
		LayerId:      layer.Id,
		LayerName:    layer.Name,
		Feature:      suggestion.Feature,
		Label:        suggestion.Label,
		Begin:        suggestion.Begin,
		End:          suggestion.End,
		Action:       string(action),
		Alternatives: alternatives,
		OccurredAt:   time.Now(),
	}

	if err := s.eventPublisher.PublishDecision(ctx, event); err != nil {
		s.logger.Warn("ActiveLearningService", "Failed to publish decision event", map[string]interface{}{
			"error":  err.Error(),
			"action": string(action),
		})
	}
}
