package service

import (
	"context"
	"sort"

	"text-annotation-be/internal/dto"
	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/model"
	"text-annotation-be/internal/repository/contract"
	"text-annotation-be/internal/repository/specification"
	"text-annotation-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// In-memory unit of work

// fakeStore is the shared backing state of all fake repositories.
type fakeStore struct {
	records   []*entity.LearningRecord
	layers    []*entity.AnnotationLayer
	features  []*entity.AnnotationFeature
	documents []*entity.SourceDocument
}

type fakeUowFactory struct {
	store *fakeStore

	beginErr  error
	commitErr error
	createErr error
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{store: &fakeStore{}}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{factory: f}
}

type fakeUow struct {
	factory *fakeUowFactory
	inTx    bool
	pending []*entity.LearningRecord
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.factory.beginErr != nil {
		return u.factory.beginErr
	}
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	if u.factory.commitErr != nil {
		return u.factory.commitErr
	}
	u.factory.store.records = append(u.factory.store.records, u.pending...)
	u.pending = nil
	u.inTx = false
	return nil
}

func (u *fakeUow) Rollback() error {
	u.pending = nil
	u.inTx = false
	return nil
}

func (u *fakeUow) LearningRecordRepository() contract.LearningRecordRepository {
	return &fakeRecordRepo{uow: u}
}

func (u *fakeUow) LayerRepository() contract.LayerRepository {
	return &fakeLayerRepo{store: u.factory.store}
}

func (u *fakeUow) FeatureRepository() contract.FeatureRepository {
	return &fakeFeatureRepo{store: u.factory.store}
}

func (u *fakeUow) DocumentRepository() contract.DocumentRepository {
	return &fakeDocumentRepo{store: u.factory.store}
}

func (u *fakeUow) EventLogRepository() contract.EventLogRepository {
	return &fakeEventLogRepo{}
}

// ---------------------------------------------------------------------------
// Repositories

// fakeRecordRepo interprets the specification types the services actually use.
type fakeRecordRepo struct {
	uow *fakeUow
}

func recordMatches(r *entity.LearningRecord, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByUsername:
			if r.Username != v.Username {
				return false
			}
		case specification.ByLayer:
			if r.LayerId != v.LayerID {
				return false
			}
		case specification.ByAction:
			if string(r.Action) != v.Action {
				return false
			}
		case specification.ByDocumentName:
			if r.DocumentName != v.DocumentName {
				return false
			}
		}
	}
	return true
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *entity.LearningRecord) error {
	if f.uow.factory.createErr != nil {
		return f.uow.factory.createErr
	}
	if f.uow.inTx {
		f.uow.pending = append(f.uow.pending, record)
		return nil
	}
	f.uow.factory.store.records = append(f.uow.factory.store.records, record)
	return nil
}

func (f *fakeRecordRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningRecord, error) {
	var out []*entity.LearningRecord
	for _, r := range f.uow.factory.store.records {
		if recordMatches(r, specs) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRecordRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := f.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

func (f *fakeRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	store := f.uow.factory.store
	for i, r := range store.records {
		if r.Id == id {
			store.records = append(store.records[:i], store.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLayerRepo struct {
	store *fakeStore
}

func (f *fakeLayerRepo) Create(ctx context.Context, layer *entity.AnnotationLayer) error {
	f.store.layers = append(f.store.layers, layer)
	return nil
}

func (f *fakeLayerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnnotationLayer, error) {
	for _, l := range f.store.layers {
		if layerMatches(l, specs) {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLayerRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnnotationLayer, error) {
	var out []*entity.AnnotationLayer
	for _, l := range f.store.layers {
		if layerMatches(l, specs) {
			out = append(out, l)
		}
	}
	return out, nil
}

func layerMatches(l *entity.AnnotationLayer, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			if l.Id != v.ID {
				return false
			}
		case specification.ByProject:
			if l.ProjectId != v.ProjectID {
				return false
			}
		case specification.ByName:
			if l.Name != v.Name {
				return false
			}
		}
	}
	return true
}

type fakeFeatureRepo struct {
	store *fakeStore
}

func (f *fakeFeatureRepo) Create(ctx context.Context, feature *entity.AnnotationFeature) error {
	f.store.features = append(f.store.features, feature)
	return nil
}

func (f *fakeFeatureRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnnotationFeature, error) {
	for _, feat := range f.store.features {
		if featureMatches(feat, specs) {
			return feat, nil
		}
	}
	return nil, nil
}

func (f *fakeFeatureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnnotationFeature, error) {
	var out []*entity.AnnotationFeature
	for _, feat := range f.store.features {
		if featureMatches(feat, specs) {
			out = append(out, feat)
		}
	}
	return out, nil
}

func featureMatches(f *entity.AnnotationFeature, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			if f.Id != v.ID {
				return false
			}
		case specification.ByName:
			if f.Name != v.Name {
				return false
			}
		case specification.ByLayer:
			if f.LayerId != v.LayerID {
				return false
			}
		}
	}
	return true
}

type fakeDocumentRepo struct {
	store *fakeStore
}

func (f *fakeDocumentRepo) Create(ctx context.Context, document *entity.SourceDocument) error {
	f.store.documents = append(f.store.documents, document)
	return nil
}

func (f *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SourceDocument, error) {
	for _, d := range f.store.documents {
		if documentMatches(d, specs) {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SourceDocument, error) {
	var out []*entity.SourceDocument
	for _, d := range f.store.documents {
		if documentMatches(d, specs) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := f.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

func documentMatches(d *entity.SourceDocument, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			if d.Id != v.ID {
				return false
			}
		case specification.ByName:
			if d.Name != v.Name {
				return false
			}
		case specification.ByProject:
			if d.ProjectId != v.ProjectID {
				return false
			}
		}
	}
	return true
}

type fakeEventLogRepo struct{}

func (f *fakeEventLogRepo) Create(ctx context.Context, log *model.EventLog) error {
	return nil
}

func (f *fakeEventLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.EventLog, error) {
	return nil, nil
}

func (f *fakeEventLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

// ---------------------------------------------------------------------------
// Collaborators

type capturingPublisher struct {
	events []*dto.SuggestionDecisionEvent
	err    error
}

func (p *capturingPublisher) PublishDecision(ctx context.Context, event *dto.SuggestionDecisionEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

// failingStorage injects write failures for transaction tests.
type failingStorage struct {
	inner    AnnotationStorage
	writeErr error
}

func (s *failingStorage) ReadAnnotationCas(ctx context.Context, document *entity.SourceDocument, dataOwner string) (AnnotationCas, error) {
	return s.inner.ReadAnnotationCas(ctx, document, dataOwner)
}

func (s *failingStorage) WriteAnnotationCas(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.inner.WriteAnnotationCas(ctx, cas, document, dataOwner)
}

type noopLogger struct{}

func (l *noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *noopLogger) Info(module, message string, details map[string]interface{})  {}
func (l *noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *noopLogger) Error(module, message string, details map[string]interface{}) {}
func (l *noopLogger) Sync() error                                                  { return nil }
