package service

import (
	"context"
	"fmt"
	"sync"

	"text-annotation-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// inMemoryAnnotationStorage keeps one annotation state per
// (document, data owner) pair. Reads hand out deep copies; a write replaces
// the stored state wholesale, so a decision that fails mid-flight leaves the
// stored state untouched.
type inMemoryAnnotationStorage struct {
	mu     sync.Mutex
	states *cache.Cache
}

func NewInMemoryAnnotationStorage() AnnotationStorage {
	return &inMemoryAnnotationStorage{
		states: cache.New(cache.NoExpiration, 0),
	}
}

func annotationStateKey(document *entity.SourceDocument, dataOwner string) string {
	return fmt.Sprintf("%s:%s", document.Id, dataOwner)
}

func (s *inMemoryAnnotationStorage) ReadAnnotationCas(ctx context.Context, document *entity.SourceDocument, dataOwner string) (AnnotationCas, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, found := s.states.Get(annotationStateKey(document, dataOwner)); found {
		return raw.(*entity.AnnotationDocument).Clone(), nil
	}

	// A data owner's first decision on a document starts from an empty copy.
	return entity.NewAnnotationDocument(document.Id, dataOwner), nil
}

func (s *inMemoryAnnotationStorage) WriteAnnotationCas(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string) error {
	state, ok := cas.(*entity.AnnotationDocument)
	if !ok {
		return fmt.Errorf("unsupported annotation state type %T", cas)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.states.Set(annotationStateKey(document, dataOwner), state.Clone(), cache.NoExpiration)
	return nil
}
