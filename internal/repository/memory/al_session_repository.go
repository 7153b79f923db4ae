package memory

import (
	"time"

	"text-annotation-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ALSessionRepository is the process-wide table of active learning sessions,
// keyed per (username, project). Sessions are created on first access and
// evicted on explicit delete or TTL expiry (logout/timeout).
//
// Callers must serialize mutating calls per key; a user's own requests are
// expected to arrive one at a time.
type ALSessionRepository struct {
	cache *cache.Cache
}

func NewALSessionRepository(ttl time.Duration) *ALSessionRepository {
	return &ALSessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// GetOrCreate returns the session for the key, creating a fresh inactive one
// if none exists yet.
func (r *ALSessionRepository) GetOrCreate(username string, projectId uuid.UUID) *entity.ActiveLearningUserState {
	key := entity.ALSessionKey(username, projectId)
	if x, found := r.cache.Get(key); found {
		return x.(*entity.ActiveLearningUserState)
	}
	state := entity.NewActiveLearningUserState()
	r.cache.Set(key, state, cache.DefaultExpiration)
	return state
}

func (r *ALSessionRepository) Get(username string, projectId uuid.UUID) (*entity.ActiveLearningUserState, bool) {
	if x, found := r.cache.Get(entity.ALSessionKey(username, projectId)); found {
		return x.(*entity.ActiveLearningUserState), true
	}
	return nil, false
}

// Save stores the whole session state. Replacing the value wholesale keeps
// snapshot replacement atomic for concurrent readers of the same key.
func (r *ALSessionRepository) Save(username string, projectId uuid.UUID, state *entity.ActiveLearningUserState) {
	r.cache.Set(entity.ALSessionKey(username, projectId), state, cache.DefaultExpiration)
}

func (r *ALSessionRepository) Delete(username string, projectId uuid.UUID) {
	r.cache.Delete(entity.ALSessionKey(username, projectId))
}
