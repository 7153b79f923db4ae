package memory

import (
	"fmt"
	"time"

	"text-annotation-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PredictionStore holds the latest prediction batch per (user, project). The
// recommendation engine replaces a batch wholesale after each prediction run;
// readers only ever see a complete batch or none.
type PredictionStore struct {
	batches     *cache.Cache
	preferences *cache.Cache
	defaults    entity.Preferences
}

func NewPredictionStore(defaults entity.Preferences) *PredictionStore {
	return &PredictionStore{
		batches:     cache.New(cache.NoExpiration, 0),
		preferences: cache.New(cache.NoExpiration, 0),
		defaults:    defaults,
	}
}

func predictionKey(username string, projectId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", username, projectId)
}

// PutPredictions installs a fresh batch, discarding the previous one. Fresh
// batches start fully visible; this is the only point where a suggestion
// hidden in an earlier batch can reappear.
func (s *PredictionStore) PutPredictions(username string, projectId uuid.UUID, predictions *entity.Predictions) {
	if predictions.GeneratedAt.IsZero() {
		predictions.GeneratedAt = time.Now()
	}
	s.batches.Set(predictionKey(username, projectId), predictions, cache.NoExpiration)
}

// GetPredictions returns the latest batch for the user and project, or nil if
// no prediction run has completed yet.
func (s *PredictionStore) GetPredictions(username string, projectId uuid.UUID) *entity.Predictions {
	if x, found := s.batches.Get(predictionKey(username, projectId)); found {
		return x.(*entity.Predictions)
	}
	return nil
}

// ClearPredictions drops the batch, e.g. when recommenders are removed.
func (s *PredictionStore) ClearPredictions(username string, projectId uuid.UUID) {
	s.batches.Delete(predictionKey(username, projectId))
}

// GetPreferences returns the strategy tuning knobs for the user and project,
// falling back to the configured defaults.
func (s *PredictionStore) GetPreferences(username string, projectId uuid.UUID) entity.Preferences {
	if x, found := s.preferences.Get(predictionKey(username, projectId)); found {
		return x.(entity.Preferences)
	}
	return s.defaults
}

func (s *PredictionStore) SetPreferences(username string, projectId uuid.UUID, prefs entity.Preferences) {
	s.preferences.Set(predictionKey(username, projectId), prefs, cache.NoExpiration)
}
