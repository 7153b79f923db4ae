package contract

import (
	"context"

	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/repository/specification"

	"github.com/google/uuid"
)

// LearningRecordRepository is the append-only history store. Records are
// created once per user decision and never updated.
type LearningRecordRepository interface {
	Create(ctx context.Context, record *entity.LearningRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
