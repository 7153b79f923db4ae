package contract

import (
	"context"

	"text-annotation-be/internal/model"
	"text-annotation-be/internal/repository/specification"
)

// EventLogRepository stores decision events consumed from the bus.
type EventLogRepository interface {
	Create(ctx context.Context, log *model.EventLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.EventLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
