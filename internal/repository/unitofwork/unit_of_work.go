package unitofwork

import (
	"context"

	"text-annotation-be/internal/repository/contract"
)

// UnitOfWork scopes repository work to one transaction. The decision
// processor opens exactly one scope per accept call; history appends and the
// annotation storage write share that scope's fate.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	LearningRecordRepository() contract.LearningRecordRepository
	LayerRepository() contract.LayerRepository
	FeatureRepository() contract.FeatureRepository
	DocumentRepository() contract.DocumentRepository
	EventLogRepository() contract.EventLogRepository
}
