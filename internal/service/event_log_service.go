package service

import (
	"context"
	"encoding/json"
	"strings"

	"text-annotation-be/internal/model"
	"text-annotation-be/internal/pkg/logger"
	"text-annotation-be/internal/repository/specification"
	"text-annotation-be/internal/repository/unitofwork"
	"text-annotation-be/pkg/events"
	pktNats "text-annotation-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventLogService consumes decision events from NATS and persists them so
// timelines and dashboards can query past decisions without replaying the
// stream.
type EventLogService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewEventLogService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, log logger.ILogger) *EventLogService {
	return &EventLogService{
		uowFactory: uowFactory,
		subscriber: sub,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *EventLogService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("EventLogService", "No NATS subscriber configured, event log disabled", nil)
		return
	}

	if err := s.subscriber.Subscribe("events.>", "al-event-log-worker", s.handleEvent); err != nil {
		s.logger.Error("EventLogService", "Failed to start event log subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("EventLogService", "Event log service started, listening to events.>", nil)
}

func (s *EventLogService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	// NATS subjects include the stream prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	username, _ := payload["data_owner"].(string)
	documentName, _ := payload["document_name"].(string)

	var projectId *uuid.UUID
	if raw, ok := payload["project_id"].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			projectId = &id
		}
	}

	details, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("EventLogService", "Dropping unmarshalable event payload", map[string]interface{}{"type": typeCode})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry := &model.EventLog{
		Id:           uuid.New(),
		EventType:    typeCode,
		Username:     username,
		ProjectId:    projectId,
		DocumentName: documentName,
		Details:      datatypes.JSON(details),
	}
	if err := uow.EventLogRepository().Create(ctx, entry); err != nil {
		s.logger.Error("EventLogService", "Failed to persist event log entry", map[string]interface{}{"error": err.Error()})
		return err // NATS redelivers on error
	}

	return nil
}

// RecentEvents lists the latest persisted events for a user, newest first.
func (s *EventLogService) RecentEvents(ctx context.Context, username string, limit int) ([]*model.EventLog, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EventLogRepository().FindAll(ctx,
		specification.ByUsername{Username: username},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
}
