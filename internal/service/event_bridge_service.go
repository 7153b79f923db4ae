package service

import (
	"context"
	"encoding/json"

	"text-annotation-be/internal/dto"
	"text-annotation-be/internal/pkg/logger"
	"text-annotation-be/pkg/events"
	pktNats "text-annotation-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IEventBridgeService forwards decision events from the in-process bus to
// NATS so components outside this process (notification fan-out, dashboards)
// can consume them.
type IEventBridgeService interface {
	Consume(ctx context.Context) error
}

type eventBridgeService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pktNats.Publisher
	logger    logger.ILogger
}

func NewEventBridgeService(pubSub *gochannel.GoChannel, topicName string, natsPub *pktNats.Publisher, log logger.ILogger) IEventBridgeService {
	return &eventBridgeService{
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
		logger:    log,
	}
}

func (s *eventBridgeService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *eventBridgeService) processMessage(ctx context.Context, msg *message.Message) {
	var event dto.SuggestionDecisionEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Error("EventBridgeService", "Failed to unmarshal decision event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are not retryable
		return
	}

	if s.natsPub != nil {
		var data map[string]interface{}
		if err := json.Unmarshal(msg.Payload, &data); err == nil {
			evt := events.BaseEvent{
				Type:       event.EventType,
				Data:       data,
				OccurredAt: event.OccurredAt,
			}
			if err := s.natsPub.Publish(ctx, evt); err != nil {
				// Fire and forget: external delivery is best effort.
				s.logger.Warn("EventBridgeService", "Failed to forward decision event to NATS", map[string]interface{}{
					"error": err.Error(),
					"type":  event.EventType,
				})
			}
		}
	}

	msg.Ack()
}
