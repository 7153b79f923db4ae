package service

import (
	"context"
	"encoding/json"

	"text-annotation-be/internal/constant"
	"text-annotation-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// decisionEventPublisher enqueues decision events on the in-process bus. The
// core's contract ends at "message enqueued"; external fan-out (NATS) is the
// bridge consumer's job.
type decisionEventPublisher struct {
	pubSub *gochannel.GoChannel
}

func NewDecisionEventPublisher(pubSub *gochannel.GoChannel) DecisionEventPublisher {
	return &decisionEventPublisher{pubSub: pubSub}
}

func (p *decisionEventPublisher) PublishDecision(ctx context.Context, event *dto.SuggestionDecisionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(constant.DecisionEventsTopic, msg)
}
