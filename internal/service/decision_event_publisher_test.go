package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"text-annotation-be/internal/constant"
	"text-annotation-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDecisionReachesSubscribers(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, constant.DecisionEventsTopic)
	require.NoError(t, err)

	publisher := NewDecisionEventPublisher(pubSub)
	event := &dto.SuggestionDecisionEvent{
		EventType:    constant.EventSuggestionAccepted,
		ProjectId:    uuid.New(),
		DocumentName: "doc-1.txt",
		DataOwner:    "kim",
		Label:        "PER",
		Action:       "ACCEPTED",
		OccurredAt:   time.Now(),
	}

	require.NoError(t, publisher.PublishDecision(ctx, event))

	select {
	case msg := <-messages:
		var got dto.SuggestionDecisionEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, event.EventType, got.EventType)
		assert.Equal(t, event.DataOwner, got.DataOwner)
		assert.Equal(t, event.Label, got.Label)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no decision event received on the bus")
	}
}
