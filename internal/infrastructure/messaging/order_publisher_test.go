package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/inventory/internal/domain/order"
)

type recordingPublisher struct {
	keys     []string
	messages []interface{}
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, message interface{}) error {
	p.keys = append(p.keys, routingKey)
	p.messages = append(p.messages, message)
	return nil
}

func TestOrderPublisher_PublishCreated(t *testing.T) {
	rec := &recordingPublisher{}
	p := NewOrderPublisher(rec)

	shanghai := time.FixedZone("CST", 8*3600)
	err := p.PublishCreated(context.Background(), order.CreatedEvent{
		OrderID:    3,
		ProductIDs: []uint{1, 2},
		Amounts:    []int{5, -1},
		CreatedAt:  time.Date(2024, 1, 15, 18, 30, 0, 0, shanghai),
	})
	require.NoError(t, err)

	require.Equal(t, []string{order.RoutingKeyCreated}, rec.keys)
	e, ok := rec.messages[0].(order.CreatedEvent)
	require.True(t, ok)
	assert.Equal(t, uint(3), e.OrderID)
	assert.Equal(t, time.UTC, e.CreatedAt.Location())
	assert.Equal(t, 10, e.CreatedAt.Hour())
}
