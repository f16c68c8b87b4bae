package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DRSN-tech/store-api/internal/cfg"
	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
	// blockUntilDone имитирует брокер, который не отвечает
	blockUntilDone bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.blockUntilDone {
		<-ctx.Done()
		return ctx.Err()
	}
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestProducer(w *fakeWriter) *Producer {
	log := logger.NewSlogLoggerWithHandler(slog.NewTextHandler(io.Discard, nil))
	p := newProducer(w, log, &cfg.KafkaCfg{Enabled: true, Topic: "orders", Brokers: []string{"localhost:9092"}})
	p.now = func() time.Time { return time.Unix(0, 42) }
	return p
}

func testOrder() *domain.OrderDetails {
	return domain.NewOrderDetails(
		domain.Order{ID: 7, UserID: 1, ProductID: 2, Quantity: 3, TotalPrice: 59.97},
		domain.User{ID: 1, Name: "user_1", Email: "user_1@eemi.com"},
		domain.Product{ID: 2, Name: "Widget", Category: "Tools", Price: 19.99},
	)
}

func TestProducer_PublishOrderCreated(t *testing.T) {
	w := &fakeWriter{}
	p := newTestProducer(w)

	require.NoError(t, p.PublishOrderCreated(context.Background(), testOrder()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "7", string(msg.Key))

	var event OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))

	_, err := uuid.Parse(event.EventID)
	assert.NoError(t, err)
	assert.Equal(t, OrderCreatedEvent, event.EventType)
	assert.Equal(t, int64(42), event.EventTimestamp)
	assert.Equal(t, OrderEventDTO{
		ID:         7,
		UserID:     1,
		ProductID:  2,
		Quantity:   3,
		TotalPrice: 59.97,
		UserEmail:  "user_1@eemi.com",
		Product:    "Widget",
	}, event.Order)
}

func TestProducer_UniqueEventIDs(t *testing.T) {
	p := newTestProducer(&fakeWriter{})

	first, err := p.GetPayloadBytes(testOrder())
	require.NoError(t, err)
	second, err := p.GetPayloadBytes(testOrder())
	require.NoError(t, err)

	var a, b OrderEvent
	require.NoError(t, json.Unmarshal(first, &a))
	require.NoError(t, json.Unmarshal(second, &b))
	assert.NotEqual(t, a.EventID, b.EventID)
}

func TestProducer_WriteError(t *testing.T) {
	writeErr := errors.New("broker unavailable")
	p := newTestProducer(&fakeWriter{err: writeErr})

	err := p.PublishOrderCreated(context.Background(), testOrder())
	assert.ErrorIs(t, err, writeErr)
}

func TestProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, newTestProducer(w).Close())
	assert.True(t, w.closed)
}

func TestNewWriter_DoesNotWaitForBatch(t *testing.T) {
	log := logger.NewSlogLoggerWithHandler(slog.NewTextHandler(io.Discard, nil))
	w := newWriter(log, &cfg.KafkaCfg{Topic: "orders", Brokers: []string{"localhost:9092"}})

	assert.True(t, w.Async)
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	assert.NotNil(t, w.Completion)
}

func TestProducer_PublishBoundedByTimeout(t *testing.T) {
	p := newTestProducer(&fakeWriter{blockUntilDone: true})
	p.publishTimeout = 20 * time.Millisecond

	start := time.Now()
	err := p.PublishOrderCreated(context.Background(), testOrder())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
