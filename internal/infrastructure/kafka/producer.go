package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/store-api/internal/cfg"
	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const OrderCreatedEvent = "order.created"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	defaultPublishTimeout = time.Second
	batchTimeout          = 10 * time.Millisecond
)

// Producer отправляет события о заказах в Kafka.
type Producer struct {
	writer         messageWriter
	logger         logger.Logger
	cfg            *cfg.KafkaCfg
	now            func() time.Time
	publishTimeout time.Duration
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	return newProducer(newWriter(logger, cfg), logger, cfg)
}

// newWriter создаёт асинхронный writer: WriteMessages не ждёт доставки пачки,
// ошибки доставки приходят в Completion.
func newWriter(logger logger.Logger, cfg *cfg.KafkaCfg) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    10,
		BatchTimeout: batchTimeout,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %d messages lost: %s", len(messages), err.Error())
			}
		},
	}
}

func newProducer(writer messageWriter, logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	return &Producer{
		writer:         writer,
		logger:         logger,
		cfg:            cfg,
		now:            time.Now,
		publishTimeout: defaultPublishTimeout,
	}
}

// OrderEvent — JSON-полезная нагрузка события о заказе.
type OrderEvent struct {
	EventID        string        `json:"event_id"`
	EventType      string        `json:"event_type"`
	EventTimestamp int64         `json:"event_timestamp"`
	Order          OrderEventDTO `json:"order"`
}

type OrderEventDTO struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	ProductID  int64   `json:"product_id"`
	Quantity   int64   `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	UserEmail  string  `json:"user_email"`
	Product    string  `json:"product_name"`
}

// PublishOrderCreated ставит событие order.created в очередь writer'а. Ключ сообщения — id заказа.
// Ожидание ограничено publishTimeout: поиск метаданных топика может упереться в недоступный брокер.
func (p *Producer) PublishOrderCreated(ctx context.Context, order *domain.OrderDetails) error {
	value, err := p.GetPayloadBytes(order)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(order.Order.ID, 10)),
		Value: value,
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *Producer) GetPayloadBytes(order *domain.OrderDetails) ([]byte, error) {
	event := &OrderEvent{
		EventID:        uuid.NewString(),
		EventType:      OrderCreatedEvent,
		EventTimestamp: p.now().UnixNano(),
		Order: OrderEventDTO{
			ID:         order.Order.ID,
			UserID:     order.Order.UserID,
			ProductID:  order.Order.ProductID,
			Quantity:   order.Order.Quantity,
			TotalPrice: order.Order.TotalPrice,
			UserEmail:  order.User.Email,
			Product:    order.Product.Name,
		},
	}

	return json.Marshal(event)
}

// EnsureTopic создаёт топик, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда Kafka не настроена.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, *domain.OrderDetails) error { return nil }
