// Package events publishes order lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/order"
)

const (
	DefaultTopic     = "order_events"
	TypeOrderPlaced  = "order.placed"
	publishTimeout   = 5 * time.Second
	breakerOpenFor   = 30 * time.Second
	breakerThreshold = 5
)

// OrderPlacedEvent is the message body. The order id is also the Kafka key.
type OrderPlacedEvent struct {
	Type          string          `json:"type"`
	OrderID       string          `json:"order_id"`
	CustomerEmail string          `json:"customer_email"`
	CustomerName  string          `json:"customer_name"`
	Lines         int             `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes order events through a circuit breaker so an
// unreachable broker costs one fast failure per request instead of a timeout.
type KafkaPublisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
}

var _ order.Publisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(log *zap.Logger, topic string, brokers ...string) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, log)
}

func newKafkaPublisher(w messageWriter, log *zap.Logger) *KafkaPublisher {
	st := gobreaker.Settings{
		Name:    "kafka-order-events",
		Timeout: breakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &KafkaPublisher{
		writer:  w,
		breaker: gobreaker.NewCircuitBreaker[struct{}](st),
	}
}

func (p *KafkaPublisher) OrderPlaced(ctx context.Context, o domain.Order) error {
	payload, err := json.Marshal(OrderPlacedEvent{
		Type:          TypeOrderPlaced,
		OrderID:       o.ID,
		CustomerEmail: o.Customer.Email,
		CustomerName:  o.Customer.FullName,
		Lines:         len(o.Items),
		Total:         o.Total,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		return struct{}{}, p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(o.ID),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "type", Value: []byte(TypeOrderPlaced)},
			},
		})
	})
	if err != nil {
		return fmt.Errorf("kafka: publish %s: %w", o.ID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
