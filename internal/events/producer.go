package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mealio/food-order-service/internal/config"
	"github.com/mealio/food-order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

const (
	TypeOrderPlaced        = "order.placed"
	TypeOrderStatusChanged = "order.status_changed"
)

// OrderEvent is published after an order mutation commits. Downstream
// consumers (kitchen display, notifications) key on the order id.
type OrderEvent struct {
	Type          string `json:"type"`
	OrderID       string `json:"order_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	TotalPrice    string `json:"total_price"`
	PaymentMethod string `json:"payment_method"`
	At            int64  `json:"at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg config.Kafka) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Producer) PublishOrderEvent(ctx context.Context, eventType string, order entities.Order) error {
	event := OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Status:        string(order.Status),
		TotalPrice:    order.TotalPrice.String(),
		PaymentMethod: string(order.PaymentMethod),
		At:            time.Now().UnixMilli(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
