package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/vendora/order-service/internal/config"
	"github.com/vendora/order-service/internal/entities"
	"github.com/vendora/order-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

var notificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "marketplace_orders",
	Subsystem: "notifier",
	Name:      "failed_total",
	Help:      "Total number of order event notifications that could not be published.",
}, []string{"event"})

// orderEvent is the envelope published to the order events topic.
type orderEvent struct {
	Event          string    `json:"event"`
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	CustomerID     string    `json:"customer_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalAmount    string    `json:"total_amount"`
	Currency       string    `json:"currency"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// KafkaNotifier publishes order events best-effort: publishing happens in a
// background goroutine and failures are logged and counted, never returned.
type KafkaNotifier struct {
	logger       *slog.Logger
	writer       *kafka.Writer
	writeTimeout time.Duration
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	return &KafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		writeTimeout: cfg.WriteTimeout,
	}
}

func (n *KafkaNotifier) OrderCreated(ctx context.Context, order entities.Order) {
	n.publish(ctx, orderEvent{
		Event:       EventOrderCreated,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID.String(),
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.String(),
		Currency:    order.Currency,
		OccurredAt:  time.Now().UTC(),
	})
}

func (n *KafkaNotifier) OrderStatusChanged(ctx context.Context, order entities.Order, previous entities.OrderStatus) {
	n.publish(ctx, orderEvent{
		Event:          EventOrderStatusChanged,
		OrderID:        order.ID.String(),
		OrderNumber:    order.OrderNumber,
		CustomerID:     order.CustomerID.String(),
		Status:         string(order.Status),
		PreviousStatus: string(previous),
		TotalAmount:    order.TotalAmount.String(),
		Currency:       order.Currency,
		OccurredAt:     time.Now().UTC(),
	})
}

func (n *KafkaNotifier) publish(ctx context.Context, event orderEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("failed to marshal order event", slog.Any("error", err))
		notificationsFailed.WithLabelValues(event.Event).Inc()
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	}

	go func() {
		ctx, cancel := context.WithTimeout(ctx, n.writeTimeout)
		defer cancel()

		cfg := utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 50 * time.Millisecond,
			Multiplier:   2,
		}
		err := utils.Retry(cfg, func() error {
			return n.writer.WriteMessages(ctx, msg)
		})
		if err != nil {
			n.logger.Error("failed to publish order event",
				slog.String("event", event.Event),
				slog.String("order_id", event.OrderID),
				slog.Any("error", err),
			)
			notificationsFailed.WithLabelValues(event.Event).Inc()
		}
	}()
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
