package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"shopeasy/internal/domain"
)

const eventFavoritesSnapshot = "favorites_snapshot"

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// RabbitMQ publishes favorites snapshots to a durable direct exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
	now        func() time.Time
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger = logger.With("component", "publisher")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

type FavoriteItem struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category *string `json:"category,omitempty"`
	SavedAt  int64   `json:"saved_at"`
}

// FavoritesMessage carries the complete favorites list after a change.
type FavoritesMessage struct {
	Event     string         `json:"event"`
	Count     int            `json:"count"`
	Favorites []FavoriteItem `json:"favorites"`
	Timestamp time.Time      `json:"timestamp"`
}

func newFavoritesMessage(favs []domain.Favorite, at time.Time) FavoritesMessage {
	items := make([]FavoriteItem, len(favs))
	for i, f := range favs {
		items[i] = FavoriteItem{
			ID:       f.ID,
			Title:    f.Title,
			Price:    f.Price,
			Category: f.Category,
			SavedAt:  f.SavedAt.UnixMilli(),
		}
	}
	return FavoritesMessage{
		Event:     eventFavoritesSnapshot,
		Count:     len(items),
		Favorites: items,
		Timestamp: at.UTC(),
	}
}

func (r *RabbitMQ) PublishFavorites(ctx context.Context, favs []domain.Favorite) error {
	now := r.now()
	body, err := json.Marshal(newFavoritesMessage(favs, now))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	msgID := uuid.NewString()
	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			MessageId:    msgID,
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         eventFavoritesSnapshot,
			Body:         body,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published favorites snapshot", "message_id", msgID, "count", len(favs))
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
