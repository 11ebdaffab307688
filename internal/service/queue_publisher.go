// Package service publishes domain events to RabbitMQ.
package service

import (
    "context"
    "encoding/json"
    "fmt"
    "log/slog"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    q "github.com/pitchside/seatmap/internal/queue"
)

// CheckoutPublisher sends committed selections to the seats.checkout queue.
// It dials per publish, so a broker outage fails one checkout and never the
// server.
type CheckoutPublisher struct {
    URL   string
    Queue string
    Log   *slog.Logger
}

// NewCheckoutPublisher returns a publisher for url and the default queue.
func NewCheckoutPublisher(url string, logger *slog.Logger) *CheckoutPublisher {
    if logger == nil {
        logger = slog.Default()
    }
    return &CheckoutPublisher{URL: url, Queue: q.CheckoutQueueName, Log: logger}
}

// PublishCheckout marshals ev and publishes it as a persistent message.
// Errors are logged and returned.
func (p *CheckoutPublisher) PublishCheckout(ctx context.Context, ev q.CheckoutRequestedEvent) error {
    body, err := json.Marshal(ev)
    if err != nil {
        return fmt.Errorf("marshal event: %w", err)
    }

    conn, err := amqp.Dial(p.URL)
    if err != nil {
        p.Log.Error("rabbitmq dial failed", "err", err)
        return fmt.Errorf("dial: %w", err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        p.Log.Error("rabbitmq channel open failed", "err", err)
        return fmt.Errorf("channel: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(p.Queue, true, false, false, false, nil); err != nil {
        p.Log.Error("rabbitmq queue declare failed", "queue", p.Queue, "err", err)
        return fmt.Errorf("queue declare: %w", err)
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        MessageId:    ev.RequestID,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", p.Queue, false, false, pub); err != nil {
        p.Log.Error("rabbitmq publish failed", "queue", p.Queue, "err", err)
        return fmt.Errorf("publish: %w", err)
    }
    p.Log.Info("checkout published", "request_id", ev.RequestID, "match_id", ev.MatchID, "seats", len(ev.Seats))
    return nil
}
