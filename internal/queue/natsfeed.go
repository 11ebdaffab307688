package queue

import (
    "fmt"
    "log/slog"
    "time"

    "github.com/nats-io/nats.go"
)

// ConnectNATS dials url with reconnect options suited to a long-lived feed.
func ConnectNATS(url, name string, logger *slog.Logger) (*nats.Conn, error) {
    if logger == nil {
        logger = slog.Default()
    }
    if url == "" {
        url = nats.DefaultURL
    }
    log := logger.With("component", "nats")
    opts := []nats.Option{
        nats.Name(name),
        nats.MaxReconnects(-1),
        nats.ReconnectWait(2 * time.Second),
        nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
            log.Warn("disconnected", "err", err)
        }),
        nats.ReconnectHandler(func(nc *nats.Conn) {
            log.Info("reconnected", "url", nc.ConnectedUrl())
        }),
        nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
            log.Error("async error", "err", err)
        }),
    }
    nc, err := nats.Connect(url, opts...)
    if err != nil {
        return nil, fmt.Errorf("nats connect: %w", err)
    }
    if !nc.IsConnected() {
        nc.Close()
        return nil, fmt.Errorf("nats connection not established")
    }
    return nc, nil
}

// SubscribeSoldNATS subscribes to subject (default seats.sold) and applies
// each valid message. Bad payloads are logged and dropped.
func SubscribeSoldNATS(nc *nats.Conn, subject string, apply SoldHandler, logger *slog.Logger) (*nats.Subscription, error) {
    if logger == nil {
        logger = slog.Default()
    }
    if subject == "" {
        subject = SoldQueueName
    }
    sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
        if err := HandleSoldMessage(msg.Data, apply); err != nil {
            logger.Warn("drop sold message", "subject", msg.Subject, "err", err)
        }
    })
    if err != nil {
        return nil, fmt.Errorf("nats subscribe %s: %w", subject, err)
    }
    return sub, nil
}
