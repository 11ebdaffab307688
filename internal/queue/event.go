// Package queue defines message payloads exchanged over the message broker
// and the consumers that feed sold seats into open seat maps.
package queue

import (
    "encoding/json"
    "errors"
    "fmt"
)

// Queue and subject names.
const (
    SoldQueueName     = "seats.sold"
    CheckoutQueueName = "seats.checkout"
)

// SeatsSoldEvent announces seats of a match that were sold elsewhere. Seat
// numbers are table indices, zero based. Re-delivery is harmless since
// marking a seat sold twice is a no-op.
type SeatsSoldEvent struct {
    MatchID string `json:"match_id"`
    Seats   []int  `json:"seats"`
    SoldAt  string `json:"sold_at,omitempty"`
}

// CheckoutRequestedEvent hands a viewer's selection to the order pipeline.
// Seats holds table indices; SeatNumbers the same seats 1-based as shown
// to the viewer.
type CheckoutRequestedEvent struct {
    RequestID   string `json:"request_id"`
    SessionID   string `json:"session_id"`
    ViewerID    string `json:"viewer_id"`
    MatchID     string `json:"match_id"`
    Seats       []int  `json:"seats"`
    SeatNumbers []int  `json:"seat_numbers"`
    RequestedAt string `json:"requested_at"`
}

var ErrMalformedEvent = errors.New("malformed event")

// DecodeSeatsSold parses and validates a seats.sold payload.
func DecodeSeatsSold(body []byte) (SeatsSoldEvent, error) {
    var ev SeatsSoldEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return ev, fmt.Errorf("unmarshal: %w", err)
    }
    if ev.MatchID == "" {
        return ev, fmt.Errorf("%w: match_id is required", ErrMalformedEvent)
    }
    return ev, nil
}
