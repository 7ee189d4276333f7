package pubsub

import (
	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/bnr-rates/internal/bnr"
)

type client struct {
	client *pubsub.Client
}

// BulletinEvent is the wire form of a bulletin published to subscribers.
type BulletinEvent struct {
	Date  string      `msgpack:"date"`
	Rates []RateEvent `msgpack:"rates"`
}

// RateEvent carries the published value as a decimal string plus its normalized float.
type RateEvent struct {
	Currency   string  `msgpack:"currency"`
	Value      string  `msgpack:"value"`
	Multiplier int     `msgpack:"multiplier,omitempty"`
	Normalized float64 `msgpack:"normalized"`
}

// NewEvent converts a bulletin into its event form, keeping document order.
func NewEvent(b *bnr.Bulletin) BulletinEvent {
	ev := BulletinEvent{
		Date:  b.Date.String(),
		Rates: make([]RateEvent, 0, len(b.Rates)),
	}
	for _, r := range b.Rates {
		ev.Rates = append(ev.Rates, RateEvent{
			Currency:   r.Currency,
			Value:      r.Value.String(),
			Multiplier: r.Multiplier,
			Normalized: r.Normalized().InexactFloat64(),
		})
	}
	return ev
}
