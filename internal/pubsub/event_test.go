package pubsub

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/mauv0809/bnr-rates/internal/bnr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_EncodeDecode(t *testing.T) {
	b := &bnr.Bulletin{
		Date: civil.Date{Year: 2024, Month: 1, Day: 15},
		Rates: []bnr.Rate{
			{Currency: "USD", Value: decimal.RequireFromString("4.5000")},
			{Currency: "JPY", Value: decimal.RequireFromString("3.2000"), Multiplier: 100},
		},
	}

	ev := NewEvent(b)
	assert.Equal(t, "2024-01-15", ev.Date)
	require.Len(t, ev.Rates, 2)
	assert.Equal(t, RateEvent{Currency: "USD", Value: "4.5", Normalized: 4.5}, ev.Rates[0])
	assert.Equal(t, RateEvent{Currency: "JPY", Value: "3.2", Multiplier: 100, Normalized: 320}, ev.Rates[1])

	data, err := Encode(ev)
	require.NoError(t, err)

	var decoded BulletinEvent
	require.NoError(t, Decode(data, &decoded))
	assert.Equal(t, ev, decoded)
}

func TestDecode_Garbage(t *testing.T) {
	var decoded BulletinEvent
	assert.Error(t, Decode([]byte{0xc1}, &decoded))
}
