package bnr

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Rate is one currency line of a bulletin.
type Rate struct {
	Currency string
	Value    decimal.Decimal
	// Multiplier is 0 when the feed does not carry the attribute.
	Multiplier int
}

// HasMultiplier reports whether the published value applies to more than one unit.
func (r Rate) HasMultiplier() bool {
	return r.Multiplier > 0
}

// Units returns the quantity the published value applies to.
func (r Rate) Units() int {
	if r.Multiplier > 0 {
		return r.Multiplier
	}
	return 1
}

// Normalized returns Value * Units.
func (r Rate) Normalized() decimal.Decimal {
	return r.Value.Mul(decimal.NewFromInt(int64(r.Units())))
}

// Bulletin is one day's published set of rates, in document order.
type Bulletin struct {
	Date      civil.Date
	Rates     []Rate
	FetchedAt time.Time
}

// Currencies returns the currency codes in document order.
func (b *Bulletin) Currencies() []string {
	codes := make([]string, 0, len(b.Rates))
	for _, r := range b.Rates {
		codes = append(codes, r.Currency)
	}
	return codes
}

// UpdateTimestamp returns the bulletin date at midnight UTC as unix seconds.
func (b *Bulletin) UpdateTimestamp() int64 {
	return b.Date.In(time.UTC).Unix()
}

// xmlCube mirrors a <Cube> element of nbrfxrates.xml.
type xmlCube struct {
	Date  string    `xml:"date,attr"`
	Rates []xmlRate `xml:"Rate"`
}

type xmlRate struct {
	Currency   string `xml:"currency,attr"`
	Multiplier string `xml:"multiplier,attr"`
	Value      string `xml:",chardata"`
}
