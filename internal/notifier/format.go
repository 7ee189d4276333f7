package notifier

import (
	"fmt"
	"strings"

	"github.com/mauv0809/bnr-rates/internal/bnr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFilter is a set of uppercase currency codes. A nil filter allows everything.
type CurrencyFilter map[string]struct{}

// ParseCurrencies parses a comma-separated list such as "usd, EUR".
// It returns nil when no code is given.
func ParseCurrencies(list string) CurrencyFilter {
	var filter CurrencyFilter
	for _, part := range strings.Split(list, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code == "" {
			continue
		}
		if filter == nil {
			filter = make(CurrencyFilter)
		}
		filter[code] = struct{}{}
	}
	return filter
}

// Allows reports whether code passes the filter, ignoring case and surrounding space.
func (f CurrencyFilter) Allows(code string) bool {
	if f == nil {
		return true
	}
	_, ok := f[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Codes returns the filter's codes in no particular order.
func (f CurrencyFilter) Codes() []string {
	codes := make([]string, 0, len(f))
	for c := range f {
		codes = append(codes, c)
	}
	return codes
}

var printer = message.NewPrinter(language.English)

// FormatMessage renders the bulletin for a chat channel using the raw published values.
// The second return value is false when no rate passes the filter.
func FormatMessage(b *bnr.Bulletin, filter CurrencyFilter) (string, bool) {
	var lines []string
	for _, r := range b.Rates {
		if !filter.Allows(r.Currency) {
			continue
		}
		line := printer.Sprintf("%s: %.4f RON", r.Currency, r.Value.InexactFloat64())
		if r.HasMultiplier() {
			line += fmt.Sprintf(" / %d units", r.Multiplier)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "", false
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏦 BNR Exchange Rates - %s\n\n", b.Date)
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String(), true
}
