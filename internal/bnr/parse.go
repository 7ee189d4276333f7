package bnr

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// namespaceStripper removes the declarations BNR puts on the root element.
var namespaceStripper = strings.NewReplacer(
	`xmlns="http://www.bnr.ro/xsd"`, "",
	`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`, "",
	`xsi:schemaLocation="http://www.bnr.ro/xsd nbrfxrates.xsd"`, "",
)

// ParseBulletin turns a raw nbrfxrates.xml document into a validated Bulletin.
// Only the first Cube is read; the daily feed carries exactly one.
func ParseBulletin(data []byte) (*Bulletin, error) {
	if !utf8.Valid(data) {
		return nil, parseError("document is not valid UTF-8")
	}
	doc := namespaceStripper.Replace(string(data))

	cube, err := findCube(xml.NewDecoder(strings.NewReader(doc)))
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cube.Date) == "" {
		return nil, parseError("Cube element has no date attribute")
	}
	date, err := civil.ParseDate(strings.TrimSpace(cube.Date))
	if err != nil {
		return nil, parseError("invalid bulletin date %q: %w", cube.Date, err)
	}

	bulletin := &Bulletin{
		Date:  date,
		Rates: make([]Rate, 0, len(cube.Rates)),
	}
	seen := make(map[string]struct{}, len(cube.Rates))
	for i, raw := range cube.Rates {
		rate, err := raw.toRate()
		if err != nil {
			return nil, parseError("rate #%d: %w", i+1, err)
		}
		if _, dup := seen[rate.Currency]; dup {
			return nil, parseError("duplicate currency %s", rate.Currency)
		}
		seen[rate.Currency] = struct{}{}
		bulletin.Rates = append(bulletin.Rates, rate)
	}
	return bulletin, nil
}

func findCube(dec *xml.Decoder) (*xmlCube, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, parseError("no Cube element found")
		}
		if err != nil {
			return nil, parseError("malformed XML: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "Cube" {
			continue
		}
		var cube xmlCube
		if err := dec.DecodeElement(&cube, &start); err != nil {
			return nil, parseError("malformed Cube element: %w", err)
		}
		return &cube, nil
	}
}

func (r xmlRate) toRate() (Rate, error) {
	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		return Rate{}, errors.New("missing currency attribute")
	}

	text := strings.TrimSpace(r.Value)
	if text == "" {
		return Rate{}, fmt.Errorf("%s: missing rate value", currency)
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return Rate{}, fmt.Errorf("%s: invalid rate value %q", currency, text)
	}
	if !value.IsPositive() {
		return Rate{}, fmt.Errorf("%s: rate value must be positive", currency)
	}

	rate := Rate{Currency: currency, Value: value}
	if m := strings.TrimSpace(r.Multiplier); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n <= 0 {
			return Rate{}, fmt.Errorf("%s: invalid multiplier %q", currency, m)
		}
		rate.Multiplier = n
	}
	return rate, nil
}
