package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a decimal amount that tolerates the loose shapes found in remote
// and legacy local data: a JSON number, a numeric string, or a string with a
// leading currency rune. Anything unparsable decodes as zero; decoding a
// price never fails.
type Price struct {
	decimal.Decimal
}

func NewPrice(s string) Price {
	d, err := decimal.NewFromString(strings.TrimLeft(strings.TrimSpace(s), "₹"))
	if err != nil {
		return Price{}
	}
	return Price{d}
}

func (p *Price) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		p.Decimal = decimal.Decimal{}
		return nil
	}
	switch value := v.(type) {
	case float64:
		p.Decimal = decimal.NewFromFloat(value)
	case string:
		*p = NewPrice(value)
	default:
		p.Decimal = decimal.Decimal{}
	}
	return nil
}

// Rating is a 0-5 product rating that decodes from either a JSON number or
// a numeric string. A numeric zero is a real rating and survives
// normalization; unparsable values decode as -1 and are replaced by the
// default at normalization.
type Rating float64

func (r *Rating) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*r = -1
		return nil
	}
	switch value := v.(type) {
	case float64:
		*r = Rating(value)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			*r = -1
			return nil
		}
		*r = Rating(f)
	default:
		*r = -1
	}
	return nil
}
