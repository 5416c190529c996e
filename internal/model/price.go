package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// PricePrecision is the number of decimal places kept in persisted prices.
const PricePrecision = 4

// Price is an optional closing price. The zero value is null.
type Price struct {
	Value float64
	Valid bool
}

// Null is the missing observation.
var Null = Price{}

// Some returns a valid price. Non-finite values are treated as missing.
func Some(v float64) Price {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null
	}
	return Price{Value: v, Valid: true}
}

// PriceFrom converts a raw provider value (decoded JSON) into a Price.
// Anything that is not a finite number becomes null.
func PriceFrom(v interface{}) Price {
	switch n := v.(type) {
	case nil:
		return Null
	case float64:
		return Some(n)
	case float32:
		return Some(float64(n))
	case int:
		return Some(float64(n))
	case int64:
		return Some(float64(n))
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return Null
		}
		return Some(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return Null
		}
		return Some(f)
	default:
		return Null
	}
}

// Round returns p rounded half away from zero to PricePrecision places.
func (p Price) Round() Price {
	if !p.Valid {
		return Null
	}
	f, _ := decimal.NewFromFloat(p.Value).Round(PricePrecision).Float64()
	return Price{Value: f, Valid: true}
}

func (p Price) String() string {
	if !p.Valid {
		return "null"
	}
	return strconv.FormatFloat(p.Value, 'f', -1, 64)
}

// MarshalJSON encodes a missing price as null.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(p.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a number or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = Null
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid price %s: %w", data, err)
	}
	*p = Some(f)
	return nil
}
