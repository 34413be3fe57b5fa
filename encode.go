package tripsplit

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTrip serializes the whole trip document.
func EncodeTrip(t *Trip) ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("could not encode trip %q: %w", t.Name, err)
	}
	return data, nil
}

// DecodeTrip parses a stored trip document.
func DecodeTrip(data []byte) (*Trip, error) {
	var t Trip
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("could not decode trip document: %w", err)
	}
	if t.Bills == nil {
		t.Bills = []Bill{}
	}
	return &t, nil
}
