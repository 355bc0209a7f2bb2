/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package quiz

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Number is an integer field from a client payload. It accepts JSON numbers,
// numeric strings and anything else cast can convert. Unreadable values leave
// it invalid rather than rejecting the whole payload.
type Number struct {
	Value int
	Valid bool
}

// Int returns a valid Number for v.
func Int(v int) Number {
	return Number{Value: v, Valid: true}
}

// Or returns the value, or def if the field was missing or unreadable.
func (n Number) Or(def int) int {
	if !n.Valid {
		return def
	}
	return n.Value
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*n = Number{}
		return nil
	}

	v, err := cast.ToIntE(raw)
	if err != nil {
		*n = Number{}
		return nil
	}

	*n = Number{Value: v, Valid: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}
