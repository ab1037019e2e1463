/**
 * @description
 * Wire-format adapters shared by the domain value types. The API transmits
 * money as integers in minor currency units (kopecks, cents) and instants as
 * Unix epoch seconds; these types normalize both at decode time and restore
 * the exact wire representation at encode time, so a parsed payload
 * re-serializes byte-compatibly.
 *
 * @dependencies
 * - github.com/shopspring/decimal: exact decimal arithmetic for money.
 */
package monoclient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a money value in major currency units, decoded from the API's
// minor-unit integer representation (wire value divided by 100).
type Amount struct {
	decimal.Decimal
}

// AmountFromMinor builds an Amount from a minor-unit integer.
func AmountFromMinor(v int64) Amount {
	return Amount{Decimal: decimal.New(v, -2)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var minor int64
	if err := json.Unmarshal(data, &minor); err != nil {
		return fmt.Errorf("amount must be a minor-unit integer: %w", err)
	}
	a.Decimal = decimal.New(minor, -2)
	return nil
}

// MarshalJSON restores the minor-unit integer the value was decoded from.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Decimal.Shift(2).IntPart())
}

// UnixTime is an absolute UTC instant decoded from Unix epoch seconds.
type UnixTime struct {
	time.Time
}

func (t *UnixTime) UnmarshalJSON(data []byte) error {
	var epoch int64
	if err := json.Unmarshal(data, &epoch); err != nil {
		return fmt.Errorf("time must be epoch seconds: %w", err)
	}
	t.Time = time.Unix(epoch, 0).UTC()
	return nil
}

func (t UnixTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Unix())
}
