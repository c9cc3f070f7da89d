package timestamp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Millis is a Unix timestamp in milliseconds.
//
// It crosses the JSON boundary as a decimal string so the full int64 range
// survives transport exactly. Clients that send bare JSON numbers are still
// accepted on input; output is always a string. This is the single
// serialization policy for every endpoint.
type Millis int64

// Now returns the current time as Millis.
func Now() Millis {
	return FromTime(time.Now())
}

// FromTime converts a time.Time to Millis.
func FromTime(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

// Time converts back to a time.Time in the local location.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

// IsZero reports whether the timestamp is unset.
func (m Millis) IsZero() bool {
	return m == 0
}

// MarshalJSON encodes the value as a quoted decimal string.
func (m Millis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(m), 10))), nil
}

// UnmarshalJSON accepts either a decimal string or a bare JSON number.
func (m *Millis) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp must be a millisecond integer: %w", err)
	}
	*m = Millis(n)
	return nil
}
