// utils/time_utils.go
package utils

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastIDMillis atomic.Int64

// NowUTC is the clock used for created_at / updated_at.
var NowUTC = func() time.Time { return time.Now().UTC() }

// NextMillis returns the current unix time in milliseconds, bumped so that
// two calls in the same process never return the same value.
func NextMillis() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastIDMillis.Load()
		if now <= last {
			now = last + 1
		}
		if lastIDMillis.CompareAndSwap(last, now) {
			return now
		}
	}
}

// NewTimestampID builds ids of the form "<prefix>-<millis>".
func NewTimestampID(prefix string) string {
	return prefix + "-" + strconv.FormatInt(NextMillis(), 10)
}

func NewPlanID() string    { return NewTimestampID("plan") }
func NewExpenseID() string { return NewTimestampID("expense") }

// ParseISODate accepts either a full RFC 3339 timestamp or a bare YYYY-MM-DD date.
func ParseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
