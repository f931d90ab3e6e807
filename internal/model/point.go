package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Point is one completed day's closing price. It is persisted as the
// two-element JSON array [timestamp_seconds, price], shared by store and
// saver serialization.
type Point struct {
	Timestamp int64
	Price     float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Timestamp, p.Price})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [timestamp, price] pair, got %d elements", len(pair))
	}
	p.Timestamp = int64(pair[0])
	p.Price = pair[1]
	return nil
}

// Day returns the point's UTC calendar date key (YYYY-MM-DD).
func (p Point) Day() string { return DayOf(p.Timestamp) }

// DayOf converts a unix timestamp in seconds to its UTC calendar date key.
// Both the dedup index and the current-day filter go through this one
// derivation so they can never disagree on time zone handling.
func DayOf(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(dayLayout)
}

// RawPoint is a sample as returned by the market API: millisecond timestamp
// and price, in arbitrary order, possibly for days already stored.
type RawPoint struct {
	TimestampMS int64
	Price       float64
}

// Point converts the raw sample to the persisted second-resolution form.
func (r RawPoint) Point() Point {
	return Point{Timestamp: r.TimestampMS / 1000, Price: r.Price}
}

// Dataset is the full known history for one asset/currency pair, sorted
// ascending by timestamp with at most one point per UTC day.
type Dataset []Point

// Last returns the most recent timestamp, or 0 when the dataset is empty.
func (d Dataset) Last() int64 {
	if len(d) == 0 {
		return 0
	}
	return d[len(d)-1].Timestamp
}

// Days returns the set of UTC calendar dates already present.
func (d Dataset) Days() map[string]struct{} {
	days := make(map[string]struct{}, len(d))
	for _, p := range d {
		days[p.Day()] = struct{}{}
	}
	return days
}
