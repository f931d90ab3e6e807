package merge

import "time"

const (
	// MaxWindowDays is the retention ceiling of the remote source's free tier.
	MaxWindowDays = 365

	// bufferDays tolerates boundary rounding and late-arriving daily candles.
	bufferDays = 2
)

// PlanWindow computes how many days of history to request, based on the most
// recent stored timestamp. With no prior data the full window is requested.
// The result is always in [1, MaxWindowDays].
func PlanWindow(lastTimestamp int64, now time.Time) int {
	if lastTimestamp <= 0 {
		return MaxWindowDays
	}
	elapsed := int(now.UTC().Sub(time.Unix(lastTimestamp, 0).UTC()).Hours() / 24)
	days := elapsed + bufferDays
	if days > MaxWindowDays {
		days = MaxWindowDays
	}
	if days < 1 {
		days = 1
	}
	return days
}
