package merge

import (
	"testing"
	"time"
)

func TestPlanWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last int64
		want int
	}{
		{"no prior data", 0, MaxWindowDays},
		{"ten days behind", now.AddDate(0, 0, -10).Unix(), 12},
		{"up to date yesterday", now.AddDate(0, 0, -1).Unix(), 3},
		{"far behind clamps to ceiling", now.AddDate(0, 0, -400).Unix(), MaxWindowDays},
		{"exactly at ceiling", now.AddDate(0, 0, -363).Unix(), MaxWindowDays},
		{"clock skew clamps to one", now.AddDate(0, 0, 30).Unix(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanWindow(tt.last, now)
			if got != tt.want {
				t.Fatalf("PlanWindow(%d) = %d, want %d", tt.last, got, tt.want)
			}
			if got < 1 || got > MaxWindowDays {
				t.Fatalf("window %d outside [1, %d]", got, MaxWindowDays)
			}
		})
	}
}
