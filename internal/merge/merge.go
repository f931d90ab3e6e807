package merge

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"tao-data/internal/model"
)

// ErrShrunk enforces the non-shrinkage invariant: a merged dataset may never
// hold fewer points than the stored one. The filters above make a violation
// theoretically impossible; this check still runs before every write as the
// last line of defense.
var ErrShrunk = errors.New("merged dataset is smaller than the stored dataset")

// Merge folds raw API samples into the existing dataset. Samples for the
// current UTC day and for days already stored are dropped, so the remote
// value never replaces a stored one and re-fetching is idempotent. Returns
// the candidate dataset, sorted ascending, and the number of points appended.
func Merge(existing model.Dataset, raw []model.RawPoint, now time.Time) (model.Dataset, int, error) {
	seen := existing.Days()
	today := model.DayOf(now.UTC().Unix())

	merged := make(model.Dataset, len(existing), len(existing)+len(raw))
	copy(merged, existing)

	added := 0
	for _, r := range raw {
		p := r.Point()
		day := p.Day()
		if day == today {
			continue // current day's candle is incomplete
		}
		if _, ok := seen[day]; ok {
			continue
		}
		merged = append(merged, p)
		seen[day] = struct{}{}
		added++
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Timestamp < merged[j].Timestamp })

	if len(merged) < len(existing) {
		return nil, 0, fmt.Errorf("%w: %d < %d", ErrShrunk, len(merged), len(existing))
	}
	return merged, added, nil
}

// Validate checks the structural invariants of a stored dataset: strictly
// ascending timestamps, at most one point per UTC day, and no entry for the
// current (in-progress) day.
func Validate(ds model.Dataset, now time.Time) error {
	today := model.DayOf(now.UTC().Unix())
	seen := make(map[string]struct{}, len(ds))
	for i, p := range ds {
		if i > 0 && p.Timestamp <= ds[i-1].Timestamp {
			return fmt.Errorf("entry %d: timestamp %d not after %d", i, p.Timestamp, ds[i-1].Timestamp)
		}
		day := p.Day()
		if day == today {
			return fmt.Errorf("entry %d: holds the in-progress day %s", i, day)
		}
		if _, ok := seen[day]; ok {
			return fmt.Errorf("entry %d: duplicate day %s", i, day)
		}
		seen[day] = struct{}{}
	}
	return nil
}
