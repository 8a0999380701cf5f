// Package timebar implements the range selection to graph filter pipeline.
package timebar

import (
	"math"

	"go.trai.ch/timebar/internal/core/domain"
)

// MapToIndices converts a normalized range into inclusive positions over a
// series of the given length. Max is clamped to length-1 so the last record
// is always included instead of overflowing. Min is only pulled back onto Max
// when Start lands past the last record. It reports false when length is zero.
func MapToIndices(r domain.NormalizedRange, length int) (domain.IndexRange, bool) {
	if length <= 0 {
		return domain.IndexRange{}, false
	}

	n := float64(length)
	idx := domain.IndexRange{
		Min: int(math.Round(n * r.Start)),
		Max: int(math.Round(n * r.End)),
	}
	if idx.Max >= length {
		idx.Max = length - 1
	}
	if idx.Min > idx.Max {
		idx.Min = idx.Max
	}
	return idx, true
}

// MapToDates looks up the dates at both ends of idx.
// idx must lie within the series; see MapToIndices.
func MapToDates(idx domain.IndexRange, s domain.Series) domain.DateRange {
	return domain.DateRange{
		Min: s[idx.Min].Date,
		Max: s[idx.Max].Date,
	}
}

// Resolve maps r over s to both the index and the date range.
// It reports false without touching the series when s is empty.
func Resolve(s domain.Series, r domain.NormalizedRange) (domain.IndexRange, domain.DateRange, bool) {
	idx, ok := MapToIndices(r, s.Len())
	if !ok {
		return domain.IndexRange{}, domain.DateRange{}, false
	}
	return idx, MapToDates(idx, s), true
}
