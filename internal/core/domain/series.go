// Package domain contains the core models of the time bar: the time series,
// the range types derived from it, and the graph snapshots it filters.
package domain

// Record is a single dated sample of a time series.
type Record struct {
	Date  string
	Value float64
}

// Series is an ordered sequence of records backing the trend display.
// Index i refers to the same record for the whole lifetime of the series;
// a series is replaced wholesale, never mutated.
type Series []Record

// Len returns the number of records.
func (s Series) Len() int {
	return len(s)
}

// Dates returns the date of every record in order.
func (s Series) Dates() []string {
	dates := make([]string, len(s))
	for i, r := range s {
		dates[i] = r.Date
	}
	return dates
}

// Values returns the value of every record in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, r := range s {
		values[i] = r.Value
	}
	return values
}

// NormalizedRange is a selection expressed as fractions of the total length.
// A valid range satisfies 0 <= Start <= End <= 1.
type NormalizedRange struct {
	Start float64
	End   float64
}

// Clamp returns the range with both bounds forced into [0,1] and an
// inverted pair collapsed onto its start.
func (r NormalizedRange) Clamp() NormalizedRange {
	r.Start = clampUnit(r.Start)
	r.End = clampUnit(r.End)
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// Valid reports whether the range satisfies 0 <= Start <= End <= 1.
func (r NormalizedRange) Valid() bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= 1
}

// Width returns End - Start.
func (r NormalizedRange) Width() float64 {
	return r.End - r.Start
}

// IndexRange is a pair of inclusive positions into a Series.
type IndexRange struct {
	Min int
	Max int
}

// DateRange holds the inclusive date bounds of a selection.
type DateRange struct {
	Min string
	Max string
}

// Contains reports whether date lies within [Min, Max] under lexicographic
// comparison. Dates must be lexicographically sortable, e.g. ISO 8601.
func (d DateRange) Contains(date string) bool {
	return date >= d.Min && date <= d.Max
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
