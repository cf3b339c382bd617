// Package stats reduces reading values to descriptive statistics. All
// functions are pure and leave their inputs unmodified.
//
// Median and quartiles use an offset rule rather than the textbook
// definition: the median of n sorted values is the element at index n/2,
// with no averaging for even n. Quartiles take that median over the lower
// and upper halves, excluding the middle element when n is odd.
package stats

import (
	"errors"
	"math"
	"slices"
	"sort"

	"sensor-readings-service/internal/readings"
)

var (
	ErrEmpty  = errors.New("no values to reduce")
	ErrTooFew = errors.New("not enough values for quartiles")
)

// RoundMean rounds half to even.
func RoundMean(avg float64) int {
	return int(math.RoundToEven(avg))
}

func Mean(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	var sum int64
	for _, v := range values {
		sum += int64(v)
	}
	return RoundMean(float64(sum) / float64(len(values))), nil
}

func medianOfSorted(sorted []int) int {
	return sorted[len(sorted)/2]
}

// Mode returns the most frequent value, preferring the smallest on ties.
func Mode(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	best, bestCount := 0, 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best, nil
}

type Quartiles struct {
	Q1 int
	Q3 int
}

func ComputeQuartiles(values []int) (Quartiles, error) {
	if len(values) == 0 {
		return Quartiles{}, ErrEmpty
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if mid == 0 {
		return Quartiles{}, ErrTooFew
	}
	return Quartiles{
		Q1: medianOfSorted(sorted[:mid]),
		Q3: medianOfSorted(sorted[len(sorted)-mid:]),
	}, nil
}

// sortByValue orders rows by value, then date_created, keeping input order
// for full ties.
func sortByValue(rows []readings.Reading) []readings.Reading {
	sorted := slices.Clone(rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value < sorted[j].Value
		}
		return sorted[i].DateCreated < sorted[j].DateCreated
	})
	return sorted
}

// MinReading returns the lowest-valued row, earliest date_created on ties.
func MinReading(rows []readings.Reading) (readings.Reading, error) {
	if len(rows) == 0 {
		return readings.Reading{}, ErrEmpty
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if r.Value < best.Value || (r.Value == best.Value && r.DateCreated < best.DateCreated) {
			best = r
		}
	}
	return best, nil
}

// MaxReading returns the highest-valued row, earliest date_created on ties.
func MaxReading(rows []readings.Reading) (readings.Reading, error) {
	if len(rows) == 0 {
		return readings.Reading{}, ErrEmpty
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if r.Value > best.Value || (r.Value == best.Value && r.DateCreated < best.DateCreated) {
			best = r
		}
	}
	return best, nil
}

// MedianReading returns the row at index n/2 of the value-ordered rows.
func MedianReading(rows []readings.Reading) (readings.Reading, error) {
	if len(rows) == 0 {
		return readings.Reading{}, ErrEmpty
	}
	return sortByValue(rows)[len(rows)/2], nil
}

func ValuesOf(rows []readings.Reading) []int {
	values := make([]int, len(rows))
	for i, r := range rows {
		values[i] = r.Value
	}
	return values
}

type Summary struct {
	Count     int              `json:"count"`
	Min       readings.Reading `json:"min"`
	Max       readings.Reading `json:"max"`
	Median    readings.Reading `json:"median"`
	Mean      int              `json:"mean"`
	Mode      int              `json:"mode"`
	Quartile1 *int             `json:"quartile_1,omitempty"`
	Quartile3 *int             `json:"quartile_3,omitempty"`
}

// Summarize computes every statistic over one set of rows. Quartiles are
// left nil when there are fewer than two rows.
func Summarize(rows []readings.Reading) (Summary, error) {
	if len(rows) == 0 {
		return Summary{}, ErrEmpty
	}
	s := Summary{Count: len(rows)}
	s.Min, _ = MinReading(rows)
	s.Max, _ = MaxReading(rows)
	s.Median, _ = MedianReading(rows)

	values := ValuesOf(rows)
	s.Mean, _ = Mean(values)
	s.Mode, _ = Mode(values)

	q, err := ComputeQuartiles(values)
	switch {
	case err == nil:
		s.Quartile1, s.Quartile3 = &q.Q1, &q.Q3
	case !errors.Is(err, ErrTooFew):
		return Summary{}, err
	}
	return s, nil
}
