// Package timeseries is an in-memory engine for univariate time series. A Series holds millisecond
// timestamped observations and supports polynomial trend estimation, classical additive seasonal
// decomposition and multi-step forecasting with linear trend, ARIMA and exponential smoothing
// models.
package timeseries

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

// Point is a single observation at a millisecond epoch timestamp
type Point struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// Options are the optional attributes of a Series
type Options struct {
	// Frequency is the number of observations in one seasonal cycle. Zero means unset.
	Frequency int `json:"frequency"`
}

// NewDefaultOptions returns options with no frequency
func NewDefaultOptions() *Options {
	return &Options{}
}

// Validate substitutes defaults for nil options and rejects a negative frequency
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.Frequency < 0 {
		return nil, fmt.Errorf("got %d, %w", o.Frequency, ErrNegativeFrequency)
	}
	return o, nil
}

// Series is an immutable sequence of observations in strictly ascending timestamp order. It is
// safe for concurrent readers.
type Series struct {
	x         []int64
	y         []float64
	frequency int
}

// New builds a Series from points in any order. Points are sorted by timestamp and the input is
// copied. Repeated timestamps are rejected.
func New(points []Point, opt *Options) (*Series, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	s := &Series{
		x:         make([]int64, len(sorted)),
		y:         make([]float64, len(sorted)),
		frequency: opt.Frequency,
	}
	for i, p := range sorted {
		if i > 0 && p.X == sorted[i-1].X {
			return nil, fmt.Errorf("timestamp %d, %w", p.X, ErrDuplicateTimestamp)
		}
		s.x[i] = p.X
		s.y[i] = p.Y
	}
	return s, nil
}

// NewFromMap builds a Series from a timestamp keyed mapping sorted by ascending key
func NewFromMap(m map[int64]float64, opt *Options) (*Series, error) {
	points := make([]Point, 0, len(m))
	for x, y := range m {
		points = append(points, Point{X: x, Y: y})
	}
	return New(points, opt)
}

// NewFromSlices builds a Series from parallel timestamp and value slices
func NewFromSlices(x []int64, y []float64, opt *Options) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%d timestamps and %d values, %w", len(x), len(y), ErrLengthMismatch)
	}
	points := make([]Point, len(x))
	for i := range x {
		points[i] = Point{X: x[i], Y: y[i]}
	}
	return New(points, opt)
}

// derive returns a Series sharing the timestamps and frequency of s with new values. y is owned by
// the result.
func (s *Series) derive(y []float64) *Series {
	return &Series{
		x:         slices.Clone(s.x),
		y:         y,
		frequency: s.frequency,
	}
}

// Len returns the number of observations
func (s *Series) Len() int {
	return len(s.x)
}

// X returns a copy of the timestamps
func (s *Series) X() []int64 {
	return slices.Clone(s.x)
}

// Timestamps is an alias of X
func (s *Series) Timestamps() []int64 {
	return s.X()
}

// Y returns a copy of the values
func (s *Series) Y() []float64 {
	return slices.Clone(s.y)
}

// Values is an alias of Y
func (s *Series) Values() []float64 {
	return s.Y()
}

// Dates converts every timestamp to a local time. It is recomputed on each call.
func (s *Series) Dates() []time.Time {
	dates := make([]time.Time, len(s.x))
	for i, ms := range s.x {
		dates[i] = time.UnixMilli(ms)
	}
	return dates
}

// Interval returns the spacing between the first two timestamps. It reports false when there are
// fewer than two points.
func (s *Series) Interval() (int64, bool) {
	if len(s.x) < 2 {
		return 0, false
	}
	return s.x[1] - s.x[0], true
}

// Frequency returns the seasonal frequency and whether it is set
func (s *Series) Frequency() (int, bool) {
	return s.frequency, s.frequency > 0
}

// Points returns the observations in ascending timestamp order
func (s *Series) Points() []Point {
	points := make([]Point, len(s.x))
	for i := range s.x {
		points[i] = Point{X: s.x[i], Y: s.y[i]}
	}
	return points
}

// All iterates over the timestamp and value pairs in ascending timestamp order
func (s *Series) All() iter.Seq2[int64, float64] {
	return func(yield func(int64, float64) bool) {
		for i := range s.x {
			if !yield(s.x[i], s.y[i]) {
				return
			}
		}
	}
}

type seriesJSON struct {
	X         []int64   `json:"x"`
	Y         []float64 `json:"y"`
	Frequency int       `json:"frequency,omitempty"`
}

// MarshalJSON encodes the series as {"x": [...], "y": [...], "frequency": n}
func (s *Series) MarshalJSON() ([]byte, error) {
	x, y := s.x, s.y
	if x == nil {
		x, y = []int64{}, []float64{}
	}
	return json.Marshal(seriesJSON{X: x, Y: y, Frequency: s.frequency})
}

// UnmarshalJSON decodes and normalizes a series encoded by MarshalJSON
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw seriesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unable to decode series, %w", err)
	}
	decoded, err := NewFromSlices(raw.X, raw.Y, &Options{Frequency: raw.Frequency})
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}
