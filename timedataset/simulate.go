// Package timedataset generates synthetic millisecond timestamped series for tests, examples and
// benchmarks.
package timedataset

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// GenerateX returns n millisecond timestamps spaced interval apart beginning at start
func GenerateX(n int, interval time.Duration, start time.Time) []int64 {
	x := make([]int64, 0, n)
	ct := start.UnixMilli()
	step := interval.Milliseconds()
	for i := 0; i < n; i++ {
		x = append(x, ct+int64(i)*step)
	}
	return x
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// SetConst sets every value whose timestamp falls in [start, end) to val
func (s Series) SetConst(x []int64, val float64, start, end time.Time) Series {
	n := len(s)
	startMs, endMs := start.UnixMilli(), end.UnixMilli()
	for i := 0; i < n; i++ {
		if x[i] >= startMs && x[i] < endMs {
			s[i] = val
		}
	}
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLinearY returns intercept + slope*i for i in [0, n)
func GenerateLinearY(n int, intercept, slope float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, intercept+slope*float64(i))
	}
	return Series(y)
}

// GenerateWaveY returns a sine wave of the given amplitude with order cycles per period evaluated
// at the timestamps in x
func GenerateWaveY(x []int64, amp float64, period time.Duration, order float64, offset time.Duration) Series {
	n := len(x)
	y := make([]float64, 0, n)
	periodMs := float64(period.Milliseconds())
	offsetMs := float64(offset.Milliseconds())
	for i := 0; i < n; i++ {
		val := amp * math.Sin(2.0*math.Pi*order/periodMs*(float64(x[i])+offsetMs))
		y = append(y, val)
	}
	return Series(y)
}

// GenerateNoise returns n normally distributed values with standard deviation scale drawn from a
// generator seeded with seed so runs are repeatable
func GenerateNoise(n int, scale float64, seed uint64) Series {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, r.NormFloat64()*scale)
	}
	return Series(y)
}

// GenerateChange returns zero before chpt and bias + slope*(minutes since chpt) from chpt on
func GenerateChange(x []int64, chpt time.Time, bias, slope float64) Series {
	n := len(x)
	y := make([]float64, n)
	chptMs := chpt.UnixMilli()
	for i := 0; i < n; i++ {
		if x[i] >= chptMs {
			y[i] = bias + slope*float64(x[i]-chptMs)/float64(time.Minute.Milliseconds())
		}
	}
	return Series(y)
}
