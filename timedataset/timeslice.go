package timedataset

import (
	"errors"
	"time"
)

var ErrCannotInferInterval = errors.New("cannot infer interval with fewer than 2 timestamps")

// Timestamps are millisecond epoch timestamps in ascending order
type Timestamps []int64

func (t Timestamps) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return time.UnixMilli(t[0])
}

func (t Timestamps) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}
	return time.UnixMilli(t[len(t)-1])
}

// EstimateInterval returns the most common spacing between consecutive timestamps, preferring the
// smaller spacing on ties
func (t Timestamps) EstimateInterval() (int64, error) {
	if len(t) < 2 {
		return 0, ErrCannotInferInterval
	}

	counts := make(map[int64]int)
	for i := 1; i < len(t); i++ {
		counts[t[i]-t[i-1]]++
	}

	var maxCnt int
	var maxDelta int64
	for delta, cnt := range counts {
		if cnt > maxCnt || (cnt == maxCnt && delta < maxDelta) {
			maxCnt = cnt
			maxDelta = delta
		}
	}
	return maxDelta, nil
}
