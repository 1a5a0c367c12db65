package arima

// difference returns s[t+lag] - s[t], which is empty when lag >= len(s).
func difference(s []float64, lag int) []float64 {
	if lag >= len(s) {
		return nil
	}
	res := make([]float64, len(s)-lag)
	for t := range res {
		res[t] = s[t+lag] - s[t]
	}
	return res
}

// differenceStages applies each lag in turn and returns every intermediate series, starting with
// y itself. The last stage is the fully differenced series.
func differenceStages(y []float64, lags []int) [][]float64 {
	stages := make([][]float64, 0, len(lags)+1)
	stages = append(stages, y)
	cur := y
	for _, lag := range lags {
		cur = difference(cur, lag)
		stages = append(stages, cur)
	}
	return stages
}

// integrate undoes the differencing of future values f of the last stage, walking back through
// the stages so the result continues the first stage.
func integrate(f []float64, stages [][]float64, lags []int) []float64 {
	cur := f
	for k := len(lags) - 1; k >= 0; k-- {
		lag := lags[k]
		prev := stages[k]
		ext := make([]float64, len(prev), len(prev)+len(cur))
		copy(ext, prev)
		for _, v := range cur {
			ext = append(ext, v+ext[len(ext)-lag])
		}
		cur = ext[len(prev):]
	}
	res := make([]float64, len(cur))
	copy(res, cur)
	return res
}
