package timeseries_test

import (
	"fmt"
	"os"

	timeseries "github.com/aouyang1/go-timeseries"
)

func ExampleSeries_Trend() {
	s, err := timeseries.NewFromMap(map[int64]float64{1: 32, 2: 55, 3: 40}, nil)
	if err != nil {
		panic(err)
	}
	trend, err := s.Trend(timeseries.Linear)
	if err != nil {
		panic(err)
	}
	for x, y := range trend.All() {
		fmt.Printf("%d %.3f\n", x, y)
	}
	// Output:
	// 1 38.333
	// 2 42.333
	// 3 46.333
}

func ExampleSeries_Decompose() {
	s, err := timeseries.NewFromSlices(
		[]int64{1, 2, 3, 4, 5},
		[]float64{100, 200, 100, 200, 100},
		&timeseries.Options{Frequency: 2},
	)
	if err != nil {
		panic(err)
	}
	comps, err := s.Decompose(false)
	if err != nil {
		panic(err)
	}
	for name, c := range comps.All() {
		fmt.Println(name, c.Y())
	}
	// Output:
	// trend [150 150 150 150 150]
	// seasonal [-50 50 -50 50 -50]
	// residual [0 0 0 0 0]
}

func ExampleForecaster() {
	s, err := timeseries.NewFromSlices(
		[]int64{1, 2, 3, 4, 5},
		[]float64{100, 200, 100, 200, 100},
		nil,
	)
	if err != nil {
		panic(err)
	}

	f, err := timeseries.NewForecaster(timeseries.MethodARIMA, nil)
	if err != nil {
		panic(err)
	}
	if err := f.Fit(s); err != nil {
		panic(err)
	}
	res, err := f.Predict(3)
	if err != nil {
		panic(err)
	}
	for x, y := range res.All() {
		fmt.Printf("%d %.1f\n", x, y)
	}

	m, err := f.Model()
	if err != nil {
		panic(err)
	}
	if err := m.TablePrint(os.Stderr, "", "  "); err != nil {
		panic(err)
	}
	// Output:
	// 6 140.0
	// 7 140.0
	// 8 140.0
}
