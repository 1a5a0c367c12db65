package timeseries

import (
	"fmt"

	"github.com/aouyang1/go-timeseries/linearmodel"
)

// Order is the degree of the polynomial fit by Trend
type Order int

const (
	Constant  Order = 0
	Linear    Order = 1
	Quadratic Order = 2
	Cubic     Order = 3
)

func (o Order) String() string {
	switch o {
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// MinPoints is the fewest observations that determine a polynomial of this order
func (o Order) MinPoints() int {
	return linearmodel.MinObservations(int(o))
}

// Trend fits a polynomial of the given order to the series by ordinary least squares and returns a
// new Series with the same timestamps holding the fitted values. The series must hold at least
// order+1 points.
func (s *Series) Trend(order Order) (*Series, error) {
	if order < 0 {
		return nil, fmt.Errorf("got %d, %w", int(order), ErrInvalidOrder)
	}
	if s.Len() < order.MinPoints() {
		return nil, fmt.Errorf("%s trend needs %d points, got %d, %w", order, order.MinPoints(), s.Len(), ErrInsufficientPoints)
	}

	poly, err := linearmodel.NewPolynomial(int(order))
	if err != nil {
		return nil, err
	}
	x := s.floatX()
	if err := poly.Fit(x, s.y); err != nil {
		return nil, fmt.Errorf("unable to fit %s trend, %w", order, err)
	}
	fitted, err := poly.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("unable to evaluate %s trend, %w", order, err)
	}
	return s.derive(fitted), nil
}

func (s *Series) floatX() []float64 {
	x := make([]float64, len(s.x))
	for i, v := range s.x {
		x[i] = float64(v)
	}
	return x
}
