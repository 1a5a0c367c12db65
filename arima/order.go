package arima

import "fmt"

// Order is the specification of a seasonal ARIMA model. Seasonal autoregressive terms act on lags
// M, 2M, ..., SP*M of the differenced series and seasonal differencing uses lag M.
type Order struct {
	P  int `json:"p"`
	D  int `json:"d"`
	Q  int `json:"q"`
	SP int `json:"seasonal_p"`
	SD int `json:"seasonal_d"`
	M  int `json:"period"`
}

// String renders ARIMA(p,d,q) or ARIMA(p,d,q)(P,D,0)[m] when seasonal terms are present
func (o Order) String() string {
	if !o.Seasonal() {
		return fmt.Sprintf("ARIMA(%d,%d,%d)", o.P, o.D, o.Q)
	}
	return fmt.Sprintf("ARIMA(%d,%d,%d)(%d,%d,0)[%d]", o.P, o.D, o.Q, o.SP, o.SD, o.M)
}

// Seasonal reports whether the order carries any seasonal term
func (o Order) Seasonal() bool {
	return o.SP > 0 || o.SD > 0
}

// Validate checks the order for negative terms and seasonal terms without a period
func (o Order) Validate() error {
	if o.P < 0 || o.D < 0 || o.Q < 0 || o.SP < 0 || o.SD < 0 || o.M < 0 {
		return fmt.Errorf("%s, %w", o, ErrInvalidOrder)
	}
	if o.Seasonal() && o.M < 2 {
		return fmt.Errorf("period %d, %w", o.M, ErrInvalidSeason)
	}
	return nil
}

// hasConstant reports whether a constant term is estimated. With two or more differences a
// constant would imply a polynomial drift of degree two or more.
func (o Order) hasConstant() bool {
	return o.D+o.SD < 2
}

func (o Order) lags() []int {
	lags := make([]int, 0, o.SD+o.D)
	for i := 0; i < o.SD; i++ {
		lags = append(lags, o.M)
	}
	for i := 0; i < o.D; i++ {
		lags = append(lags, 1)
	}
	return lags
}
