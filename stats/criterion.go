package stats

import (
	"fmt"
	"math"
	"strings"
)

// Criterion selects the information criterion used to rank candidate models
type Criterion int

const (
	AICc Criterion = iota
	AIC
	BIC
)

func (c Criterion) String() string {
	switch c {
	case AICc:
		return "aicc"
	case AIC:
		return "aic"
	case BIC:
		return "bic"
	default:
		return "unknown"
	}
}

// ParseCriterion maps a case insensitive criterion name to a Criterion
func ParseCriterion(name string) (Criterion, error) {
	switch strings.ToLower(name) {
	case "aicc":
		return AICc, nil
	case "aic":
		return AIC, nil
	case "bic":
		return BIC, nil
	}
	return 0, fmt.Errorf("%q, %w", name, ErrUnknownCriterion)
}

// Validate rejects criteria outside of the defined set
func (c Criterion) Validate() error {
	switch c {
	case AICc, AIC, BIC:
		return nil
	}
	return fmt.Errorf("%d, %w", int(c), ErrUnknownCriterion)
}

// InformationCriteria holds the Gaussian log likelihood of a fit and the criteria derived from it
type InformationCriteria struct {
	LogLik float64 `json:"log_likelihood"`
	AIC    float64 `json:"aic"`
	AICc   float64 `json:"aicc"`
	BIC    float64 `json:"bic"`
}

// Value returns the criterion selected by c
func (ic InformationCriteria) Value(c Criterion) float64 {
	switch c {
	case AIC:
		return ic.AIC
	case BIC:
		return ic.BIC
	default:
		return ic.AICc
	}
}

// minVariance keeps the log likelihood finite for fits with no residual error.
const minVariance = 1e-12

// NewInformationCriteria computes the criteria of a fit with sum of squared errors sse over n
// residuals and k estimated parameters, assuming Gaussian errors with the maximum likelihood
// variance sse/n. AICc is +Inf when n-k-1 <= 0.
func NewInformationCriteria(sse float64, n, k int) (InformationCriteria, error) {
	if n < 1 {
		return InformationCriteria{}, ErrTooFewObservations
	}
	if k < 1 {
		return InformationCriteria{}, ErrNonPositiveParameters
	}
	nf, kf := float64(n), float64(k)
	variance := math.Max(sse/nf, minVariance)
	logLik := -nf / 2 * (math.Log(2*math.Pi*variance) + 1)

	ic := InformationCriteria{
		LogLik: logLik,
		AIC:    -2*logLik + 2*kf,
		BIC:    -2*logLik + kf*math.Log(nf),
	}
	if nf-kf-1 > 0 {
		ic.AICc = ic.AIC + 2*kf*(kf+1)/(nf-kf-1)
	} else {
		ic.AICc = math.Inf(1)
	}
	return ic, nil
}
