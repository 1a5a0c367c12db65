package ets

import (
	"fmt"
	"strings"
)

// Kind names an exponential smoothing model by its error, trend and seasonal components. Every
// kind here has additive errors.
type Kind int

const (
	// ANN is simple exponential smoothing
	ANN Kind = iota
	// AAN is Holt's linear trend method
	AAN
	// ANA is a seasonal model without trend
	ANA
	// AAA is additive Holt-Winters
	AAA
)

// AllKinds lists every supported kind in search order
func AllKinds() []Kind {
	return []Kind{ANN, AAN, ANA, AAA}
}

func (k Kind) String() string {
	switch k {
	case ANN:
		return "ANN"
	case AAN:
		return "AAN"
	case ANA:
		return "ANA"
	case AAA:
		return "AAA"
	default:
		return "unknown"
	}
}

// ParseKind maps a case insensitive kind name to a Kind
func ParseKind(name string) (Kind, error) {
	for _, k := range AllKinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q, %w", name, ErrUnknownKind)
}

// Validate rejects kinds outside of the defined set
func (k Kind) Validate() error {
	if k < ANN || k > AAA {
		return fmt.Errorf("%d, %w", int(k), ErrUnknownKind)
	}
	return nil
}

// HasTrend reports whether the kind carries an additive trend
func (k Kind) HasTrend() bool {
	return k == AAN || k == AAA
}

// HasSeason reports whether the kind carries an additive seasonal component
func (k Kind) HasSeason() bool {
	return k == ANA || k == AAA
}

// MinObservations is the shortest series the kind can be fit on for the given period
func (k Kind) MinObservations(period int) int {
	switch {
	case k.HasSeason():
		return 2 * period
	case k.HasTrend():
		return 3
	default:
		return 1
	}
}
