package timeseries

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/aouyang1/go-timeseries/stats"
)

// Parameter is a named estimated parameter of a fitted model
type Parameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// criteriaOrder lists the information criteria keys in print order
var criteriaOrder = []string{"loglik", "aic", "aicc", "bic"}

// ForecastModel is a serializable summary of a fitted forecaster storing the selected model, its
// parameters and in sample fit scores. Criteria holds only the finite information criteria.
type ForecastModel struct {
	Method        string             `json:"method"`
	Specification string             `json:"specification"`
	TrainEndTime  time.Time          `json:"train_end_time"`
	IntervalMS    int64              `json:"interval_ms"`
	Parameters    []Parameter        `json:"parameters"`
	Criteria      map[string]float64 `json:"criteria,omitempty"`
	Scores        *stats.Scores      `json:"scores"`
}

func newCriteria(ic stats.InformationCriteria) map[string]float64 {
	vals := map[string]float64{
		"loglik": ic.LogLik,
		"aic":    ic.AIC,
		"aicc":   ic.AICc,
		"bic":    ic.BIC,
	}
	for k, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			delete(vals, k)
		}
	}
	return vals
}

// TablePrint writes a human readable summary of the model to w. Every line starts with prefix and
// nested sections are indented by repeating indent.
func (m ForecastModel) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sForecast:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sMethod: %s\n", prefix, indentExpand(indent, 1), m.Method); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sSpecification: %s\n", prefix, indentExpand(indent, 1), m.Specification); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sTraining End Time: %s\n", prefix, indentExpand(indent, 1), m.TrainEndTime); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sInterval: %s\n",
		prefix, indentExpand(indent, 1), time.Duration(m.IntervalMS)*time.Millisecond); err != nil {
		return err
	}

	if len(m.Criteria) > 0 {
		parts := make([]string, 0, len(m.Criteria))
		for _, k := range criteriaOrder {
			if v, ok := m.Criteria[k]; ok {
				parts = append(parts, fmt.Sprintf("%s: %.3f", k, v))
			}
		}
		if _, err := fmt.Fprintf(w, "%s%sCriteria:\n", prefix, indentExpand(indent, 0)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, indentExpand(indent, 1), strings.Join(parts, "    ")); err != nil {
			return err
		}
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, indentExpand(indent, 0)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, indentExpand(indent, 1),
			m.Scores.MAPE,
			m.Scores.MSE,
			m.Scores.R2,
		); err != nil {
			return err
		}
	}

	return m.tablePrintParameters(w, prefix, indent, 0)
}

func (m ForecastModel) tablePrintParameters(w io.Writer, prefix, indent string, indentGrowth int) error {
	if _, err := fmt.Fprintf(w, "%s%sParameters:\n", prefix, indentExpand(indent, indentGrowth)); err != nil {
		return err
	}

	// aligned without the prefix so every line starts with it unpadded
	var buf bytes.Buffer
	tbl := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%sName\tValue\t\n", indentExpand(indent, indentGrowth+1)); err != nil {
		return err
	}
	for _, p := range m.Parameters {
		if _, err := fmt.Fprintf(tbl, "%s%s\t%.3f\t\n", indentExpand(indent, indentGrowth+1), p.Name, p.Value); err != nil {
			return err
		}
	}
	if err := tbl.Flush(); err != nil {
		return err
	}
	for line := range strings.Lines(buf.String()) {
		if _, err := fmt.Fprintf(w, "%s%s", prefix, line); err != nil {
			return err
		}
	}
	return nil
}

func indentExpand(indent string, growth int) string {
	return strings.Repeat(indent, growth)
}
