package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var (
	ErrStartAfterEnd = errors.New("event start time is after end time")
	ErrUnsetTime     = errors.New("unset event start or end time")
	ErrNoEventName   = errors.New("no event name")
)

// Event is a named time span, such as an observed holiday, whose observations may be treated
// separately from the rest of a series
type Event struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewEvent(name string, start, end time.Time) Event {
	return Event{
		Name:  name,
		Start: start,
		End:   end,
	}
}

func (e *Event) Valid() error {
	if e.Start.IsZero() || e.End.IsZero() {
		return ErrUnsetTime
	}
	if e.Start.After(e.End) {
		return ErrStartAfterEnd
	}
	if e.Name == "" {
		return ErrNoEventName
	}
	return nil
}

// Contains reports whether the millisecond timestamp falls in [Start, End)
func (e Event) Contains(ms int64) bool {
	t := time.UnixMilli(ms)
	return !t.Before(e.Start) && t.Before(e.End)
}

// Mask flags every timestamp in x that falls inside any of the events
func Mask(x []int64, events []Event) []bool {
	mask := make([]bool, len(x))
	for i, ms := range x {
		for _, e := range events {
			if e.Contains(ms) {
				mask[i] = true
				break
			}
		}
	}
	return mask
}

func Christmas(start, end time.Time, durBefore, durAfter time.Duration) []Event {
	return Holiday(us.ChristmasDay, start, end, durBefore, durAfter)
}

func Thanksgiving(start, end time.Time, durBefore, durAfter time.Duration) []Event {
	return Holiday(us.ThanksgivingDay, start, end, durBefore, durAfter)
}

// Holiday returns one event per year for the observed date of hol that falls within [start, end],
// widened by durBefore and durAfter. Events are expressed in the location of start.
func Holiday(hol *cal.Holiday, start, end time.Time, durBefore, durAfter time.Duration) []Event {
	startLoc := start.Location()

	events := []Event{}
	for i := start.Year(); i <= end.Year(); i++ {
		_, observed := hol.Calc(i)
		_, offset := observed.Zone()
		_, startOffset := start.Zone()

		observed = observed.Add(time.Duration(offset) * time.Second).In(startLoc).Add(time.Duration(-startOffset) * time.Second)

		if (observed.After(start) || observed.Equal(start)) && (observed.Before(end) || observed.Equal(end)) {
			events = append(events, Event{
				Name:  strings.ReplaceAll(fmt.Sprintf("%s_%d", hol.Name, i), " ", "_"),
				Start: observed.Add(-durBefore),
				End:   observed.Add(24 * time.Hour).Add(durAfter),
			})
		}
	}
	return events
}
