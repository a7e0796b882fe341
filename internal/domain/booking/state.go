package booking

import (
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperr"
)

// State is the query-time classification token for listing bookings. It is
// never persisted; CURRENT/PAST/FUTURE are computed against "now" when the
// listing runs.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var knownStates = map[State]struct{}{
	StateAll:      {},
	StateCurrent:  {},
	StatePast:     {},
	StateFuture:   {},
	StateWaiting:  {},
	StateRejected: {},
}

// ParseState validates a listing state token. Matching is case-sensitive;
// anything unrecognized is an UnknownState error.
func ParseState(value string) (State, error) {
	st := State(value)
	if _, ok := knownStates[st]; !ok {
		return "", apperr.UnknownState("Unknown state: %s", value)
	}
	return st, nil
}

// Filter narrows a booking listing by status and/or time window. Zero-value
// pointer fields mean "no constraint". Results are always ordered by start
// descending.
type Filter struct {
	Status      *Status
	StartAfter  *time.Time
	StartBefore *time.Time
	EndBefore   *time.Time
	EndAfter    *time.Time
	Offset      int
	Limit       int
}

// Filter translates the state token into repository constraints relative to
// now. CURRENT uses the strict open interval start < now < end.
func (s State) Filter(now time.Time) Filter {
	switch s {
	case StateFuture:
		return Filter{StartAfter: &now}
	case StatePast:
		return Filter{EndBefore: &now}
	case StateCurrent:
		return Filter{StartBefore: &now, EndAfter: &now}
	case StateWaiting:
		st := StatusWaiting
		return Filter{Status: &st}
	case StateRejected:
		st := StatusRejected
		return Filter{Status: &st}
	default:
		return Filter{}
	}
}
