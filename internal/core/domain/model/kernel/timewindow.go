package kernel

import (
	"fmt"

	"routeplan/internal/pkg/errs"
	"routeplan/internal/pkg/guard"
)

const (
	// DayStart is the beginning of the service day in minutes.
	DayStart = 0
	// DayEnd is the default end of the service day in minutes. Windows may
	// extend past it for overnight service.
	DayEnd = 1440
)

// ErrTimeWindowIsNotConstructed is returned when validating a zero-value TimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow or FullDayWindow constructors")

// TimeWindow is an immutable service window expressed in minutes from the
// start of the day. Start is inclusive, End is exclusive of late arrivals.
type TimeWindow struct { //nolint:recvcheck //using for validation
	start int
	end   int
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow. Start must be non-negative and strictly
// before End. End may exceed DayEnd to express overnight windows.
func NewTimeWindow(start int, end int) (TimeWindow, error) {
	if start < DayStart {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window start",
			fmt.Errorf("%d is before the start of the day", start))
	}
	if end <= start {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window end",
			fmt.Errorf("%d is not after start %d", end, start))
	}

	return TimeWindow{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// FullDayWindow returns the default window covering the whole service day.
func FullDayWindow() TimeWindow {
	window, _ := NewTimeWindow(DayStart, DayEnd)
	return window
}

// Start returns the window start in minutes.
func (w TimeWindow) Start() int {
	return w.start
}

// End returns the window end in minutes.
func (w TimeWindow) End() int {
	return w.end
}

// Validate ensures the window was created through a constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}
