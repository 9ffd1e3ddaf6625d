package order

import (
	"fmt"

	"fueldelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Confirmed ──> In Progress ──> Delivered
//	   │            │              │
//	   ├────────────┴──────────────┴──> Rejected   (manager)
//	   └────────────┴──────────────┴──> Cancelled  (any non-terminal)
//
// Delivered, Rejected and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	InProgress
	Delivered
	Rejected
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "Pending",
	Confirmed:  "Confirmed",
	InProgress: "In Progress",
	Delivered:  "Delivered",
	Rejected:   "Rejected",
	Cancelled:  "Cancelled",
}

// ParseStatus accepts the display names produced by String.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// ValidateCanHaveAgent enforces that an agent is referenced exactly while the order is In Progress.
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	if hasAgent && s != InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an agent", s),
		)
	}
	if !hasAgent && s == InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no agent", s),
		)
	}
	return nil
}

// Confirm: Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.transition(Confirmed, Pending)
}

// Start: Confirmed -> In Progress. Orders must be confirmed before an agent is assigned.
func (s Status) Start() (Status, error) {
	return s.transition(InProgress, Confirmed)
}

// Deliver: In Progress -> Delivered.
func (s Status) Deliver() (Status, error) {
	return s.transition(Delivered, InProgress)
}

// Reject: Pending | Confirmed | In Progress -> Rejected.
func (s Status) Reject() (Status, error) {
	return s.transition(Rejected, Pending, Confirmed, InProgress)
}

// Cancel: any non-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.transition(Cancelled, Pending, Confirmed, InProgress)
}

func (s Status) transition(to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError(s.String(), to.String())
}
