package agent

import (
	"fmt"

	"fueldelivery/internal/pkg/errs"
)

// Status is the availability of a delivery agent.
type Status int

const (
	UnknownStatus Status = iota
	Available
	Busy
	// Unavailable agents are kept on the roster but never assigned.
	Unavailable
)

var statusNames = map[Status]string{
	Available:   "Available",
	Busy:        "Busy",
	Unavailable: "Unavailable",
}

func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid agent status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid agent status", s))
	}
	return nil
}
