package domain

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation error")

type Rule string

const (
	RuleRegistration Rule = "registration"
	RuleDimensions   Rule = "dimensions"
	RuleAircraft     Rule = "aircraft"
	RulePassenger    Rule = "passenger"
	RuleFlightNumber Rule = "flight_number"
	RuleSeat         Rule = "seat"
	RuleSeatOccupied Rule = "seat_occupied"
	RuleSeatFree     Rule = "seat_unoccupied"
	RuleNoSeatsLeft  Rule = "no_seats_available"
)

// ValidationError names the rule an input violated.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(rule Rule, format string, args ...interface{}) error {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// RuleOf returns the violated rule, or "" when err is not a validation error.
func RuleOf(err error) Rule {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Rule
	}
	return ""
}
