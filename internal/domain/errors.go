package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrBusinessRule       = errors.New("business rule violation")
	ErrEditConflict       = errors.New("edit conflict")
	ErrDuplicateEmail     = errors.New("a user with this email address already exists")
	ErrDuplicateRole      = errors.New("a role with this type already exists")
	ErrPriceNotConfigured = errors.New("ticket price is not configured")
	ErrNoDefaultRole      = errors.New("no default role available")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFoundError reports a missing entity, or one the caller does not own.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

var (
	ErrFilmNotFound     = &NotFoundError{Resource: "film"}
	ErrRoomNotFound     = &NotFoundError{Resource: "room"}
	ErrShowtimeNotFound = &NotFoundError{Resource: "showtime"}
	ErrTicketNotFound   = &NotFoundError{Resource: "ticket"}
	ErrAccountNotFound  = &NotFoundError{Resource: "account"}
	ErrUserNotFound     = &NotFoundError{Resource: "user"}
	ErrRoleNotFound     = &NotFoundError{Resource: "role"}
)

// Rule identifies which business rule rejected an operation.
type Rule string

const (
	RuleWeekday             Rule = "weekday"
	RuleSameDay             Rule = "same_day"
	RuleOpeningHour         Rule = "opening_hour"
	RuleClosingHour         Rule = "closing_hour"
	RuleTooShort            Rule = "too_short"
	RuleTooLong             Rule = "too_long"
	RuleFilmOverlap         Rule = "film_overlap"
	RuleRoomOverlap         Rule = "room_overlap"
	RuleRoomMaintenance     Rule = "room_maintenance"
	RuleShowtimeFull        Rule = "showtime_full"
	RuleTicketExhausted     Rule = "ticket_exhausted"
	RuleInsufficientBalance Rule = "insufficient_balance"
	RuleCapacityExceeded    Rule = "capacity_exceeded"
	RuleOccupancyDecrease   Rule = "occupancy_decrease"
	RuleInvalidInterval     Rule = "invalid_interval"
)

// RuleViolationError carries the rule that failed and a human readable reason.
// Two violations match with errors.Is when they name the same rule, and every
// violation matches ErrBusinessRule.
type RuleViolationError struct {
	Rule    Rule
	Message string
}

func (e *RuleViolationError) Error() string {
	return e.Message
}

func (e *RuleViolationError) Is(target error) bool {
	if target == ErrBusinessRule {
		return true
	}

	other, ok := target.(*RuleViolationError)

	return ok && other.Rule == e.Rule
}

func newViolation(rule Rule, format string, args ...any) *RuleViolationError {
	return &RuleViolationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrRoomUnderMaintenance = &RuleViolationError{Rule: RuleRoomMaintenance, Message: "the room is under maintenance"}
	ErrShowtimeFull         = &RuleViolationError{Rule: RuleShowtimeFull, Message: "the showtime is full"}
	ErrTicketExhausted      = &RuleViolationError{Rule: RuleTicketExhausted, Message: "the ticket has no remaining uses"}
	ErrInsufficientBalance  = &RuleViolationError{Rule: RuleInsufficientBalance, Message: "the account balance is insufficient"}
	ErrFilmOverlap          = &RuleViolationError{Rule: RuleFilmOverlap, Message: "the showtime for this film overlaps with another showtime"}
	ErrRoomOverlap          = &RuleViolationError{Rule: RuleRoomOverlap, Message: "the showtime for this room overlaps with another showtime"}
	ErrCapacityExceeded     = &RuleViolationError{Rule: RuleCapacityExceeded, Message: "occupied seats cannot exceed the room capacity"}
	ErrOccupancyDecrease    = &RuleViolationError{Rule: RuleOccupancyDecrease, Message: "occupied seats cannot decrease"}
)

// ViolationRule returns the rule behind err, if err is a rule violation.
func ViolationRule(err error) (Rule, bool) {
	var violation *RuleViolationError
	if errors.As(err, &violation) {
		return violation.Rule, true
	}

	return "", false
}
