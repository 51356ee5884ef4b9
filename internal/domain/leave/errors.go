package leave

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyDecided   = errors.New("leave request has already been decided")
	ErrStartDateInPast         = errors.New("start date cannot be in the past")
	ErrEndBeforeStart          = errors.New("end date cannot be before start date")
	ErrSpanTooLong             = errors.New("leave request spans too many days")
	ErrInsufficientNotice      = errors.New("insufficient advance notice")
	ErrInsufficientBalance     = errors.New("insufficient paid leave balance")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrSelfDecision            = errors.New("staff cannot decide their own leave request")
	ErrInvalidCategory         = errors.New("invalid leave category")
	ErrInvalidStatus           = errors.New("invalid leave request status")
	ErrInvalidYear             = errors.New("invalid year")
)

// NoticeError is returned when a request starts too soon for its length.
type NoticeError struct {
	SpanDays       int // requested days
	MinSpanDays    int // span threshold of the violated rule, 0 for the base rule
	RequiredNotice int
	GivenNotice    int
}

func (e *NoticeError) Error() string {
	if e.MinSpanDays > 1 {
		return fmt.Sprintf("requests of %d or more days need at least %d days' notice, start date is %d day(s) away",
			e.MinSpanDays, e.RequiredNotice, e.GivenNotice)
	}
	return fmt.Sprintf("leave requests need at least %d day(s) notice, start date is %d day(s) away",
		e.RequiredNotice, e.GivenNotice)
}

func (e *NoticeError) Is(target error) bool {
	return target == ErrInsufficientNotice
}

// SpanError is returned when a request covers more days than the policy
// allows in one request.
type SpanError struct {
	SpanDays    int
	MaxSpanDays int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("leave requests may cover at most %d days, requested %d", e.MaxSpanDays, e.SpanDays)
}

func (e *SpanError) Is(target error) bool {
	return target == ErrSpanTooLong
}

// InsufficientBalanceError carries the numbers behind a failed balance check.
type InsufficientBalanceError struct {
	Year      int
	Remaining int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient paid leave balance: %d day(s) remaining, %d requested", e.Remaining, e.Requested)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
