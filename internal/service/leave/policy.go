package leave

import (
	"time"

	"github.com/learnhub-center/backoffice/internal/domain/leave"
)

// NoticePolicy holds the advance-notice rules for leave requests. A span
// of at least LongSpanDays needs LongSpanNoticeDays of notice, a span of at
// least MediumSpanDays needs MediumSpanNoticeDays, and every request needs
// MinNoticeDays. No request may cover more than MaxSpanDays.
type NoticePolicy struct {
	MaxSpanDays          int
	MinNoticeDays        int
	MediumSpanDays       int
	MediumSpanNoticeDays int
	LongSpanDays         int
	LongSpanNoticeDays   int
}

// DefaultNoticePolicy is the center's standard policy.
var DefaultNoticePolicy = NoticePolicy{
	MaxSpanDays:          DefaultMaxSpanDays,
	MinNoticeDays:        1,
	MediumSpanDays:       3,
	MediumSpanNoticeDays: 3,
	LongSpanDays:         5,
	LongSpanNoticeDays:   7,
}

// DefaultQuota is the annual paid-leave allowance when a staff member has no override.
const DefaultQuota = 12

// DefaultMaxSpanDays is one leap year; a request can touch at most two
// calendar years.
const DefaultMaxSpanDays = 366

// CheckSpan returns a *leave.SpanError when start..end covers more than
// MaxSpanDays or ends after the year following start. A zero MaxSpanDays
// uses DefaultMaxSpanDays.
func (p NoticePolicy) CheckSpan(start, end time.Time) error {
	maxSpan := p.MaxSpanDays
	if maxSpan <= 0 {
		maxSpan = DefaultMaxSpanDays
	}

	span := leave.CalculateDays(start, end)
	if span > maxSpan || end.Year() > start.Year()+1 {
		return &leave.SpanError{SpanDays: span, MaxSpanDays: maxSpan}
	}
	return nil
}

// Check returns a *leave.NoticeError for the strictest rule that spanDays
// with noticeDays of notice violates, or nil.
func (p NoticePolicy) Check(spanDays, noticeDays int) error {
	if spanDays >= p.LongSpanDays && noticeDays < p.LongSpanNoticeDays {
		return &leave.NoticeError{
			SpanDays:       spanDays,
			MinSpanDays:    p.LongSpanDays,
			RequiredNotice: p.LongSpanNoticeDays,
			GivenNotice:    noticeDays,
		}
	}
	if spanDays >= p.MediumSpanDays && noticeDays < p.MediumSpanNoticeDays {
		return &leave.NoticeError{
			SpanDays:       spanDays,
			MinSpanDays:    p.MediumSpanDays,
			RequiredNotice: p.MediumSpanNoticeDays,
			GivenNotice:    noticeDays,
		}
	}
	if noticeDays < p.MinNoticeDays {
		return &leave.NoticeError{
			SpanDays:       spanDays,
			RequiredNotice: p.MinNoticeDays,
			GivenNotice:    noticeDays,
		}
	}
	return nil
}
