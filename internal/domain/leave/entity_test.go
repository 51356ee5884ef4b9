package leave

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCalculateDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-03-10", "2025-03-10", 1},
		{"2025-03-10", "2025-03-12", 3},
		{"2025-02-27", "2025-03-02", 4},
		{"2024-02-28", "2024-03-01", 3},
		{"2025-12-30", "2026-01-02", 4},
		{"2025-03-12", "2025-03-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateDays(date(t, tt.start), date(t, tt.end)))
		})
	}
}

func TestCalculateDays_LongRanges(t *testing.T) {
	assert.Equal(t, 366, CalculateDays(date(t, "2024-01-01"), date(t, "2024-12-31")))
	assert.Equal(t, 146097, CalculateDays(date(t, "2000-01-01"), date(t, "2399-12-31")))
	assert.Equal(t, 3652059, CalculateDays(date(t, "0001-01-01"), date(t, "9999-12-31")))
	assert.Equal(t, 2912730, CalculateDays(date(t, "2025-03-20"), date(t, "9999-12-31")))
	assert.Equal(t, 3652058, DaysBetween(date(t, "0001-01-01"), date(t, "9999-12-31")))
}

func TestCalculateDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 11, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 2, CalculateDays(start, end))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(t, "2025-03-10"), date(t, "2025-03-10")))
	assert.Equal(t, 7, DaysBetween(date(t, "2025-03-10"), date(t, "2025-03-17")))
	assert.Equal(t, -1, DaysBetween(date(t, "2025-03-10"), date(t, "2025-03-09")))
}

func TestLeaveRequest_OverlapsYear(t *testing.T) {
	r := LeaveRequest{StartDate: date(t, "2025-12-30"), EndDate: date(t, "2026-01-02")}

	assert.True(t, r.OverlapsYear(2025))
	assert.True(t, r.OverlapsYear(2026))
	assert.False(t, r.OverlapsYear(2024))
	assert.False(t, r.OverlapsYear(2027))
	assert.Equal(t, 4, r.Days())
}

func TestCategory(t *testing.T) {
	for _, c := range AllCategories {
		assert.True(t, c.Valid())
		assert.Equal(t, c == CategoryPaid, c.ConsumesQuota())
	}
	assert.False(t, Category("vacation").Valid())
}

func TestLeaveRequestStatus(t *testing.T) {
	assert.False(t, LeaveRequestStatusPending.IsTerminal())
	assert.True(t, LeaveRequestStatusApproved.IsTerminal())
	assert.True(t, LeaveRequestStatusRejected.IsTerminal())
	assert.False(t, LeaveRequestStatus("cancelled").Valid())
}

func TestBalanceID(t *testing.T) {
	assert.Equal(t, "staff-7_2025", BalanceID("staff-7", 2025))
}

func TestNoticeError(t *testing.T) {
	var err error = &NoticeError{SpanDays: 5, MinSpanDays: 5, RequiredNotice: 7, GivenNotice: 1}
	wrapped := fmt.Errorf("submit: %w", err)

	assert.ErrorIs(t, wrapped, ErrInsufficientNotice)
	assert.Contains(t, err.Error(), "at least 7 days")

	var noticeErr *NoticeError
	require.True(t, errors.As(wrapped, &noticeErr))
	assert.Equal(t, 7, noticeErr.RequiredNotice)
}

func TestInsufficientBalanceError(t *testing.T) {
	err := &InsufficientBalanceError{Remaining: 1, Requested: 2}

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, "insufficient paid leave balance: 1 day(s) remaining, 2 requested", err.Error())
}

func TestSpanError(t *testing.T) {
	err := &SpanError{SpanDays: 400, MaxSpanDays: 366}

	assert.ErrorIs(t, err, ErrSpanTooLong)
	assert.NotErrorIs(t, err, ErrInsufficientNotice)
	assert.Equal(t, "leave requests may cover at most 366 days, requested 400", err.Error())
}
