package leave

import (
	"errors"
	"testing"
	"time"

	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticePolicy_Check(t *testing.T) {
	tests := []struct {
		name         string
		span         int
		notice       int
		wantRequired int // 0 means allowed
	}{
		{"one day with one day notice", 1, 1, 0},
		{"same day", 1, 0, 1},
		{"two days tomorrow", 2, 1, 0},
		{"three days with two days notice", 3, 2, 3},
		{"three days with three days notice", 3, 3, 0},
		{"four days with three days notice", 4, 3, 0},
		{"five days tomorrow", 5, 1, 7},
		{"five days with six days notice", 5, 6, 7},
		{"five days with a week notice", 5, 7, 0},
		{"ten days with a month notice", 10, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultNoticePolicy.Check(tt.span, tt.notice)
			if tt.wantRequired == 0 {
				assert.NoError(t, err)
				return
			}

			var noticeErr *leave.NoticeError
			require.True(t, errors.As(err, &noticeErr), "expected NoticeError, got %v", err)
			assert.ErrorIs(t, err, leave.ErrInsufficientNotice)
			assert.Equal(t, tt.wantRequired, noticeErr.RequiredNotice)
			assert.Equal(t, tt.notice, noticeErr.GivenNotice)
			assert.Equal(t, tt.span, noticeErr.SpanDays)
		})
	}
}

func TestNoticePolicy_Custom(t *testing.T) {
	p := NoticePolicy{MinNoticeDays: 0, MediumSpanDays: 2, MediumSpanNoticeDays: 5, LongSpanDays: 10, LongSpanNoticeDays: 14}

	assert.NoError(t, p.Check(1, 0))
	assert.Error(t, p.Check(2, 4))
	assert.NoError(t, p.Check(9, 5))
	assert.Error(t, p.Check(10, 13))
}

func TestNoticePolicy_CheckSpan(t *testing.T) {
	day := func(s string) time.Time {
		d, err := leave.ParseDate(s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name    string
		policy  NoticePolicy
		start   string
		end     string
		wantMax int // 0 means allowed
	}{
		{"single day", DefaultNoticePolicy, "2025-03-20", "2025-03-20", 0},
		{"full leap year", DefaultNoticePolicy, "2024-01-01", "2024-12-31", 0},
		{"one day over", DefaultNoticePolicy, "2024-01-01", "2025-01-01", 366},
		{"far future", DefaultNoticePolicy, "2025-03-20", "9999-12-31", 366},
		{"custom limit", NoticePolicy{MaxSpanDays: 14}, "2025-03-01", "2025-03-15", 14},
		{"zero limit uses default", NoticePolicy{}, "2025-03-01", "2025-03-15", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.CheckSpan(day(tt.start), day(tt.end))
			if tt.wantMax == 0 {
				assert.NoError(t, err)
				return
			}

			var spanErr *leave.SpanError
			require.True(t, errors.As(err, &spanErr), "expected SpanError, got %v", err)
			assert.Equal(t, tt.wantMax, spanErr.MaxSpanDays)
			assert.Equal(t, leave.CalculateDays(day(tt.start), day(tt.end)), spanErr.SpanDays)
		})
	}
}
