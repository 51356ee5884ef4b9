package leave

import (
	"context"
	"testing"
	"time"

	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	"github.com/learnhub-center/backoffice/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

const testStaffID = "s-1"

// Monday, 10 March 2025, mid-morning.
var testNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	dir      *memory.Directory
	ledger   *Ledger
	requests *RequestService
	service  leave.LeaveService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := memory.NewDirectory()
	dir.PutStaff(staff.Staff{ID: testStaffID, Name: "Lan Nguyen", Position: "Teacher"})

	ledger := NewLedger(dir.Staff(), dir.LeaveRequests(), dir.LeaveBalances(), DefaultQuota)
	requests := NewRequestService(dir.LeaveRequests(), dir.Staff(), ledger, DefaultNoticePolicy).
		WithClock(func() time.Time { return testNow })

	return &fixture{
		dir:      dir,
		ledger:   ledger,
		requests: requests,
		service:  NewLeaveService(dir.LeaveRequests(), ledger, requests),
	}
}

func (f *fixture) submit(t *testing.T, start, end string, category leave.Category) (leave.LeaveRequest, error) {
	t.Helper()
	return f.requests.Submit(context.Background(), leave.SubmitLeaveRequest{
		StaffID:   testStaffID,
		StartDate: start,
		EndDate:   end,
		Category:  string(category),
		Reason:    "personal matters",
	})
}

// seed stores a request directly and refreshes the ledger, bypassing the date rules.
func (f *fixture) seed(t *testing.T, id, start, end string, category leave.Category, status leave.LeaveRequestStatus) leave.LeaveRequest {
	t.Helper()
	ctx := context.Background()

	r := leave.LeaveRequest{
		ID:        id,
		StaffID:   testStaffID,
		StaffName: "Lan Nguyen",
		StartDate: mustDate(t, start),
		EndDate:   mustDate(t, end),
		Category:  category,
		Status:    status,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	_, err := f.dir.LeaveRequests().Create(ctx, r)
	require.NoError(t, err)
	require.NoError(t, f.ledger.RecalculateRange(ctx, testStaffID, r.StartDate, r.EndDate))
	return r
}

func (f *fixture) balance(t *testing.T, year int) leave.LeaveBalance {
	t.Helper()
	b, err := f.service.GetBalance(context.Background(), testStaffID, year)
	require.NoError(t, err)
	return b
}

func (f *fixture) allRequests(t *testing.T) []leave.LeaveRequest {
	t.Helper()
	requests, err := f.service.ListLeaveRequests(context.Background(), leave.LeaveRequestFilter{StaffID: testStaffID})
	require.NoError(t, err)
	return requests
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := leave.ParseDate(s)
	require.NoError(t, err)
	return d
}
