package leave

import (
	"context"
	"errors"
	"testing"

	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBalance(t *testing.T) {
	req := func(staffID, start, end string, c leave.Category, s leave.LeaveRequestStatus) leave.LeaveRequest {
		return leave.LeaveRequest{StaffID: staffID, StartDate: mustDate(t, start), EndDate: mustDate(t, end), Category: c, Status: s}
	}

	requests := []leave.LeaveRequest{
		req("s-1", "2025-01-06", "2025-01-08", leave.CategoryPaid, leave.LeaveRequestStatusApproved),  // 3 used
		req("s-1", "2025-04-01", "2025-04-02", leave.CategoryPaid, leave.LeaveRequestStatusPending),   // 2 pending
		req("s-1", "2025-05-01", "2025-05-05", leave.CategoryPaid, leave.LeaveRequestStatusRejected),  // ignored
		req("s-1", "2025-06-01", "2025-06-03", leave.CategorySick, leave.LeaveRequestStatusApproved),  // ignored
		req("s-1", "2024-06-01", "2024-06-03", leave.CategoryPaid, leave.LeaveRequestStatusApproved),  // other year
		req("s-2", "2025-02-01", "2025-02-03", leave.CategoryPaid, leave.LeaveRequestStatusApproved),  // other staff
		req("s-1", "2025-12-30", "2026-01-02", leave.CategoryPaid, leave.LeaveRequestStatusApproved),  // 4 used, full span
	}

	b := ComputeBalance("s-1", 2025, 12, requests)

	assert.Equal(t, "s-1_2025", b.ID)
	assert.Equal(t, 12, b.Quota)
	assert.Equal(t, 7, b.Used)
	assert.Equal(t, 2, b.Pending)
	assert.Equal(t, 3, b.Remaining)
	assert.Equal(t, b.Quota-b.Used-b.Pending, b.Remaining)

	next := ComputeBalance("s-1", 2026, 12, requests)
	assert.Equal(t, 4, next.Used)
	assert.Equal(t, 8, next.Remaining)
}

func TestComputeBalance_NoRequests(t *testing.T) {
	b := ComputeBalance("s-1", 2025, 12, nil)

	assert.Equal(t, 0, b.Used)
	assert.Equal(t, 0, b.Pending)
	assert.Equal(t, 12, b.Remaining)
}

func TestComputeBalance_CanGoNegative(t *testing.T) {
	requests := []leave.LeaveRequest{{
		StaffID: "s-1", StartDate: mustDate(t, "2025-01-01"), EndDate: mustDate(t, "2025-01-14"),
		Category: leave.CategoryPaid, Status: leave.LeaveRequestStatusApproved,
	}}

	assert.Equal(t, -2, ComputeBalance("s-1", 2025, 12, requests).Remaining)
}

func TestLedger_GetOrCreateBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	quota := 20
	f.dir.PutStaff(staff.Staff{ID: "s-2", Name: "Minh", Position: "Accountant", LeaveQuota: &quota})

	b, err := f.ledger.GetOrCreateBalance(ctx, "s-2", 2025)
	require.NoError(t, err)
	assert.Equal(t, 20, b.Quota)
	assert.Equal(t, 20, b.Remaining)

	stored, err := f.dir.LeaveBalances().Get(ctx, "s-2", 2025)
	require.NoError(t, err)
	assert.Equal(t, b, stored)
}

func TestLedger_UnknownStaffGetsDefaultQuota(t *testing.T) {
	f := newFixture(t)

	b, err := f.ledger.GetOrCreateBalance(context.Background(), "ghost", 2025)
	require.NoError(t, err)
	assert.Equal(t, DefaultQuota, b.Quota)
}

func TestLedger_RecalculateIsIdempotentAndRepairs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "seed-1", "2025-01-06", "2025-01-08", leave.CategoryPaid, leave.LeaveRequestStatusApproved)

	first, err := f.ledger.Recalculate(ctx, testStaffID, 2025)
	require.NoError(t, err)
	second, err := f.ledger.Recalculate(ctx, testStaffID, 2025)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A corrupted document is overwritten, never adjusted.
	corrupt := first
	corrupt.Used, corrupt.Remaining = 99, -87
	require.NoError(t, f.dir.LeaveBalances().Put(ctx, corrupt))

	repaired, err := f.ledger.Recalculate(ctx, testStaffID, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, repaired.Used)
	assert.Equal(t, 9, repaired.Remaining)
}

func TestLedger_HasEnoughBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "seed-1", "2025-01-06", "2025-01-16", leave.CategoryPaid, leave.LeaveRequestStatusApproved)

	check, err := f.ledger.HasEnoughBalance(ctx, testStaffID, 2025, mustDate(t, "2025-03-20"), mustDate(t, "2025-03-21"), leave.CategoryPaid)
	require.NoError(t, err)
	assert.Equal(t, leave.BalanceCheck{Year: 2025, HasBalance: false, Remaining: 1, Requested: 2}, check)

	check, err = f.ledger.HasEnoughBalance(ctx, testStaffID, 2025, mustDate(t, "2025-03-20"), mustDate(t, "2025-03-20"), leave.CategoryPaid)
	require.NoError(t, err)
	assert.True(t, check.HasBalance)

	check, err = f.ledger.HasEnoughBalance(ctx, testStaffID, 2025, mustDate(t, "2025-03-20"), mustDate(t, "2025-03-29"), leave.CategorySick)
	require.NoError(t, err)
	assert.True(t, check.HasBalance)
	assert.Equal(t, 10, check.Requested)
	assert.Equal(t, 1, check.Remaining)
}

func TestLedger_CheckRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "seed-1", "2026-01-05", "2026-01-16", leave.CategoryPaid, leave.LeaveRequestStatusApproved)

	check, err := f.ledger.CheckRange(ctx, testStaffID, mustDate(t, "2025-12-29"), mustDate(t, "2026-01-02"), leave.CategoryPaid)
	require.NoError(t, err)
	assert.Equal(t, leave.BalanceCheck{Year: 2026, HasBalance: false, Remaining: 0, Requested: 5}, check)

	check, err = f.ledger.CheckRange(ctx, testStaffID, mustDate(t, "2025-03-20"), mustDate(t, "2025-03-21"), leave.CategoryPaid)
	require.NoError(t, err)
	assert.Equal(t, leave.BalanceCheck{Year: 2025, HasBalance: true, Remaining: 12, Requested: 2}, check)

	check, err = f.ledger.CheckRange(ctx, testStaffID, mustDate(t, "2025-12-29"), mustDate(t, "2026-01-02"), leave.CategoryUnpaid)
	require.NoError(t, err)
	assert.True(t, check.HasBalance)
	assert.Equal(t, 2025, check.Year)
}

func TestLedger_DirectoryFailureIsSurfaced(t *testing.T) {
	f := newFixture(t)
	f.dir.FailWith("leave_requests", errors.New("deadline exceeded"))

	_, err := f.ledger.Recalculate(context.Background(), testStaffID, 2025)
	require.Error(t, err)
	assert.True(t, directory.IsUnavailable(err))

	_, err = f.dir.LeaveBalances().Get(context.Background(), testStaffID, 2025)
	assert.ErrorIs(t, err, directory.ErrNotFound, "no balance may be written on failure")
}
