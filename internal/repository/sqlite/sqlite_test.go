package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStaff_SeedAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	quota := 10
	require.NoError(t, store.Seed(ctx, []staff.Staff{
		{ID: "s-1", Name: "Lan Nguyen", Position: "Teacher", LeaveQuota: &quota},
	}))

	s, err := store.Staff().GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "Lan Nguyen", s.Name)
	assert.Nil(t, s.Role)
	assert.Equal(t, 10, s.QuotaOr(12))
	assert.False(t, s.CreatedAt.IsZero())

	_, err = store.Staff().GetByID(ctx, "s-9")
	assert.ErrorIs(t, err, directory.ErrNotFound)
}

func TestLeaveRequests_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).LeaveRequests()

	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	start, _ := leave.ParseDate("2025-03-20")
	end, _ := leave.ParseDate("2025-03-22")

	in := leave.LeaveRequest{
		ID:        "r-1",
		StaffID:   "s-1",
		StaffName: "Lan Nguyen",
		StartDate: start,
		EndDate:   end,
		Category:  leave.CategoryPaid,
		Reason:    "family visit",
		Status:    leave.LeaveRequestStatusPending,
		CreatedAt: created,
		UpdatedAt: created,
	}
	out, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 3, out.Days())

	approver, name := "ops-1", "Hoa Tran"
	approvedAt := created.Add(time.Hour)
	out.Status = leave.LeaveRequestStatusApproved
	out.ApprovedBy = &approver
	out.ApproverName = &name
	out.ApprovedAt = &approvedAt
	out.UpdatedAt = approvedAt
	require.NoError(t, repo.Update(ctx, out))

	got, err := repo.GetByID(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, out, got)

	byStatus, err := repo.GetByStatus(ctx, leave.LeaveRequestStatusApproved)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	filtered, err := repo.List(ctx, leave.LeaveRequestFilter{StaffID: "s-1", Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, filtered)

	require.NoError(t, repo.Delete(ctx, "r-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "r-1"), directory.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, out), directory.ErrNotFound)
}

func TestLeaveRequests_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).LeaveRequests()

	for i, start := range []string{"2025-02-01", "2025-06-01", "2025-04-01"} {
		d, _ := leave.ParseDate(start)
		_, err := repo.Create(ctx, leave.LeaveRequest{
			ID:        []string{"a", "b", "c"}[i],
			StaffID:   "s-1",
			StartDate: d,
			EndDate:   d,
			Category:  leave.CategorySick,
			Status:    leave.LeaveRequestStatusPending,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	requests, err := repo.GetByStaffID(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "b", requests[0].ID)
	assert.Equal(t, "c", requests[1].ID)
	assert.Equal(t, "a", requests[2].ID)
}

func TestLeaveBalances_Put(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).LeaveBalances()

	_, err := repo.Get(ctx, "s-1", 2025)
	assert.ErrorIs(t, err, directory.ErrNotFound)

	at := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Put(ctx, leave.LeaveBalance{StaffID: "s-1", Year: 2025, Quota: 12, Remaining: 12, UpdatedAt: at}))
	require.NoError(t, repo.Put(ctx, leave.LeaveBalance{StaffID: "s-1", Year: 2025, Quota: 12, Used: 4, Remaining: 8, UpdatedAt: at}))

	b, err := repo.Get(ctx, "s-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveBalance{
		ID:        leave.BalanceID("s-1", 2025),
		StaffID:   "s-1",
		Year:      2025,
		Quota:     12,
		Used:      4,
		Remaining: 8,
		UpdatedAt: at,
	}, b)
}
