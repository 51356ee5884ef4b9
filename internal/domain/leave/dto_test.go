package leave

import (
	"testing"

	"github.com/learnhub-center/backoffice/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestSubmitLeaveRequest_Validate(t *testing.T) {
	valid := SubmitLeaveRequest{
		StaffID:   "s-1",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-11",
		Category:  "paid",
	}
	assert.NoError(t, valid.Validate())

	invalid := SubmitLeaveRequest{
		StartDate: "10/03/2025",
		Category:  "holiday",
	}
	fields := fieldErrors(t, invalid.Validate())
	assert.Contains(t, fields, "staff_id")
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "end_date")
	assert.Contains(t, fields, "category")
}

func TestUpdateLeaveRequest_Validate(t *testing.T) {
	empty := UpdateLeaveRequest{ID: "r-1"}
	assert.Contains(t, fieldErrors(t, empty.Validate()), "body")

	reason := "family trip"
	onlyReason := UpdateLeaveRequest{ID: "r-1", Reason: &reason}
	assert.NoError(t, onlyReason.Validate())
	assert.False(t, onlyReason.ChangesDates())

	badDate := "tomorrow"
	withDate := UpdateLeaveRequest{ID: "r-1", EndDate: &badDate}
	assert.Contains(t, fieldErrors(t, withDate.Validate()), "end_date")
	assert.True(t, withDate.ChangesDates())
}

func TestRejectLeaveRequest_Validate(t *testing.T) {
	missing := RejectLeaveRequest{RequestID: "r-1", Reason: "   "}
	assert.Equal(t, ErrRejectionReasonRequired.Error(), fieldErrors(t, missing.Validate())["reason"])

	ok := RejectLeaveRequest{RequestID: "r-1", Reason: "exam week"}
	assert.NoError(t, ok.Validate())
}

func TestBalanceCheckRequest_Validate(t *testing.T) {
	reversed := BalanceCheckRequest{StartDate: "2025-03-12", EndDate: "2025-03-10", Category: "paid"}
	assert.Contains(t, fieldErrors(t, reversed.Validate()), "end_date")

	ok := BalanceCheckRequest{StartDate: "2025-03-10", EndDate: "2025-03-12", Category: "sick"}
	assert.NoError(t, ok.Validate())
}

func TestLeaveRequestFilter(t *testing.T) {
	bad := LeaveRequestFilter{Status: "cancelled"}
	assert.Contains(t, fieldErrors(t, bad.Validate()), "status")

	f := LeaveRequestFilter{StaffID: "s-1", Status: "pending"}
	assert.True(t, f.Matches(LeaveRequest{StaffID: "s-1", Status: LeaveRequestStatusPending}))
	assert.False(t, f.Matches(LeaveRequest{StaffID: "s-2", Status: LeaveRequestStatusPending}))
	assert.False(t, f.Matches(LeaveRequest{StaffID: "s-1", Status: LeaveRequestStatusApproved}))
	assert.True(t, LeaveRequestFilter{}.Matches(LeaveRequest{StaffID: "anyone"}))
}
