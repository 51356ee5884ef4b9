package leave

import (
	"time"

	"github.com/learnhub-center/backoffice/internal/pkg/validator"
)

const maxReasonLength = 1000

// SubmitLeaveRequest is a staff member's new leave request.
type SubmitLeaveRequest struct {
	StaffID   string `json:"-"`
	StaffName string `json:"-"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Category  string `json:"category"`
	Reason    string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	// Staff
	if validator.IsEmpty(r.StaffID) {
		errs.Add("staff_id", "staff_id is required")
	}

	// Dates
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.EndDate) {
		errs.Add("end_date", "end_date is required")
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}

	// Category
	if validator.IsEmpty(r.Category) {
		errs.Add("category", "category is required")
	} else if !Category(r.Category).Valid() {
		errs.Add("category", "category must be one of paid, sick, personal, unpaid")
	}

	// Reason
	if validator.ExceedsLength(r.Reason, maxReasonLength) {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.Err()
}

// UpdateLeaveRequest is a soft edit of a pending request. Nil fields are left unchanged.
type UpdateLeaveRequest struct {
	ID        string  `json:"-"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Category  *string `json:"category,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}

	if r.Category != nil && !Category(*r.Category).Valid() {
		errs.Add("category", "category must be one of paid, sick, personal, unpaid")
	}

	if r.Reason != nil && validator.ExceedsLength(*r.Reason, maxReasonLength) {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	if r.StartDate == nil && r.EndDate == nil && r.Category == nil && r.Reason == nil {
		errs.Add("body", "at least one field must be provided")
	}

	return errs.Err()
}

// ChangesDates reports whether the edit touches the date range or category.
func (r *UpdateLeaveRequest) ChangesDates() bool {
	return r.StartDate != nil || r.EndDate != nil || r.Category != nil
}

type RejectLeaveRequest struct {
	RequestID string `json:"-"`
	Reason    string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs.Add("request_id", "request_id is required")
	}

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", ErrRejectionReasonRequired.Error())
	} else if validator.ExceedsLength(r.Reason, maxReasonLength) {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.Err()
}

// BalanceCheckRequest asks whether a prospective request fits the balance.
type BalanceCheckRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Category  string `json:"category"`
}

func (r *BalanceCheckRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", ErrEndBeforeStart.Error())
	}

	if !Category(r.Category).Valid() {
		errs.Add("category", "category must be one of paid, sick, personal, unpaid")
	}

	return errs.Err()
}

// LeaveRequestFilter narrows a request listing. Empty fields match everything.
type LeaveRequestFilter struct {
	StaffID string
	Status  string
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !LeaveRequestStatus(f.Status).Valid() {
		errs.Add("status", "status must be one of pending, approved, rejected")
	}

	return errs.Err()
}

// Matches reports whether r passes the filter.
func (f LeaveRequestFilter) Matches(r LeaveRequest) bool {
	if f.StaffID != "" && r.StaffID != f.StaffID {
		return false
	}
	if f.Status != "" && string(r.Status) != f.Status {
		return false
	}
	return true
}

type LeaveRequestResponse struct {
	ID              string     `json:"id"`
	StaffID         string     `json:"staff_id"`
	StaffName       string     `json:"staff_name"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Days            int        `json:"days"`
	Category        string     `json:"category"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApproverName    *string    `json:"approver_name,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		StaffID:         r.StaffID,
		StaffName:       r.StaffName,
		StartDate:       r.StartDate.Format(DateLayout),
		EndDate:         r.EndDate.Format(DateLayout),
		Days:            r.Days(),
		Category:        string(r.Category),
		Reason:          r.Reason,
		Status:          string(r.Status),
		ApprovedBy:      r.ApprovedBy,
		ApproverName:    r.ApproverName,
		ApprovedAt:      r.ApprovedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type ListLeaveRequestResponse struct {
	TotalCount int                    `json:"total_count"`
	Requests   []LeaveRequestResponse `json:"requests"`
}

type LeaveBalanceResponse struct {
	StaffID   string    `json:"staff_id"`
	Year      int       `json:"year"`
	Quota     int       `json:"quota"`
	Used      int       `json:"used"`
	Pending   int       `json:"pending"`
	Remaining int       `json:"remaining"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		StaffID:   b.StaffID,
		Year:      b.Year,
		Quota:     b.Quota,
		Used:      b.Used,
		Pending:   b.Pending,
		Remaining: b.Remaining,
		UpdatedAt: b.UpdatedAt,
	}
}

type BalanceCheckResponse struct {
	Year       int  `json:"year"`
	HasBalance bool `json:"has_balance"`
	Remaining  int  `json:"remaining"`
	Requested  int  `json:"requested"`
}
