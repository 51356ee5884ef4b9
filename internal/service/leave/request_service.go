package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
)

// RequestService runs the leave request lifecycle: Pending, then exactly one
// of Approved or Rejected. Every rule is checked before anything is written,
// and every write is followed by a ledger recalculation.
type RequestService struct {
	leave.LeaveRequestRepository
	staff.StaffRepository
	ledger *Ledger
	policy NoticePolicy
	now    func() time.Time
	newID  func() string
}

func NewRequestService(requestRepository leave.LeaveRequestRepository, staffRepository staff.StaffRepository, ledger *Ledger, policy NoticePolicy) *RequestService {
	return &RequestService{
		LeaveRequestRepository: requestRepository,
		StaffRepository:        staffRepository,
		ledger:                 ledger,
		policy:                 policy,
		now:                    time.Now,
		newID:                  newRequestID,
	}
}

// WithClock replaces the time source for date rules and timestamps. The
// ledger is switched to the same clock.
func (r *RequestService) WithClock(now func() time.Time) *RequestService {
	r.now = now
	r.ledger.WithClock(now)
	return r
}

func newRequestID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Submit validates and creates a pending request.
func (r *RequestService) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	startDate, err := leave.ParseDate(req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := leave.ParseDate(req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	category := leave.Category(req.Category)

	if err := r.validateDates(startDate, endDate); err != nil {
		return leave.LeaveRequest{}, err
	}

	staffName := req.StaffName
	if staffName == "" {
		s, err := r.StaffRepository.GetByID(ctx, req.StaffID)
		if err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				return leave.LeaveRequest{}, staff.ErrStaffNotFound
			}
			return leave.LeaveRequest{}, fmt.Errorf("failed to get staff by ID: %w", err)
		}
		staffName = s.Name
	}

	if err := r.checkBalance(ctx, req.StaffID, startDate, endDate, category); err != nil {
		return leave.LeaveRequest{}, err
	}

	now := r.now()
	request := leave.LeaveRequest{
		ID:        r.newID(),
		StaffID:   req.StaffID,
		StaffName: staffName,
		StartDate: startDate,
		EndDate:   endDate,
		Category:  category,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    leave.LeaveRequestStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := r.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted",
		"request_id", created.ID,
		"staff_id", created.StaffID,
		"category", created.Category,
		"days", created.Days(),
	)

	if err := r.recalculate(ctx, created); err != nil {
		return created, err
	}
	return created, nil
}

// Approve moves a pending request to Approved. Nobody decides their own request.
func (r *RequestService) Approve(ctx context.Context, requestID string, approver leave.Approver) (leave.LeaveRequest, error) {
	request, err := r.getPending(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.StaffID == approver.ID {
		return leave.LeaveRequest{}, leave.ErrSelfDecision
	}

	approvedAt := r.now()
	request.Status = leave.LeaveRequestStatusApproved
	request.ApprovedBy = &approver.ID
	request.ApproverName = &approver.Name
	request.ApprovedAt = &approvedAt
	request.UpdatedAt = approvedAt

	if err := r.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("Leave request approved", "request_id", request.ID, "staff_id", request.StaffID, "approved_by", approver.ID)

	if err := r.recalculate(ctx, request); err != nil {
		return request, err
	}
	return request, nil
}

// Reject moves a pending request to Rejected. The reason is mandatory.
func (r *RequestService) Reject(ctx context.Context, req leave.RejectLeaveRequest, approver leave.Approver) (leave.LeaveRequest, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return leave.LeaveRequest{}, leave.ErrRejectionReasonRequired
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := r.getPending(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.StaffID == approver.ID {
		return leave.LeaveRequest{}, leave.ErrSelfDecision
	}

	rejectedAt := r.now()
	request.Status = leave.LeaveRequestStatusRejected
	request.RejectionReason = &reason
	request.ApprovedBy = &approver.ID
	request.ApproverName = &approver.Name
	request.ApprovedAt = &rejectedAt
	request.UpdatedAt = rejectedAt

	if err := r.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("Leave request rejected", "request_id", request.ID, "staff_id", request.StaffID, "rejected_by", approver.ID)

	if err := r.recalculate(ctx, request); err != nil {
		return request, err
	}
	return request, nil
}

// Delete removes a pending request. Decided requests are kept as audit records.
func (r *RequestService) Delete(ctx context.Context, requestID string) error {
	request, err := r.getPending(ctx, requestID)
	if err != nil {
		return err
	}

	if err := r.LeaveRequestRepository.Delete(ctx, request.ID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return leave.ErrRequestNotFound
		}
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	slog.Info("Leave request deleted", "request_id", request.ID, "staff_id", request.StaffID)

	return r.recalculate(ctx, request)
}

// UpdatePending applies a soft edit to a pending request. New dates go
// through the same rules as a submission; the status never changes.
func (r *RequestService) UpdatePending(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := r.getPending(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	previous := request

	if req.StartDate != nil {
		if request.StartDate, err = leave.ParseDate(*req.StartDate); err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
		}
	}
	if req.EndDate != nil {
		if request.EndDate, err = leave.ParseDate(*req.EndDate); err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
		}
	}
	if req.Category != nil {
		request.Category = leave.Category(*req.Category)
	}
	if req.Reason != nil {
		request.Reason = strings.TrimSpace(*req.Reason)
	}

	if req.ChangesDates() {
		if err := r.validateDates(request.StartDate, request.EndDate); err != nil {
			return leave.LeaveRequest{}, err
		}
		if err := r.checkBalance(ctx, request.StaffID, request.StartDate, request.EndDate, request.Category, request.ID); err != nil {
			return leave.LeaveRequest{}, err
		}
	}

	request.UpdatedAt = r.now()
	if err := r.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("Leave request updated", "request_id", request.ID, "staff_id", request.StaffID)

	if req.ChangesDates() {
		if err := r.recalculate(ctx, previous, request); err != nil {
			return request, err
		}
	}
	return request, nil
}

func (r *RequestService) getPending(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	request, err := r.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	if !request.IsPending() {
		return leave.LeaveRequest{}, leave.ErrRequestAlreadyDecided
	}
	return request, nil
}

// Validate date rules
func (r *RequestService) validateDates(startDate, endDate time.Time) error {
	today := leave.TruncateDate(r.now())

	if startDate.Before(today) {
		return leave.ErrStartDateInPast
	}
	if endDate.Before(startDate) {
		return leave.ErrEndBeforeStart
	}
	if err := r.policy.CheckSpan(startDate, endDate); err != nil {
		return err
	}

	span := leave.CalculateDays(startDate, endDate)
	notice := leave.DaysBetween(today, startDate)
	return r.policy.Check(span, notice)
}

func (r *RequestService) checkBalance(ctx context.Context, staffID string, startDate, endDate time.Time, category leave.Category, exclude ...string) error {
	if !category.ConsumesQuota() {
		return nil
	}

	check, err := r.ledger.CheckRange(ctx, staffID, startDate, endDate, category, exclude...)
	if err != nil {
		return fmt.Errorf("failed to check leave balance: %w", err)
	}
	if !check.HasBalance {
		return &leave.InsufficientBalanceError{Year: check.Year, Remaining: check.Remaining, Requested: check.Requested}
	}
	return nil
}

// recalculate refreshes the balances of every year the requests touch. The
// request write has already happened, so a failure here leaves a stale
// balance that the next recalculation repairs.
func (r *RequestService) recalculate(ctx context.Context, requests ...leave.LeaveRequest) error {
	for _, request := range requests {
		if err := r.ledger.RecalculateRange(ctx, request.StaffID, request.StartDate, request.EndDate); err != nil {
			slog.Warn("Leave balance recalculation failed",
				"staff_id", request.StaffID,
				"request_id", request.ID,
				"error", err,
			)
			return fmt.Errorf("failed to recalculate leave balance: %w", err)
		}
	}
	return nil
}
