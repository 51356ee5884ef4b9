package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	ledger         *Ledger
	requestService *RequestService
}

// GetBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) GetBalance(ctx context.Context, staffID string, year int) (leave.LeaveBalance, error) {
	if !validator.IsValidYear(year) {
		return leave.LeaveBalance{}, leave.ErrInvalidYear
	}
	return l.ledger.GetOrCreateBalance(ctx, staffID, year)
}

// RecalculateBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) RecalculateBalance(ctx context.Context, staffID string, year int) (leave.LeaveBalance, error) {
	if !validator.IsValidYear(year) {
		return leave.LeaveBalance{}, leave.ErrInvalidYear
	}
	return l.ledger.Recalculate(ctx, staffID, year)
}

// CheckBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) CheckBalance(ctx context.Context, staffID string, req leave.BalanceCheckRequest) (leave.BalanceCheck, error) {
	if err := req.Validate(); err != nil {
		return leave.BalanceCheck{}, err
	}

	startDate, err := leave.ParseDate(req.StartDate)
	if err != nil {
		return leave.BalanceCheck{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := leave.ParseDate(req.EndDate)
	if err != nil {
		return leave.BalanceCheck{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if err := l.requestService.policy.CheckSpan(startDate, endDate); err != nil {
		return leave.BalanceCheck{}, err
	}
	return l.ledger.CheckRange(ctx, staffID, startDate, endDate, leave.Category(req.Category))
}

// SubmitLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	return l.requestService.Submit(ctx, req)
}

// UpdateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveRequest(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveRequest, error) {
	return l.requestService.UpdatePending(ctx, req)
}

// ApproveLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, requestID string, approver leave.Approver) (leave.LeaveRequest, error) {
	return l.requestService.Approve(ctx, requestID, approver)
}

// RejectLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.RejectLeaveRequest, approver leave.Approver) (leave.LeaveRequest, error) {
	return l.requestService.Reject(ctx, req, approver)
}

// DeleteLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, requestID string) error {
	return l.requestService.Delete(ctx, requestID)
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	ledger *Ledger,
	requestService *RequestService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		ledger:                 ledger,
		requestService:         requestService,
	}
}
