package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub-center/backoffice/internal/domain/access"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/handler/http/response"
	"github.com/learnhub-center/backoffice/internal/pkg/validator"
)

type LeaveHandler interface {
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	RecalculateBalance(w http.ResponseWriter, r *http.Request)
	CheckBalance(w http.ResponseWriter, r *http.Request)

	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	UpdateRequest(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// yearParam reads ?year=, defaulting to the current year.
func yearParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || !validator.IsValidYear(year) {
		return 0, leave.ErrInvalidYear
	}
	return year, nil
}

// authorizeOwner checks action on a leave record owned by ownerID.
func authorizeOwner(actor access.Actor, action access.Action, ownerID string) error {
	c := actor.Capability(access.ModuleLeaveRequests)
	if !c.Allows(action) {
		return access.ErrInsufficientPermissions
	}
	if !access.CanActOn(c, action, actor.StaffID, ownerID) {
		return access.ErrNotOwnRecord
	}
	return nil
}

// GetMyBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := l.leaveService.GetBalance(r.Context(), actor.StaffID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveBalanceResponse(balance))
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}
	if err := authorizeOwner(actor, access.ActionView, staffID); err != nil {
		response.HandleError(w, err)
		return
	}

	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := l.leaveService.GetBalance(r.Context(), staffID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveBalanceResponse(balance))
}

// RecalculateBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) RecalculateBalance(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	year, err := yearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := l.leaveService.RecalculateBalance(r.Context(), staffID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance recalculated successfully", leave.NewLeaveBalanceResponse(balance))
}

// CheckBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) CheckBalance(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.BalanceCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	check, err := l.leaveService.CheckBalance(r.Context(), actor.StaffID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.BalanceCheckResponse{
		Year:       check.Year,
		HasBalance: check.HasBalance,
		Remaining:  check.Remaining,
		Requested:  check.Requested,
	})
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := leave.LeaveRequestFilter{
		StaffID: r.URL.Query().Get("staff_id"),
		Status:  r.URL.Query().Get("status"),
	}

	c := actor.Capability(access.ModuleLeaveRequests)
	if c.Restrictions.Has(access.OnlyOwnData) {
		if filter.StaffID != "" && filter.StaffID != actor.StaffID {
			response.HandleError(w, access.ErrNotOwnRecord)
			return
		}
		filter.StaffID = actor.StaffID
	}

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	requests = access.FilterOwnData(c, actor.StaffID, requests, func(lr leave.LeaveRequest) string {
		return lr.StaffID
	})

	resp := leave.ListLeaveRequestResponse{
		TotalCount: len(requests),
		Requests:   make([]leave.LeaveRequestResponse, 0, len(requests)),
	}
	for _, lr := range requests {
		resp.Requests = append(resp.Requests, leave.NewLeaveRequestResponse(lr))
	}

	response.Success(w, resp)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := l.leaveService.GetLeaveRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if err := authorizeOwner(actor, access.ActionView, request.StaffID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponse(request))
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = actor.StaffID
	req.StaffName = actor.Name

	created, err := l.leaveService.SubmitLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.NewLeaveRequestResponse(created))
}

// UpdateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.UpdateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = requestID

	existing, err := l.leaveService.GetLeaveRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if err := authorizeOwner(actor, access.ActionEdit, existing.StaffID); err != nil {
		response.HandleError(w, err)
		return
	}
	if err := access.CheckStatusOnlyEdit(actor.Capability(access.ModuleLeaveRequests), changedFields(req)); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := l.leaveService.UpdateLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", leave.NewLeaveRequestResponse(updated))
}

func changedFields(req leave.UpdateLeaveRequest) []string {
	var fields []string
	if req.StartDate != nil {
		fields = append(fields, "start_date")
	}
	if req.EndDate != nil {
		fields = append(fields, "end_date")
	}
	if req.Category != nil {
		fields = append(fields, "category")
	}
	if req.Reason != nil {
		fields = append(fields, "reason")
	}
	return fields
}

// DeleteRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	existing, err := l.leaveService.GetLeaveRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if err := authorizeOwner(actor, access.ActionDelete, existing.StaffID); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := l.leaveService.DeleteLeaveRequest(r.Context(), requestID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	approved, err := l.leaveService.ApproveLeaveRequest(r.Context(), requestID, leave.Approver{ID: actor.StaffID, Name: actor.Name})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", leave.NewLeaveRequestResponse(approved))
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = requestID

	rejected, err := l.leaveService.RejectLeaveRequest(r.Context(), req, leave.Approver{ID: actor.StaffID, Name: actor.Name})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", leave.NewLeaveRequestResponse(rejected))
}
