package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/learnhub-center/backoffice/internal/domain/access"
	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	"github.com/learnhub-center/backoffice/internal/pkg/jwt"
	"github.com/learnhub-center/backoffice/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Rule violations that carry numbers
	var noticeErr *leave.NoticeError
	if errors.As(err, &noticeErr) {
		RuleViolation(w, "INSUFFICIENT_NOTICE", noticeErr.Error(), map[string]string{
			"span_days":            strconv.Itoa(noticeErr.SpanDays),
			"required_notice_days": strconv.Itoa(noticeErr.RequiredNotice),
			"given_notice_days":    strconv.Itoa(noticeErr.GivenNotice),
		})
		return
	}
	var spanErr *leave.SpanError
	if errors.As(err, &spanErr) {
		RuleViolation(w, "SPAN_TOO_LONG", spanErr.Error(), map[string]string{
			"span_days":     strconv.Itoa(spanErr.SpanDays),
			"max_span_days": strconv.Itoa(spanErr.MaxSpanDays),
		})
		return
	}
	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		RuleViolation(w, "INSUFFICIENT_BALANCE", balanceErr.Error(), map[string]string{
			"year":      strconv.Itoa(balanceErr.Year),
			"remaining": strconv.Itoa(balanceErr.Remaining),
			"requested": strconv.Itoa(balanceErr.Requested),
		})
		return
	}

	// Dependency failures
	if directory.IsUnavailable(err) {
		slog.Error("Directory unavailable", "error", err)
		ServiceUnavailable(w, "The staff directory is temporarily unavailable")
		return
	}

	switch {
	// Access domain errors
	case errors.Is(err, access.ErrActorMissing), errors.Is(err, jwt.ErrMissingStaffID):
		Unauthorized(w, err.Error())
	case errors.Is(err, access.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, access.ErrNotOwnRecord):
		Forbidden(w, err.Error())
	case errors.Is(err, access.ErrStatusOnlyEdit):
		Forbidden(w, err.Error())
	case errors.Is(err, access.ErrUnknownRole),
		errors.Is(err, access.ErrUnknownModule),
		errors.Is(err, access.ErrUnknownAction):
		BadRequest(w, err.Error(), nil)

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyDecided):
		Conflict(w, "Leave request has already been decided")
	case errors.Is(err, leave.ErrStartDateInPast):
		RuleViolation(w, "START_DATE_IN_PAST", err.Error(), nil)
	case errors.Is(err, leave.ErrEndBeforeStart):
		RuleViolation(w, "END_BEFORE_START", err.Error(), nil)
	case errors.Is(err, leave.ErrSelfDecision):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrRejectionReasonRequired):
		ValidationError(w, map[string]string{"reason": err.Error()})
	case errors.Is(err, leave.ErrInvalidCategory),
		errors.Is(err, leave.ErrInvalidStatus),
		errors.Is(err, leave.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
