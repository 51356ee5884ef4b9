package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/learnhub-center/backoffice/internal/domain/access"
	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	"github.com/learnhub-center/backoffice/internal/handler/http/response"
	"github.com/learnhub-center/backoffice/internal/pkg/jwt"
)

// Actor loads the caller's staff record and resolves their role on every
// request, so profile changes take effect immediately. A caller without a
// staff record gets the default role.
func Actor(jwtService jwt.Service, staffRepository staff.StaffRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			staffID, err := jwtService.StaffIDFromClaims(claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			actor := access.Actor{StaffID: staffID}
			s, err := staffRepository.GetByID(r.Context(), staffID)
			switch {
			case err == nil:
				actor.Name = s.Name
				actor.Role = access.ResolveStaffRole(&s)
			case errors.Is(err, directory.ErrNotFound):
				slog.Warn("Staff record not found, using default role", "staff_id", staffID)
				actor.Role = access.ResolveStaffRole(nil)
			default:
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(access.WithActor(r.Context(), actor)))
		})
	}
}
