package middleware

import (
	"fmt"
	"net/http"

	"github.com/learnhub-center/backoffice/internal/domain/access"
	"github.com/learnhub-center/backoffice/internal/handler/http/response"
)

// RequirePermission checks the actor's role against the permission table.
func RequirePermission(module access.Module, action access.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := access.ActorFrom(r.Context())
			if !ok {
				response.HandleError(w, access.ErrActorMissing)
				return
			}

			if !actor.Can(module, action) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s' on '%s', but role is '%s'", action, module, actor.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
