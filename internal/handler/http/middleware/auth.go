package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/learnhub-center/backoffice/internal/handler/http/response"
)

// AuthRequired rejects requests without a verified token. Run after
// jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())

		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.Unauthorized(w, "missing token")
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
