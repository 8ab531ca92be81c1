package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/userctx"
)

// RequireAuth ensures the caller has an authenticated admin session and puts
// the actor identity into the request context. API callers get a JSON 401
// instead of a login redirect.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		userID, _ := sess.Get("user_id").(string)
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "authentication required"}`))
			return
		}

		role, _ := sess.Get("user_role").(string)
		email, _ := sess.Get("user_email").(string)

		actor := models.Actor{
			UserID: userID,
			Role:   role,
			Email:  email,
		}

		next.ServeHTTP(w, r.WithContext(userctx.SetActor(r.Context(), actor)))
	})
}
