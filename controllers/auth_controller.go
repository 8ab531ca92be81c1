package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/tradeverity/governance-core/authenticator"
)

// AuthController handles the admin OIDC login flow
type AuthController struct{}

// NewAuthController creates a new auth controller
func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login initiates the authentication process
func (c *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := generateRandomState()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set("state", state)

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the redirect from the identity provider and maps the
// token claims onto the session actor identity used for audit entries.
func (c *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		storedState, _ := sess.Get("state").(string)
		if storedState == "" || r.URL.Query().Get("state") != storedState {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
			return
		}

		userID := claims.String("sub")
		if userID == "" {
			http.Error(w, "ID token has no subject", http.StatusUnauthorized)
			return
		}

		role := claims.String("role")
		if role == "" {
			role = "platform-admin"
		}

		sess.Set("user_id", userID)
		sess.Set("user_role", role)
		sess.Set("user_email", claims.String("email"))
		sess.Delete("state")

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout clears the admin session
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("user_id")
	sess.Delete("user_role")
	sess.Delete("user_email")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
