package httpapi

import (
	"errors"
	"net/http"

	"adboard.org/internal/auth"
	"adboard.org/internal/obs"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Position string `json:"position"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    userPayload `json:"user"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.auth.Login(r.Context(), a.jar(w, r), req.Email, req.Password)
	if err != nil {
		obs.CountLogin("rejected")
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, "invalid email or password")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "login failed")
		return
	}

	obs.CountLogin("ok")
	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User: userPayload{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			Position: user.Position,
		},
	})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	// Clearing an absent session is fine; logout is idempotent.
	a.auth.Logout(a.jar(w, r))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// requireUser is the per-endpoint guard: it resolves the session credential
// and rejects with 401 before any repository access happens.
func (a *API) requireUser(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	user, err := a.auth.RequireAuthenticated(r.Context(), a.jar(w, r))
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			writeError(w, r, http.StatusUnauthorized, "unauthenticated")
		} else {
			writeError(w, r, http.StatusInternalServerError, "authentication error")
		}
		return nil, false
	}
	return user, true
}
