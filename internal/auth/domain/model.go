package domain

import "github.com/ecap-org/ecap-directory/internal/apperr"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Profile is the identity returned by /auth/me.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

var (
	ErrInvalidCredentials = apperr.Unauthorized("invalid credentials")
	ErrAdminGone          = apperr.NotFound("not found")
)
