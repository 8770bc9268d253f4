package domain

import (
	"context"
	"strings"
	"time"

	"github.com/ecap-org/ecap-directory/internal/apperr"
)

// Admin is a back-office account. PasswordHash never leaves the server.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateAdminRequest represents data needed to create a new admin
type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

var (
	ErrNotFound   = apperr.NotFound("admin not found")
	ErrEmailTaken = apperr.Conflict("an admin with this email already exists")
	ErrLastAdmin  = apperr.Conflict("cannot delete the last admin")
	ErrSelfDelete = apperr.Conflict("you cannot delete yourself")
)

// Repository persists admins.
type Repository interface {
	// List returns all admins, newest first.
	List(ctx context.Context) ([]Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Count(ctx context.Context) (int, error)
	// Create fills ID and CreatedAt. A duplicate email yields ErrEmailTaken.
	Create(ctx context.Context, a *Admin) error
	// DeleteUnlessLast removes the admin unless it is the only one left,
	// in which case it returns ErrLastAdmin. The check and delete are atomic.
	DeleteUnlessLast(ctx context.Context, id string) error
}

// NormalizeEmail is the stored form of an admin email: trimmed and lowercased.
// Every write and lookup goes through it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
