package service

import (
	"context"
	"errors"

	admindomain "github.com/ecap-org/ecap-directory/internal/admins/domain"
	"github.com/ecap-org/ecap-directory/internal/auth"
	"github.com/ecap-org/ecap-directory/internal/auth/domain"
	"github.com/ecap-org/ecap-directory/internal/logging"
)

// AdminReader is the slice of the admin store the auth flow needs.
type AdminReader interface {
	GetByEmail(ctx context.Context, email string) (*admindomain.Admin, error)
	GetByID(ctx context.Context, id string) (*admindomain.Admin, error)
}

type AuthService struct {
	admins AdminReader
	tokens *auth.Tokens
}

func NewAuthService(admins AdminReader, tokens *auth.Tokens) *AuthService {
	return &AuthService{
		admins: admins,
		tokens: tokens,
	}
}

// Login exchanges credentials for a signed token. Unknown emails and wrong
// passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	log := logging.New(ctx)

	admin, err := s.admins.GetByEmail(ctx, admindomain.NormalizeEmail(req.Email))
	if errors.Is(err, admindomain.ErrNotFound) {
		log.Warnf("auth.login", "unknown email")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.VerifyPassword(req.Password, admin.PasswordHash) {
		log.Warnf("auth.login", "bad password admin_id=%s", admin.ID)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(auth.Claims{ID: admin.ID, Email: admin.Email})
	if err != nil {
		return nil, err
	}

	log.Infof("auth.login", "admin_id=%s", admin.ID)
	return &domain.LoginResponse{Token: token, Name: admin.Name}, nil
}

// Me returns the profile of the session owner.
func (s *AuthService) Me(ctx context.Context, session auth.Session) (*domain.Profile, error) {
	admin, err := s.admins.GetByID(ctx, session.AdminID)
	if errors.Is(err, admindomain.ErrNotFound) {
		return nil, domain.ErrAdminGone
	}
	if err != nil {
		return nil, err
	}
	return &domain.Profile{ID: admin.ID, Email: admin.Email, Name: admin.Name}, nil
}
