package service

import (
	"context"
	"strings"

	"github.com/ecap-org/ecap-directory/internal/admins/domain"
	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/auth"
	"github.com/ecap-org/ecap-directory/internal/logging"
)

type AdminService struct {
	repo domain.Repository
}

func NewAdminService(repo domain.Repository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	return s.repo.List(ctx)
}

// Create registers a new admin. Name, email and password are all required.
func (s *AdminService) Create(ctx context.Context, req domain.CreateAdminRequest) (*domain.Admin, error) {
	name := strings.TrimSpace(req.Name)
	email := domain.NormalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, apperr.Validation("name, email and password are required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	a := &domain.Admin{Name: name, Email: email, PasswordHash: hash}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	logging.New(ctx).Infof("admins.create", "id=%s email=%s", a.ID, a.Email)
	return a, nil
}

// Delete removes the admin identified by id on behalf of the session owner.
// Admins cannot delete themselves and the last remaining admin is kept.
func (s *AdminService) Delete(ctx context.Context, session auth.Session, id string) error {
	if id == session.AdminID {
		return domain.ErrSelfDelete
	}
	if err := s.repo.DeleteUnlessLast(ctx, id); err != nil {
		return err
	}

	logging.New(ctx).Infof("admins.delete", "id=%s by=%s", id, session.AdminID)
	return nil
}
