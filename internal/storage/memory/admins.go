package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/ecap-org/ecap-directory/internal/admins/domain"
)

type AdminRepository struct {
	s *Store
}

func (r *AdminRepository) List(_ context.Context) ([]domain.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Admin, 0, len(r.s.admins))
	for _, a := range r.s.admins {
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *AdminRepository) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.admins[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *AdminRepository) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.admins {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AdminRepository) AdminExists(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.admins[id]
	return ok, nil
}

func (r *AdminRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.admins), nil
}

func (r *AdminRepository) Create(_ context.Context, a *domain.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.admins {
		if existing.Email == a.Email {
			return domain.ErrEmailTaken
		}
	}
	a.ID = uuid.NewString()
	a.CreatedAt = r.s.now().UTC()
	r.s.admins[a.ID] = *a
	return nil
}

func (r *AdminRepository) DeleteUnlessLast(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.admins[id]; !ok {
		return domain.ErrNotFound
	}
	if len(r.s.admins) <= 1 {
		return domain.ErrLastAdmin
	}
	delete(r.s.admins, id)
	return nil
}
