// Package memory is a process-local implementation of every repository,
// selected with STORE_DRIVER=memory. Data is lost on restart.
package memory

import (
	"sync"
	"time"

	admins "github.com/ecap-org/ecap-directory/internal/admins/domain"
	catalog "github.com/ecap-org/ecap-directory/internal/catalog/domain"
)

// projectRow is a stored project without its embedded catalog rows.
type projectRow struct {
	seq        int64
	id         string
	nameEn     string
	nameAr     string
	nameFr     string
	descEn     string
	descAr     string
	descFr     string
	website    string
	email      string
	phone      string
	countryID  string
	industryID string
	logoEn     string
	logoAr     string
	logoFr     string
	createdAt  time.Time
	updatedAt  time.Time
}

// Store guards all tables with one lock, so multi-table checks such as
// the referential guards are atomic.
type Store struct {
	mu         sync.RWMutex
	admins     map[string]admins.Admin
	countries  map[string]catalog.Country
	industries map[string]catalog.Industry
	projects   map[string]*projectRow
	seq        int64
	now        func() time.Time
}

func New() *Store {
	return &Store{
		admins:     map[string]admins.Admin{},
		countries:  map[string]catalog.Country{},
		industries: map[string]catalog.Industry{},
		projects:   map[string]*projectRow{},
		now:        time.Now,
	}
}

func (s *Store) Admins() *AdminRepository {
	return &AdminRepository{s: s}
}

func (s *Store) Countries() *CountryRepository {
	return &CountryRepository{s: s}
}

func (s *Store) Industries() *IndustryRepository {
	return &IndustryRepository{s: s}
}

func (s *Store) Projects() *ProjectRepository {
	return &ProjectRepository{s: s}
}
