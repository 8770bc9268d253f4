package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	admindomain "github.com/ecap-org/ecap-directory/internal/admins/domain"
	adminrepo "github.com/ecap-org/ecap-directory/internal/admins/repository"
	adminsvc "github.com/ecap-org/ecap-directory/internal/admins/service"
	"github.com/ecap-org/ecap-directory/internal/auth"
	authmw "github.com/ecap-org/ecap-directory/internal/auth/middleware"
	authsvc "github.com/ecap-org/ecap-directory/internal/auth/service"
	catalogdomain "github.com/ecap-org/ecap-directory/internal/catalog/domain"
	catalogrepo "github.com/ecap-org/ecap-directory/internal/catalog/repository"
	catalogsvc "github.com/ecap-org/ecap-directory/internal/catalog/service"
	projectdomain "github.com/ecap-org/ecap-directory/internal/projects/domain"
	projectrepo "github.com/ecap-org/ecap-directory/internal/projects/repository"
	projectsvc "github.com/ecap-org/ecap-directory/internal/projects/service"
	"github.com/ecap-org/ecap-directory/internal/storage/memory"
	uploaddomain "github.com/ecap-org/ecap-directory/internal/uploads/domain"
	uploadsvc "github.com/ecap-org/ecap-directory/internal/uploads/service"
)

// adminStore is what the admin, auth and middleware layers need from persistence.
type adminStore interface {
	admindomain.Repository
	authmw.AdminLookup
}

// projectStore serves both project persistence and the reference checks.
type projectStore interface {
	projectdomain.Repository
	projectdomain.References
}

// Repositories is one complete persistence backend.
type Repositories struct {
	Admins     adminStore
	Countries  catalogdomain.CountryRepository
	Industries catalogdomain.IndustryRepository
	Projects   projectStore
}

func PostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Admins:     adminrepo.NewAdminRepository(db),
		Countries:  catalogrepo.NewCountryRepository(db),
		Industries: catalogrepo.NewIndustryRepository(db),
		Projects:   projectrepo.NewProjectRepository(db),
	}
}

func MemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Admins:     store.Admins(),
		Countries:  store.Countries(),
		Industries: store.Industries(),
		Projects:   store.Projects(),
	}
}

type Services struct {
	Auth       *authsvc.AuthService
	Admins     *adminsvc.AdminService
	Countries  *catalogsvc.CountryService
	Industries *catalogsvc.IndustryService
	Projects   *projectsvc.ProjectService
	Uploads    *uploadsvc.UploadService
}

type ServiceOptions struct {
	Tokens           *auth.Tokens
	Cache            catalogdomain.ListCache
	Blobs            uploaddomain.BlobStore
	UploadPublicPath string
	UploadMaxBytes   int64
}

func NewServices(repos Repositories, opt ServiceOptions) Services {
	return Services{
		Auth:       authsvc.NewAuthService(repos.Admins, opt.Tokens),
		Admins:     adminsvc.NewAdminService(repos.Admins),
		Countries:  catalogsvc.NewCountryService(repos.Countries, opt.Cache),
		Industries: catalogsvc.NewIndustryService(repos.Industries, opt.Cache),
		Projects:   projectsvc.NewProjectService(repos.Projects, repos.Projects),
		Uploads:    uploadsvc.NewUploadService(opt.Blobs, opt.UploadPublicPath, opt.UploadMaxBytes),
	}
}
