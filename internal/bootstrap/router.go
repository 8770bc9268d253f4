package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	adminhttp "github.com/ecap-org/ecap-directory/internal/admins/http"
	httpapi "github.com/ecap-org/ecap-directory/internal/api/http"
	"github.com/ecap-org/ecap-directory/internal/api/http/middleware"
	"github.com/ecap-org/ecap-directory/internal/auth"
	authhttp "github.com/ecap-org/ecap-directory/internal/auth/http"
	authmw "github.com/ecap-org/ecap-directory/internal/auth/middleware"
	cataloghttp "github.com/ecap-org/ecap-directory/internal/catalog/http"
	projecthttp "github.com/ecap-org/ecap-directory/internal/projects/http"
	uploadhttp "github.com/ecap-org/ecap-directory/internal/uploads/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	StoreDriver string
	// DB is reported by the health check. Leave nil for the memory store.
	DB             httpapi.Pinger
	AllowedOrigins []string
	UploadDir      string
	UploadPath     string
	Tokens         *auth.Tokens
	AdminLookup    authmw.AdminLookup
	Services       Services
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if len(dep.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
			ExposeHeaders:    []string{middleware.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	healthHandler := httpapi.NewHealthHandler(httpapi.HealthOptions{
		ServiceName: dep.ServiceName,
		Version:     dep.Version,
		Store:       dep.StoreDriver,
		DB:          dep.DB,
	})
	healthHandler.RegisterRoutes(r)

	if dep.UploadDir != "" && dep.UploadPath != "" {
		r.Static(dep.UploadPath, dep.UploadDir)
	}

	requireAdmin := authmw.RequireAdmin(dep.Tokens, dep.AdminLookup)
	svc := dep.Services

	api := r.Group("/api")

	authhttp.New(svc.Auth).Register(api.Group("/auth"), requireAdmin)

	cataloghttp.New(svc.Countries, svc.Industries).Register(api, requireAdmin)

	projects := projecthttp.New(svc.Projects)
	projects.Register(api.Group("/projects"), requireAdmin)

	admin := api.Group("/admin", requireAdmin)
	projects.RegisterAdmin(admin)

	adminhttp.New(svc.Admins).Register(api.Group("/admins", requireAdmin))

	uploadhttp.New(svc.Uploads).Register(api.Group("", requireAdmin))

	return r
}
