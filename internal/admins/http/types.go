package http

import "github.com/ecap-org/ecap-directory/internal/admins/service"

type Handler struct {
	adminService *service.AdminService
}

func New(adminService *service.AdminService) *Handler {
	return &Handler{adminService: adminService}
}
