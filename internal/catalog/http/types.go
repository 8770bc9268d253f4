package http

import "github.com/ecap-org/ecap-directory/internal/catalog/service"

type Handler struct {
	countries  *service.CountryService
	industries *service.IndustryService
}

func New(countries *service.CountryService, industries *service.IndustryService) *Handler {
	return &Handler{countries: countries, industries: industries}
}
