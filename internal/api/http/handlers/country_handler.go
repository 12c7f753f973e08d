package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/riskzero/supplier-registry/internal/domain"
	"github.com/riskzero/supplier-registry/internal/service"
)

// CountryHandler exposes the read-only country listing.
type CountryHandler struct {
	countries *service.CountryService
}

// NewCountryHandler constructs handler.
func NewCountryHandler(countries *service.CountryService) *CountryHandler {
	return &CountryHandler{countries: countries}
}

// List handles GET /api/country.
func (h *CountryHandler) List(c *fiber.Ctx) error {
	countries, err := h.countries.List(c.Context())
	if err != nil {
		return err
	}
	if countries == nil {
		countries = []domain.Country{}
	}

	return c.JSON(fiber.Map{
		"message": "Countries retrieved successfully.",
		"data":    countries,
	})
}
