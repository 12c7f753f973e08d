package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/riskzero/supplier-registry/internal/service"
)

// refreshParam clears the cached report before screening; it is consumed
// here and never forwarded to the provider.
const refreshParam = "refresh"

// ScreeningHandler runs watch-list lookups for a supplier.
type ScreeningHandler struct {
	suppliers *service.SupplierService
	screening *service.ScreeningService
}

// NewScreeningHandler constructs handler.
func NewScreeningHandler(suppliers *service.SupplierService, screeningService *service.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{suppliers: suppliers, screening: screeningService}
}

// Screen handles GET /api/supplier/:taxId/screening. Query parameters other
// than refresh are forwarded to the provider as extra filters.
func (h *ScreeningHandler) Screen(c *fiber.Ctx) error {
	supplier, err := h.suppliers.GetByTaxID(c.Context(), c.Params("taxId"))
	if err != nil {
		return err
	}

	refresh := c.QueryBool(refreshParam)
	extra := url.Values{}
	for key, values := range c.Queries() {
		if key == refreshParam || key == "entityName" {
			continue
		}
		extra.Add(key, values)
	}

	report, err := h.screening.Screen(c.Context(), supplier, extra, refresh)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Screening completed successfully.",
		"data":    report,
	})
}
