package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/riskzero/supplier-registry/internal/api/dto"
	"github.com/riskzero/supplier-registry/internal/domain"
	"github.com/riskzero/supplier-registry/internal/service"
	apperrors "github.com/riskzero/supplier-registry/pkg/util"
)

// SupplierHandler exposes supplier CRUD endpoints.
type SupplierHandler struct {
	suppliers *service.SupplierService
}

// NewSupplierHandler constructs handler.
func NewSupplierHandler(suppliers *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// List handles GET /api/supplier.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.suppliers.List(c.Context())
	if err != nil {
		return err
	}
	if suppliers == nil {
		suppliers = []domain.Supplier{}
	}

	return c.JSON(fiber.Map{
		"message": "Suppliers retrieved successfully.",
		"data":    suppliers,
	})
}

// Get handles GET /api/supplier/:taxId.
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	supplier, err := h.suppliers.GetByTaxID(c.Context(), c.Params("taxId"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Supplier retrieved successfully.",
		"data":    supplier,
	})
}

// Create handles POST /api/supplier.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := req.Validate(); details != nil {
		return apperrors.NewValidationError("invalid supplier payload", details)
	}

	created, err := h.suppliers.Create(c.Context(), req.ToDomain())
	if err != nil {
		return err
	}

	c.Location("/api/supplier/" + created.TaxID)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Supplier created successfully.",
		"data":    created,
	})
}

// Update handles PUT /api/supplier/:taxId. The path tax id must match the
// payload's tax id; mismatches are rejected before any write occurs.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	taxID := c.Params("taxId")

	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if taxID != req.TaxID {
		return apperrors.NewValidationError("path tax id does not match payload tax id", map[string]any{
			"taxId": "must equal the path tax id",
		})
	}
	if details := req.Validate(); details != nil {
		return apperrors.NewValidationError("invalid supplier payload", details)
	}

	if err := h.suppliers.Update(c.Context(), taxID, req.ToDomain()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete handles DELETE /api/supplier/:taxId.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.suppliers.Delete(c.Context(), c.Params("taxId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
