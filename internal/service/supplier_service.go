package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/riskzero/supplier-registry/internal/domain"
	"github.com/riskzero/supplier-registry/internal/repository"
	apperrors "github.com/riskzero/supplier-registry/pkg/util"
)

// SupplierService coordinates supplier CRUD workflows on top of the
// repository, translating persistence failures into API-facing errors.
type SupplierService struct {
	suppliers repository.SupplierRepository
}

// NewSupplierService builds the service.
func NewSupplierService(suppliers repository.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// List returns all suppliers with their country eagerly joined.
func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

// GetByTaxID returns a single supplier.
func (s *SupplierService) GetByTaxID(ctx context.Context, taxID string) (*domain.Supplier, error) {
	supplier, err := s.suppliers.GetByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("supplier", map[string]any{"taxId": taxID})
		}
		return nil, err
	}
	return supplier, nil
}

// Create inserts a supplier. A duplicate tax id is a conflict; a country
// reference that does not exist is a validation failure.
func (s *SupplierService) Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, translateWriteError(err, supplier.TaxID)
	}
	return supplier, nil
}

// Update copies the mutable fields over the supplier identified by taxID.
// The tax id itself and updated_at are repository-controlled.
func (s *SupplierService) Update(ctx context.Context, taxID string, supplier *domain.Supplier) error {
	if err := s.suppliers.Update(ctx, taxID, supplier); err != nil {
		return translateWriteError(err, taxID)
	}
	return nil
}

// Delete removes a supplier.
func (s *SupplierService) Delete(ctx context.Context, taxID string) error {
	if err := s.suppliers.Delete(ctx, taxID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("supplier", map[string]any{"taxId": taxID})
		}
		return err
	}
	return nil
}

func translateWriteError(err error, taxID string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.NewNotFound("supplier", map[string]any{"taxId": taxID})
	case errors.Is(err, repository.ErrDuplicateKey):
		return apperrors.NewConflict("supplier already exists", map[string]any{"taxId": taxID})
	case errors.Is(err, repository.ErrInvalidReference):
		return apperrors.NewValidationError("referenced country does not exist", map[string]any{"countryId": "unknown country"})
	default:
		return err
	}
}
