package service

import (
	"context"

	"github.com/riskzero/supplier-registry/internal/domain"
	"github.com/riskzero/supplier-registry/internal/repository"
)

// CountryService serves the read-only country reference data.
type CountryService struct {
	countries repository.CountryRepository
}

// NewCountryService builds the service.
func NewCountryService(countries repository.CountryRepository) *CountryService {
	return &CountryService{countries: countries}
}

// List returns all countries ordered by name.
func (s *CountryService) List(ctx context.Context) ([]domain.Country, error) {
	return s.countries.List(ctx)
}
