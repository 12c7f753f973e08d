package service

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/riskzero/supplier-registry/internal/domain"
	"github.com/riskzero/supplier-registry/internal/screening"
	apperrors "github.com/riskzero/supplier-registry/pkg/util"
)

// ScreeningService runs watch-list lookups for suppliers, caching raw
// reports per supplier identity. A cached report is served until the entry
// is explicitly cleared; there is no TTL.
type ScreeningService struct {
	provider screening.Provider
	cache    screening.Cache
	logger   *zap.Logger
}

// NewScreeningService builds the service.
func NewScreeningService(provider screening.Provider, cache screening.Cache, logger *zap.Logger) *ScreeningService {
	return &ScreeningService{provider: provider, cache: cache, logger: logger}
}

// Screen returns the grouped screening report for a supplier. When refresh
// is set the cached entry is cleared first, forcing a provider call. Extra
// query parameters are forwarded to the provider untouched.
func (s *ScreeningService) Screen(ctx context.Context, supplier *domain.Supplier, extra url.Values, refresh bool) (*domain.GroupedScreeningReport, error) {
	name := supplier.ScreeningName()
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("supplier has no name to screen", nil)
	}

	key := screening.CacheKey(supplier)
	if refresh {
		if err := s.cache.Clear(ctx, key); err != nil {
			s.logger.Warn("failed to clear screening cache", zap.String("key", key), zap.Error(err))
		}
	}

	report, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("screening cache lookup failed", zap.String("key", key), zap.Error(err))
		ok = false
	}
	if !ok {
		report, err = s.provider.Search(ctx, name, extra)
		if err != nil {
			return nil, apperrors.NewUpstreamError(err)
		}
		if err := s.cache.Save(ctx, key, report); err != nil {
			s.logger.Warn("failed to cache screening report", zap.String("key", key), zap.Error(err))
		}
	}

	grouped, dropped := screening.Group(report)
	if dropped > 0 {
		s.logger.Warn("screening results dropped",
			zap.String("taxId", supplier.TaxID),
			zap.Int("dropped", dropped),
		)
	}
	return grouped, nil
}

// ClearCache removes the cached report for a supplier.
func (s *ScreeningService) ClearCache(ctx context.Context, supplier *domain.Supplier) error {
	return s.cache.Clear(ctx, screening.CacheKey(supplier))
}
