package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riskzero/supplier-registry/internal/domain"
)

// CountryRepository exposes the read-only country reference data.
type CountryRepository interface {
	List(ctx context.Context) ([]domain.Country, error)
}

type countryRepository struct {
	pool *pgxpool.Pool
}

// NewCountryRepository returns a Postgres-backed implementation.
func NewCountryRepository(pool *pgxpool.Pool) CountryRepository {
	return &countryRepository{pool: pool}
}

func (r *countryRepository) List(ctx context.Context) ([]domain.Country, error) {
	const query = `
        SELECT country_id, name, iso_code
        FROM countries ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Country
	for rows.Next() {
		var country domain.Country
		if err := rows.Scan(&country.CountryID, &country.Name, &country.IsoCode); err != nil {
			return nil, err
		}
		result = append(result, country)
	}
	return result, rows.Err()
}
