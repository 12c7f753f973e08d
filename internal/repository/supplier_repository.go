package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riskzero/supplier-registry/internal/domain"
)

// SupplierRepository encapsulates supplier persistence. The tax id is the
// primary key and immutable; updated_at is written by the repository on
// every create and update, never taken from the caller's struct.
type SupplierRepository interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByTaxID(ctx context.Context, taxID string) (*domain.Supplier, error)
	Create(ctx context.Context, supplier *domain.Supplier) error
	Update(ctx context.Context, taxID string, supplier *domain.Supplier) error
	Delete(ctx context.Context, taxID string) error
}

type supplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository instantiates repository.
func NewSupplierRepository(pool *pgxpool.Pool) SupplierRepository {
	return &supplierRepository{pool: pool}
}

const supplierColumns = `
        s.tax_id, s.legal_name, s.trade_name, s.phone_number, s.email,
        s.website, s.physical_address, s.country_id, s.annual_revenue_usd,
        s.updated_at, c.country_id, c.name, c.iso_code`

func (r *supplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	const query = `
        SELECT` + supplierColumns + `
        FROM suppliers s
        JOIN countries c ON c.country_id = s.country_id
        ORDER BY s.legal_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

func (r *supplierRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Supplier, error) {
	const query = `
        SELECT` + supplierColumns + `
        FROM suppliers s
        JOIN countries c ON c.country_id = s.country_id
        WHERE s.tax_id=$1`

	supplier, err := scanSupplier(r.pool.QueryRow(ctx, query, taxID))
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	const query = `
        INSERT INTO suppliers (tax_id, legal_name, trade_name, phone_number, email,
                               website, physical_address, country_id, annual_revenue_usd, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now() at time zone 'utc')
        RETURNING updated_at`

	if err := r.pool.QueryRow(ctx, query,
		supplier.TaxID,
		supplier.LegalName,
		supplier.TradeName,
		supplier.PhoneNumber,
		supplier.Email,
		supplier.Website,
		supplier.PhysicalAddress,
		supplier.CountryID,
		supplier.AnnualRevenueUSD,
	).Scan(&supplier.UpdatedAt); err != nil {
		return translateConstraint(err)
	}
	return nil
}

// Update copies the mutable fields over the existing row identified by the
// path tax id. The payload's own tax id is ignored here; the handler has
// already checked it matches the path.
func (r *supplierRepository) Update(ctx context.Context, taxID string, supplier *domain.Supplier) error {
	const query = `
        UPDATE suppliers SET legal_name=$1, trade_name=$2, phone_number=$3, email=$4,
            website=$5, physical_address=$6, country_id=$7, annual_revenue_usd=$8,
            updated_at = now() at time zone 'utc'
        WHERE tax_id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		supplier.LegalName,
		supplier.TradeName,
		supplier.PhoneNumber,
		supplier.Email,
		supplier.Website,
		supplier.PhysicalAddress,
		supplier.CountryID,
		supplier.AnnualRevenueUSD,
		taxID,
	)
	if err != nil {
		return translateConstraint(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supplierRepository) Delete(ctx context.Context, taxID string) error {
	const query = `DELETE FROM suppliers WHERE tax_id=$1`

	cmd, err := r.pool.Exec(ctx, query, taxID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var supplier domain.Supplier
	var country domain.Country
	if err := row.Scan(
		&supplier.TaxID,
		&supplier.LegalName,
		&supplier.TradeName,
		&supplier.PhoneNumber,
		&supplier.Email,
		&supplier.Website,
		&supplier.PhysicalAddress,
		&supplier.CountryID,
		&supplier.AnnualRevenueUSD,
		&supplier.UpdatedAt,
		&country.CountryID,
		&country.Name,
		&country.IsoCode,
	); err != nil {
		return nil, err
	}
	supplier.Country = &country
	return &supplier, nil
}

func scanSuppliers(rows pgx.Rows) ([]domain.Supplier, error) {
	var result []domain.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *supplier)
	}
	return result, rows.Err()
}
