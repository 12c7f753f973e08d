package dto

import (
	"strings"

	"github.com/riskzero/supplier-registry/internal/domain"
)

// SupplierRequest is the client payload for creating or updating a
// supplier. updatedAt is deliberately absent: it is system-maintained.
type SupplierRequest struct {
	TaxID            string  `json:"taxId"`
	LegalName        string  `json:"legalName"`
	TradeName        string  `json:"tradeName"`
	PhoneNumber      string  `json:"phoneNumber"`
	Email            string  `json:"email"`
	Website          string  `json:"website"`
	PhysicalAddress  string  `json:"physicalAddress"`
	CountryID        int     `json:"countryId"`
	AnnualRevenueUSD float64 `json:"annualRevenueUsd"`
}

// Validate returns field-level problems, keyed by JSON field name.
func (r *SupplierRequest) Validate() map[string]any {
	details := map[string]any{}

	if strings.TrimSpace(r.TaxID) == "" {
		details["taxId"] = "tax id is required"
	} else if len(r.TaxID) > domain.MaxTaxIDLength {
		details["taxId"] = "tax id must be at most 11 characters"
	}
	if strings.TrimSpace(r.LegalName) == "" {
		details["legalName"] = "legal name is required"
	}
	if strings.TrimSpace(r.TradeName) == "" {
		details["tradeName"] = "trade name is required"
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		details["phoneNumber"] = "phone number is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		details["email"] = "email is required"
	}
	if strings.TrimSpace(r.Website) == "" {
		details["website"] = "website is required"
	}
	if strings.TrimSpace(r.PhysicalAddress) == "" {
		details["physicalAddress"] = "physical address is required"
	}
	if r.CountryID <= 0 {
		details["countryId"] = "country is required"
	}
	if r.AnnualRevenueUSD < 0 {
		details["annualRevenueUsd"] = "annual revenue cannot be negative"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// ToDomain converts the payload to the domain model.
func (r *SupplierRequest) ToDomain() *domain.Supplier {
	return &domain.Supplier{
		TaxID:            r.TaxID,
		LegalName:        r.LegalName,
		TradeName:        r.TradeName,
		PhoneNumber:      r.PhoneNumber,
		Email:            r.Email,
		Website:          r.Website,
		PhysicalAddress:  r.PhysicalAddress,
		CountryID:        r.CountryID,
		AnnualRevenueUSD: r.AnnualRevenueUSD,
	}
}
