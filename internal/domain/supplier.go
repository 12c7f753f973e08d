package domain

import "time"

// MaxTaxIDLength bounds the supplier primary key.
const MaxTaxIDLength = 11

// Supplier is the aggregate root of the registry, keyed by its tax
// identifier. The tax id is immutable after creation and UpdatedAt is
// maintained by the repository, never taken from client input.
type Supplier struct {
	TaxID            string    `json:"taxId"`
	LegalName        string    `json:"legalName"`
	TradeName        string    `json:"tradeName"`
	PhoneNumber      string    `json:"phoneNumber"`
	Email            string    `json:"email"`
	Website          string    `json:"website"`
	PhysicalAddress  string    `json:"physicalAddress"`
	CountryID        int       `json:"countryId"`
	Country          *Country  `json:"country,omitempty"`
	AnnualRevenueUSD float64   `json:"annualRevenueUsd"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ScreeningName returns the name used to query the watch-list provider:
// the legal name when present, otherwise the trade name.
func (s *Supplier) ScreeningName() string {
	if s.LegalName != "" {
		return s.LegalName
	}
	return s.TradeName
}
