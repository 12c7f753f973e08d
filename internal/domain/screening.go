package domain

import "encoding/json"

// ScreeningSource identifies one of the fixed watch-list providers.
type ScreeningSource string

const (
	SourceWorldBank     ScreeningSource = "The World Bank"
	SourceOffshoreLeaks ScreeningSource = "Offshore Leaks Database"
	SourceOFAC          ScreeningSource = "OFAC"
)

// ScreeningResult is one hit as returned by the provider. Data keeps the
// source-specific record verbatim so cached reports round-trip losslessly.
type ScreeningResult struct {
	Source ScreeningSource `json:"source"`
	Data   json.RawMessage `json:"data"`
}

// ScreeningReport is the provider response. Reports are transient: cached
// in memory per supplier, never persisted.
type ScreeningReport struct {
	HitsFound int               `json:"hitsFound"`
	Results   []ScreeningResult `json:"results"`
}

// WorldBankRecord is the record shape of World Bank debarment hits.
// The JSON keys mirror the provider exactly.
type WorldBankRecord struct {
	FirmName string `json:"Firm Name"`
	Address  string `json:"Address"`
	City     string `json:"City"`
	Country  string `json:"Country"`
	FromDate string `json:"From Date"`
	ToDate   string `json:"To Date"`
	Grounds  string `json:"Grounds"`
}

// OffshoreLeaksRecord is the record shape of Offshore Leaks Database hits.
type OffshoreLeaksRecord struct {
	Entity       string `json:"Entity"`
	Jurisdiction string `json:"Jurisdiction"`
	LinkedTo     string `json:"Linked to"`
	DataFrom     string `json:"Data From"`
}

// OfacRecord is the record shape of OFAC sanctions hits.
type OfacRecord struct {
	Name     string `json:"Name"`
	Address  string `json:"Address"`
	Type     string `json:"Type"`
	Programs string `json:"Program(s)"`
	List     string `json:"List"`
	Score    string `json:"Score"`
}

// GroupedScreeningReport partitions a report into the three known source
// buckets for rendering. Field values are already normalized for display.
type GroupedScreeningReport struct {
	HitsFound     int                   `json:"hitsFound"`
	WorldBank     []WorldBankRecord     `json:"worldBank"`
	OffshoreLeaks []OffshoreLeaksRecord `json:"offshoreLeaks"`
	Ofac          []OfacRecord          `json:"ofac"`
}
