package screening

import (
	"encoding/json"
	"strings"

	"github.com/riskzero/supplier-registry/internal/domain"
)

// NotAvailable is the sentinel substituted for empty field values when a
// report is grouped for display. It is applied at grouping time only; the
// cached raw report keeps the provider payload untouched.
const NotAvailable = "Not available"

// Group partitions a raw report into the three known source buckets.
// Every result with a known source lands in exactly one bucket; results
// with an unrecognized source are skipped and counted in dropped so the
// caller can log them.
func Group(report *domain.ScreeningReport) (*domain.GroupedScreeningReport, int) {
	grouped := &domain.GroupedScreeningReport{
		HitsFound:     report.HitsFound,
		WorldBank:     []domain.WorldBankRecord{},
		OffshoreLeaks: []domain.OffshoreLeaksRecord{},
		Ofac:          []domain.OfacRecord{},
	}

	dropped := 0
	for _, result := range report.Results {
		switch result.Source {
		case domain.SourceWorldBank:
			var record domain.WorldBankRecord
			if err := json.Unmarshal(result.Data, &record); err != nil {
				dropped++
				continue
			}
			grouped.WorldBank = append(grouped.WorldBank, normalizeWorldBank(record))
		case domain.SourceOffshoreLeaks:
			var record domain.OffshoreLeaksRecord
			if err := json.Unmarshal(result.Data, &record); err != nil {
				dropped++
				continue
			}
			grouped.OffshoreLeaks = append(grouped.OffshoreLeaks, normalizeOffshoreLeaks(record))
		case domain.SourceOFAC:
			var record domain.OfacRecord
			if err := json.Unmarshal(result.Data, &record); err != nil {
				dropped++
				continue
			}
			grouped.Ofac = append(grouped.Ofac, normalizeOfac(record))
		default:
			dropped++
		}
	}
	return grouped, dropped
}

// normalizeField maps empty, whitespace-only and HTML non-breaking-space
// values to the NotAvailable sentinel.
func normalizeField(value string) string {
	cleaned := strings.ReplaceAll(value, "&nbsp;", " ")
	cleaned = strings.ReplaceAll(cleaned, "\u00a0", " ")
	if strings.TrimSpace(cleaned) == "" {
		return NotAvailable
	}
	return value
}

func normalizeWorldBank(r domain.WorldBankRecord) domain.WorldBankRecord {
	r.FirmName = normalizeField(r.FirmName)
	r.Address = normalizeField(r.Address)
	r.City = normalizeField(r.City)
	r.Country = normalizeField(r.Country)
	r.FromDate = normalizeField(r.FromDate)
	r.ToDate = normalizeField(r.ToDate)
	r.Grounds = normalizeField(r.Grounds)
	return r
}

func normalizeOffshoreLeaks(r domain.OffshoreLeaksRecord) domain.OffshoreLeaksRecord {
	r.Entity = normalizeField(r.Entity)
	r.Jurisdiction = normalizeField(r.Jurisdiction)
	r.LinkedTo = normalizeField(r.LinkedTo)
	r.DataFrom = normalizeField(r.DataFrom)
	return r
}

func normalizeOfac(r domain.OfacRecord) domain.OfacRecord {
	r.Name = normalizeField(r.Name)
	r.Address = normalizeField(r.Address)
	r.Type = normalizeField(r.Type)
	r.Programs = normalizeField(r.Programs)
	r.List = normalizeField(r.List)
	r.Score = normalizeField(r.Score)
	return r
}
