package domain

// Country is reference data owned by the seed dataset; the API only reads it.
type Country struct {
	CountryID int    `json:"countryId"`
	Name      string `json:"name"`
	IsoCode   string `json:"isoCode"`
}
