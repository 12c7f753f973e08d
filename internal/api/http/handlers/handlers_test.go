package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	httptransport "github.com/riskzero/supplier-registry/internal/api/http"
	"github.com/riskzero/supplier-registry/internal/api/http/handlers"
	"github.com/riskzero/supplier-registry/internal/auth"
	"github.com/riskzero/supplier-registry/internal/config"
	"github.com/riskzero/supplier-registry/internal/domain"
	"github.com/riskzero/supplier-registry/internal/observability"
	"github.com/riskzero/supplier-registry/internal/repository"
	"github.com/riskzero/supplier-registry/internal/screening"
	"github.com/riskzero/supplier-registry/internal/service"
)

// In-memory doubles mirroring the Postgres repository contracts.

type memUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = m.nextID
	m.nextID++
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

type memSupplierRepo struct {
	suppliers map[string]*domain.Supplier
	countries map[int]domain.Country
}

func (m *memSupplierRepo) attachCountry(s *domain.Supplier) {
	if country, ok := m.countries[s.CountryID]; ok {
		s.Country = &country
	}
}

func (m *memSupplierRepo) List(_ context.Context) ([]domain.Supplier, error) {
	var result []domain.Supplier
	for _, supplier := range m.suppliers {
		copied := *supplier
		m.attachCountry(&copied)
		result = append(result, copied)
	}
	return result, nil
}

func (m *memSupplierRepo) GetByTaxID(_ context.Context, taxID string) (*domain.Supplier, error) {
	supplier, ok := m.suppliers[taxID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *supplier
	m.attachCountry(&copied)
	return &copied, nil
}

func (m *memSupplierRepo) Create(_ context.Context, supplier *domain.Supplier) error {
	if _, exists := m.suppliers[supplier.TaxID]; exists {
		return repository.ErrDuplicateKey
	}
	if _, ok := m.countries[supplier.CountryID]; !ok {
		return repository.ErrInvalidReference
	}
	supplier.UpdatedAt = time.Now().UTC()
	stored := *supplier
	m.suppliers[supplier.TaxID] = &stored
	return nil
}

func (m *memSupplierRepo) Update(_ context.Context, taxID string, supplier *domain.Supplier) error {
	existing, ok := m.suppliers[taxID]
	if !ok {
		return pgx.ErrNoRows
	}
	if _, countryOK := m.countries[supplier.CountryID]; !countryOK {
		return repository.ErrInvalidReference
	}
	existing.LegalName = supplier.LegalName
	existing.TradeName = supplier.TradeName
	existing.PhoneNumber = supplier.PhoneNumber
	existing.Email = supplier.Email
	existing.Website = supplier.Website
	existing.PhysicalAddress = supplier.PhysicalAddress
	existing.CountryID = supplier.CountryID
	existing.AnnualRevenueUSD = supplier.AnnualRevenueUSD
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memSupplierRepo) Delete(_ context.Context, taxID string) error {
	if _, ok := m.suppliers[taxID]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.suppliers, taxID)
	return nil
}

type memCountryRepo struct {
	countries []domain.Country
}

func (m *memCountryRepo) List(_ context.Context) ([]domain.Country, error) {
	return m.countries, nil
}

type stubProvider struct {
	calls  int
	report *domain.ScreeningReport
}

func (s *stubProvider) Search(_ context.Context, _ string, _ url.Values) (*domain.ScreeningReport, error) {
	s.calls++
	return s.report, nil
}

type testEnv struct {
	app      *fiber.App
	provider *stubProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	countries := []domain.Country{
		{CountryID: 1, Name: "Peru", IsoCode: "PER"},
		{CountryID: 2, Name: "Chile", IsoCode: "CHL"},
	}
	countryIndex := map[int]domain.Country{}
	for _, c := range countries {
		countryIndex[c.CountryID] = c
	}

	userRepo := &memUserRepo{byEmail: map[string]*domain.User{}, nextID: 1}
	supplierRepo := &memSupplierRepo{suppliers: map[string]*domain.Supplier{}, countries: countryIndex}
	countryRepo := &memCountryRepo{countries: countries}

	authCfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		Issuer:                "supplier-registry",
		Audience:              "supplier-registry-clients",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4,
	}
	authService := service.NewAuthService(authCfg, userRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	countryService := service.NewCountryService(countryRepo)

	provider := &stubProvider{report: &domain.ScreeningReport{
		HitsFound: 1,
		Results: []domain.ScreeningResult{
			{Source: domain.SourceOFAC, Data: []byte(`{"Name":"Acme","Score":"97"}`)},
		},
	}}
	logger := zaptest.NewLogger(t)
	screeningService := service.NewScreeningService(provider, screening.NewMemoryCache(), logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second, []string{"http://localhost:5173"})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("supplier-registry", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Suppliers:      handlers.NewSupplierHandler(supplierService),
		Countries:      handlers.NewCountryHandler(countryService),
		Screening:      handlers.NewScreeningHandler(supplierService, screeningService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager(), userRepo),
	})

	return &testEnv{app: app, provider: provider}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func supplierPayload() map[string]any {
	return map[string]any{
		"taxId":            "12345678901",
		"legalName":        "Acme",
		"tradeName":        "Acme Trading",
		"phoneNumber":      "+51 999 888 777",
		"email":            "contact@acme.com",
		"website":          "https://acme.com",
		"physicalAddress":  "123 Main St",
		"countryId":        1,
		"annualRevenueUsd": 1000,
	}
}
