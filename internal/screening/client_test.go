package screening

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/riskzero/supplier-registry/internal/config"
)

func newTestClient(t *testing.T, baseURL string, maxRetries int) *Client {
	t.Helper()
	return NewClient(config.ScreeningConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
		MaxRetries:     maxRetries,
	}, zaptest.NewLogger(t))
}

func TestClientSearchSendsEntityNameAndFilters(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hitsFound":1,"results":[{"source":"OFAC","data":{"Name":"Acme"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	report, err := client.Search(context.Background(), "Acme", url.Values{"fuzziness": {"high"}})
	require.NoError(t, err)

	assert.Equal(t, "Acme", gotQuery.Get("entityName"))
	assert.Equal(t, "high", gotQuery.Get("fuzziness"))
	assert.Equal(t, 1, report.HitsFound)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "OFAC", string(report.Results[0].Source))
}

func TestClientSearchRetriesTransientFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"hitsFound":0,"results":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3)
	report, err := client.Search(context.Background(), "Acme", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, report.HitsFound)
}

func TestClientSearchDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3)
	_, err := client.Search(context.Background(), "Acme", nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestClientSearchGivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 2)
	_, err := client.Search(context.Background(), "Acme", nil)
	require.Error(t, err)
	assert.Equal(t, 3, calls) // initial attempt plus two retries
}
