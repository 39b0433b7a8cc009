package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/domain/models"
)

func envelopeJSON(t *testing.T, status int, data interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"status":  status,
		"message": http.StatusText(status),
		"data":    data,
	})
	require.NoError(t, err)
	return raw
}

func TestAPIGetDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/funds/categories", r.URL.Path)
		w.Write(envelopeJSON(t, 200, []string{"Multimercado", "Renda Fixa"}))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	got, err := api.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Multimercado", "Renda Fixa"}, got)
}

func TestAPIEnvelopeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelopeJSON(t, 404, []map[string]string{{"code": "ERR_NOT_FOUND"}}))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	_, err := api.Benchmark(context.Background(), "SELIC", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Contains(t, apiErr.Body, "ERR_NOT_FOUND")
}

func TestAPIGetRetriesOnServerError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write(envelopeJSON(t, 200, []string{"CDI"}))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	got, err := api.Benchmarks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CDI"}, got)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestAPIPostNeverRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	_, err := api.RiskMonitor(context.Background(), []string{"Fundo Alpha FIM"})
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestAPIFundsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write(envelopeJSON(t, 200, models.FundPage{Page: 2, PageSize: 25, Total: 0}))
	}))
	defer srv.Close()

	minSharpe := 1.0
	desc := false
	api := NewAPI(srv.URL)
	page, err := api.Funds(context.Background(), &models.FundListRequest{
		Category:  "Multimercado",
		Search:    "alpha",
		MinSharpe: &minSharpe,
		Page:      2,
		PageSize:  25,
		SortBy:    "sharpe_12m",
		SortDesc:  &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)

	assert.Equal(t, []string{"Multimercado"}, gotQuery["category"])
	assert.Equal(t, []string{"alpha"}, gotQuery["search"])
	assert.Equal(t, []string{"1"}, gotQuery["min_sharpe"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"25"}, gotQuery["page_size"])
	assert.Equal(t, []string{"sharpe_12m"}, gotQuery["sort_by"])
	assert.Equal(t, []string{"false"}, gotQuery["sort_desc"])
}

func TestAPIDeleteHandlesNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/portfolio/saved/default/Minha%20Carteira", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	require.NoError(t, api.DeletePortfolio(context.Background(), "default", "Minha Carteira"))
}
