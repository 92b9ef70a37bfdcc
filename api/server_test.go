package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-rates/core/types"
)

func postQuote(t *testing.T, srv *Server, req QuoteRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewReader(body))
	srv.ServeHTTP(w, r)
	return w
}

func TestQuoteEndpoint(t *testing.T) {
	srv := NewServer("test")

	w := postQuote(t, srv, QuoteRequest{
		Profile: types.CreatorProfile{
			TotalReach:     25_000,
			EngagementRate: 4.5,
			Niches:         []string{"finance"},
		},
		Brief: types.ParsedBrief{
			Platform:     "instagram",
			Format:       "reel",
			Quantity:     1,
			CampaignDate: "2026-03-10",
			UsageRights:  types.UsageRights{DurationDays: 30},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	_, err := uuid.Parse(resp.QuoteID)
	assert.NoError(t, err, "quote_id must be a uuid")
	assert.True(t, resp.ValidUntil.After(resp.GeneratedAt))

	require.NotNil(t, resp.Result)
	assert.Equal(t, types.ModelFlatFee, resp.Result.PricingModel)
	assert.True(t, resp.Result.PricePerDeliverable.Equal(decimal.NewFromInt(1310)),
		"got %s", resp.Result.PricePerDeliverable)
	assert.Contains(t, resp.Result.Formula, "$400")
}

func TestQuoteEndpointRejectsBadInput(t *testing.T) {
	srv := NewServer("test")

	w := postQuote(t, srv, QuoteRequest{
		Profile: types.CreatorProfile{TotalReach: -1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewReader([]byte("{not json")))
	srv.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTablesEndpoint(t *testing.T) {
	srv := NewServer("test")

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/tables/tiers", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var tiers []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiers))
	assert.Len(t, tiers, 7)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/tables/horoscopes", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndVersion(t *testing.T) {
	srv := NewServer("1.2.3")

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1.2.3")
}
