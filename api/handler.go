// Package api - request handlers
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"creator-rates/core/engine"
	"creator-rates/core/rates"
	"creator-rates/internal/logging"
	"creator-rates/internal/observability"
)

// handleQuote handles POST /v1/quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Profile.TotalReach < 0 {
		s.writeError(w, "INVALID_PROFILE", "total_reach must be non-negative", http.StatusBadRequest)
		return
	}
	if req.Brief.Quantity < 0 {
		s.writeError(w, "INVALID_BRIEF", "quantity must be non-negative", http.StatusBadRequest)
		return
	}

	result := engine.CalculatePrice(&req.Profile, &req.Brief, req.FitScore)
	observability.QuotesTotal.WithLabelValues(string(result.PricingModel)).Inc()

	now := time.Now().UTC()
	resp := QuoteResponse{
		QuoteID:     uuid.NewString(),
		GeneratedAt: now,
		ValidUntil:  now.AddDate(0, 0, result.ValidityDays),
		Result:      result,
	}

	logging.Named("api").Debug("quote computed",
		zap.String("quote_id", resp.QuoteID),
		zap.String("model", string(result.PricingModel)))

	s.writeJSON(w, http.StatusOK, resp)
}

// handleTable handles GET /v1/tables/{name}
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	var table any
	switch chi.URLParam(r, "name") {
	case "tiers":
		table = rates.TierTable()
	case "niches":
		table = rates.NicheTable()
	case "platforms":
		table = rates.PlatformTable()
	case "regions":
		table = rates.RegionTable()
	case "seasons":
		table = rates.SeasonTable()
	case "whitelisting":
		table = rates.WhitelistingTable()
	case "affiliate-categories":
		table = rates.AffiliateCategoryTable()
	default:
		s.writeError(w, "UNKNOWN_TABLE", "no such table", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, table)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Named("api").Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
