package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kaay-diunde/backend/internal/catalog"
	"github.com/kaay-diunde/backend/internal/engine"
	"github.com/kaay-diunde/backend/internal/search"
)

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router *http.ServeMux
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger,
		Router: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/search", s.handleSearch)
	s.Router.HandleFunc("/api/v1/suggestions", s.handleSuggestions)
	s.Router.HandleFunc("/api/v1/similar", s.handleSimilar)
	s.Router.HandleFunc("/api/v1/refresh", s.handleRefresh)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(addr string) error {
	s.Logger.Infof("Starting API Server on %s", addr)
	return http.ListenAndServe(addr, s.Router)
}

// Responses

type ErrorResponse struct {
	Error string `json:"error"`
}

type SearchResponse struct {
	Query           string            `json:"query"`
	CorrectedQuery  string            `json:"corrected_query,omitempty"`
	MatchedCategory catalog.Category  `json:"matched_category,omitempty"`
	Count           int               `json:"count"`
	Results         []catalog.Product `json:"results"`
	Similar         []catalog.Product `json:"similar,omitempty"`
}

type SuggestionsResponse struct {
	Query       string              `json:"query"`
	Suggestions []search.Suggestion `json:"suggestions"`
}

type SimilarResponse struct {
	Query    string            `json:"query"`
	Products []catalog.Product `json:"products"`
}

type StatusResponse struct {
	Running        bool   `json:"running"`
	CatalogSize    int    `json:"catalog_size"`
	SearchesServed int64  `json:"searches_served"`
	LastRefresh    string `json:"last_refresh"`
}

// Handlers

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'q' is required"})
		return
	}

	opts, err := parseOptions(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	outcome := s.Engine.Search(query, opts)
	results := outcome.Products
	if results == nil {
		results = []catalog.Product{}
	}

	jsonResponse(w, http.StatusOK, SearchResponse{
		Query:           query,
		CorrectedQuery:  outcome.CorrectedQuery,
		MatchedCategory: outcome.MatchedCategory,
		Count:           len(results),
		Results:         results,
		Similar:         outcome.Similar,
	})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'q' is required"})
		return
	}

	suggestions := s.Engine.Suggest(query)
	if suggestions == nil {
		suggestions = []search.Suggestion{}
	}

	jsonResponse(w, http.StatusOK, SuggestionsResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'q' is required"})
		return
	}

	products := s.Engine.Similar(query)
	if products == nil {
		products = []catalog.Product{}
	}

	jsonResponse(w, http.StatusOK, SimilarResponse{
		Query:    query,
		Products: products,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.Engine.Refresh(r.Context()); err != nil {
		jsonResponse(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	stats := s.Engine.Stats()
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":       "refreshed",
		"catalog_size": stats.CatalogSize,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Engine.Stats()

	resp := StatusResponse{
		Running:        s.Engine.IsRunning(),
		CatalogSize:    stats.CatalogSize,
		SearchesServed: stats.SearchesServed,
	}
	if !stats.LastRefresh.IsZero() {
		resp.LastRefresh = stats.LastRefresh.Format(time.RFC3339)
	}

	jsonResponse(w, http.StatusOK, resp)
}

func parseOptions(r *http.Request) (search.Options, error) {
	var opts search.Options
	q := r.URL.Query()

	if raw := q.Get("category"); raw != "" {
		cat := catalog.Category(raw)
		if cat != catalog.CategoryAll && !cat.Valid() {
			return opts, &badParamError{"category", raw}
		}
		opts.Category = cat
	}
	if raw := q.Get("in_stock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, &badParamError{"in_stock", raw}
		}
		opts.InStockOnly = v
	}
	if raw := q.Get("price_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return opts, &badParamError{"price_min", raw}
		}
		opts.PriceMin = v
	}
	if raw := q.Get("price_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return opts, &badParamError{"price_max", raw}
		}
		opts.PriceMax = v
	}

	return opts, nil
}

type badParamError struct {
	param string
	value string
}

func (e *badParamError) Error() string {
	return "Invalid value for '" + e.param + "': " + e.value
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
