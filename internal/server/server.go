package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"figure_catalog/internal/config"
	"figure_catalog/internal/logger"
	"figure_catalog/internal/metrics"
	"figure_catalog/internal/middleware"
	"figure_catalog/internal/models"
	"figure_catalog/internal/pagewindow"
)

// Store - хранилище фигурок, которым пользуется сервер.
type Store interface {
	Ping(ctx context.Context) error
	CountFigures(ctx context.Context, search string) (int, error)
	ListFigures(ctx context.Context, params models.PaginationParams) ([]models.Figure, error)
}

// Server хранит зависимости HTTP-обработчиков: хранилище, настройки пагинации и метрики.
type Server struct {
	store           Store
	metrics         *metrics.Metrics
	defaultPageSize int
	maxPageSize     int
}

// NewServer создаёт новый экземпляр Server.
func NewServer(store Store, cfg *config.Config, m *metrics.Metrics) *Server {
	return &Server{
		store:           store,
		metrics:         m,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
}

// Routes собирает маршруты сервиса вместе с middleware.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/figures", s.GetFigures)
	mux.HandleFunc("GET /health", s.HealthCheck)
	mux.Handle("GET /metrics", s.metrics.Handler())

	handler := middleware.LoggingMiddleware(s.metrics, mux)
	return middleware.RequestIDMiddleware(handler)
}

// HealthCheck отвечает 200 OK, если база доступна, иначе 503.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		http.Error(w, "DB unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("OK"))
}

// GetFigures возвращает страницу фигурок вместе с блоком пагинации.
// Параметры: page, page_size, s (поиск по имени).
func (s *Server) GetFigures(w http.ResponseWriter, r *http.Request) {
	params := s.parseParams(r)
	log := requestLog(r, params)

	totalItems, err := s.store.CountFigures(r.Context(), params.Search)
	if err != nil {
		log.Errorf("Failed to count figures: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	figures, err := s.store.ListFigures(r.Context(), params)
	if err != nil {
		log.Errorf("Failed to list figures: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	pagination := s.buildPagination(params, totalItems)
	log.WithField("window", len(pagination.Window)).Debug("Page window computed")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.FigureListResponse{
		Items:      figures,
		Pagination: pagination,
	}); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func requestLog(r *http.Request, params models.PaginationParams) *logger.Entry {
	return logger.Log.WithFields(logger.Fields{
		"request_id": middleware.RequestID(r.Context()),
		"page":       params.Page,
		"page_size":  params.PageSize,
		"search":     params.Search,
	})
}

func (s *Server) parseParams(r *http.Request) models.PaginationParams {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(query.Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	return models.PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Search:   query.Get("s"),
	}
}

// buildPagination прогоняет кнопки "назад"/"вперёд" через Navigator:
// колбэк запоминает целевую страницу, а отключённая кнопка его не вызывает.
func (s *Server) buildPagination(params models.PaginationParams, totalItems int) models.PaginationResponse {
	totalPages := models.TotalPages(totalItems, params.PageSize)

	resp := models.PaginationResponse{
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		CurrentPage:  params.Page,
		ItemsPerPage: params.PageSize,
	}

	target := func(dst **int) func(int) {
		return func(page int) { *dst = &page }
	}
	pagewindow.NewNavigator(params.Page, totalPages, target(&resp.PreviousPage)).Previous()
	nav := pagewindow.NewNavigator(params.Page, totalPages, target(&resp.NextPage))
	nav.Next()

	resp.Window = nav.Tokens()
	s.metrics.WindowTokens.Observe(float64(len(resp.Window)))
	return resp
}
