package models

import (
	"math"

	"figure_catalog/internal/pagewindow"
)

// PaginationParams represents the pagination parameters
type PaginationParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
}

// Offset возвращает смещение первой записи страницы.
// При переполнении возвращается math.MaxInt: такая страница заведомо пуста.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// PaginationResponse represents the pagination response
type PaginationResponse struct {
	TotalItems   int                 `json:"total_items"`
	TotalPages   int                 `json:"total_pages"`
	CurrentPage  int                 `json:"current_page"`
	ItemsPerPage int                 `json:"items_per_page"`
	PreviousPage *int                `json:"previous_page"`
	NextPage     *int                `json:"next_page"`
	Window       pagewindow.Sequence `json:"window"`
}

// FigureListResponse represents the response for figure list with pagination
type FigureListResponse struct {
	Items      []Figure           `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// TotalPages считает число страниц для totalItems записей по pageSize на страницу.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}
