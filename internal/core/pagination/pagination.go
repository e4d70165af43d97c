// Package pagination resolves page/limit query parameters and builds the
// metadata block returned alongside every list.
package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a resolved, always-valid page request.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes the page that was returned.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Page pairs the items of one page with its metadata.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Resolve reads page and limit from the query. limit falls back to pageSize
// when absent. Invalid values never fail: they resolve to the defaults, and a
// limit above maxLimit is clamped to it.
func Resolve(query url.Values, defaultLimit, maxLimit int) Params {
	limitRaw := query.Get("limit")
	if strings.TrimSpace(limitRaw) == "" {
		limitRaw = query.Get("pageSize")
	}

	limit := positive(limitRaw, defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}

	return Params{
		Page:  positive(query.Get("page"), 1),
		Limit: limit,
	}
}

// BuildMeta computes the metadata for a page. totalPages is at least 1 so an
// empty result still reports a single (empty) page.
func BuildMeta(total int64, page, limit int) Meta {
	totalPages := 1
	if limit > 0 && total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: max(1, totalPages),
	}
}

// NewPage wraps items with metadata. A nil slice is rendered as [].
func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Meta: BuildMeta(total, p.Page, p.Limit)}
}

// positive parses raw as a number and truncates it; empty, non-numeric,
// non-finite and sub-1 values yield fallback.
func positive(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 1 {
		return fallback
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(n))
}
