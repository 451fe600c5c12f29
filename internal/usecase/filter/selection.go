// Package filter — состояние фильтра по категориям и производный запрос списка товаров.
package filter

import (
	"net/url"
	"strings"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/pkg/httpx"
)

// Selection — множество выбранных категорий; порядок — по первому добавлению.
// Не потокобезопасно: живёт в рамках одного запроса/просмотра страницы.
type Selection struct {
	order []domain.ID
	set   map[domain.ID]struct{}
}

func NewSelection(ids ...domain.ID) *Selection {
	s := &Selection{set: make(map[domain.ID]struct{}, len(ids))}
	for _, id := range ids {
		if !s.Has(id) {
			s.Toggle(id)
		}
	}
	return s
}

// Toggle — добавляет отсутствующий id, убирает присутствующий.
func (s *Selection) Toggle(id domain.ID) {
	if id == "" {
		return
	}
	if s.set == nil {
		s.set = make(map[domain.ID]struct{})
	}
	if _, ok := s.set[id]; ok {
		delete(s.set, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.set[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) Clear() {
	s.order = nil
	s.set = make(map[domain.ID]struct{})
}

func (s *Selection) Has(id domain.ID) bool {
	_, ok := s.set[id]
	return ok
}

func (s *Selection) Len() int { return len(s.order) }

func (s *Selection) IDs() []domain.ID {
	return append([]domain.ID(nil), s.order...)
}

// Apply — фиксирует выбор в запрос списка товаров.
func (s *Selection) Apply(search string, limit int) domain.ProductListQuery {
	return domain.ProductListQuery{
		Search:      strings.TrimSpace(search),
		CategoryIDs: s.IDs(),
		Limit:       limit,
	}
}

// ToggleURL — ссылка no-JS фильтра: текущий query с переключённой категорией.
func (s *Selection) ToggleURL(path string, search string, id domain.ID) string {
	next := NewSelection(s.IDs()...)
	next.Toggle(id)
	return buildURL(path, search, next.IDs())
}

// ClearURL — ссылка «Clear All».
func (s *Selection) ClearURL(path string, search string) string {
	return buildURL(path, search, nil)
}

func buildURL(path, search string, ids []domain.ID) string {
	q := url.Values{}
	if search = strings.TrimSpace(search); search != "" {
		q.Set("search", search)
	}
	if len(ids) > 0 {
		q.Set("categories", joinIDs(ids))
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + strings.ReplaceAll(q.Encode(), "%2C", ",")
}

func joinIDs(ids []domain.ID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ",")
}

// Parse — выбор и запрос из query вида categories=A,B&search=x&limit=12&year=2024.
// Повторные categories=..&categories=.. допускаются.
func Parse(q url.Values, defLimit, maxLimit int) (*Selection, domain.ProductListQuery) {
	sel := NewSelection()
	for _, raw := range q["categories"] {
		for _, id := range httpx.SplitCSV(raw) {
			if !sel.Has(domain.ID(id)) {
				sel.Toggle(domain.ID(id))
			}
		}
	}

	limit := defLimit
	if n, ok := httpx.ParseIntValue(q.Get("limit")); ok && n > 0 {
		limit = httpx.ClampInt(n, 1, maxLimit)
	}

	query := sel.Apply(q.Get("search"), limit)
	if y, ok := httpx.ParseIntValue(q.Get("year")); ok && y > 0 {
		query.Year = y
	}
	return sel, query
}
