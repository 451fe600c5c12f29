package usecase

import (
	"sort"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/widget"
)

// neighbours — предыдущий/следующий элемент по позиции в полной выборке
// (линейный поиск текущего; nil на краях и если элемент не найден).
func neighbours[T any](all []T, isCurrent func(T) bool) (prev, next *T) {
	for i := range all {
		if !isCurrent(all[i]) {
			continue
		}
		if i > 0 {
			p := all[i-1]
			prev = &p
		}
		if i+1 < len(all) {
			n := all[i+1]
			next = &n
		}
		return prev, next
	}
	return nil, nil
}

// relatedProducts — товары той же категории, кроме текущего, не больше limit.
func relatedProducts(all []domain.Product, current domain.Product, limit int) []domain.Product {
	out := make([]domain.Product, 0, limit)
	if current.CategoryID == "" {
		return out
	}
	for _, p := range all {
		if len(out) == limit {
			break
		}
		if p.CategoryID != current.CategoryID || p.Slug == current.Slug {
			continue
		}
		out = append(out, p)
	}
	return out
}

// blogYears — годы публикации по убыванию (published_at, иначе created_at).
func blogYears(blogs []domain.Blog) []int {
	seen := make(map[int]struct{})
	for _, b := range blogs {
		t := b.LastModified()
		if b.PublishedAt != nil && !b.PublishedAt.IsZero() {
			t = *b.PublishedAt
		} else if b.CreatedAt != nil && !b.CreatedAt.IsZero() {
			t = *b.CreatedAt
		}
		if t.IsZero() {
			continue
		}
		seen[t.Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func productResolver(products []domain.Product) func(string) (widget.ProductRef, bool) {
	return func(slug string) (widget.ProductRef, bool) {
		for _, p := range products {
			if p.Slug == slug {
				return widget.ProductRef{Slug: p.Slug, Title: p.Title, Image: p.Image}, true
			}
		}
		return widget.ProductRef{}, false
	}
}
