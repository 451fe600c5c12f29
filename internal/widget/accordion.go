package widget

import (
	"net/url"
	"strconv"
)

// Accordion — одна открытая секция максимум.
type Accordion struct {
	Open *int
}

// Toggle — повторный toggle той же секции закрывает её, другая секция заменяет открытую.
func (a Accordion) Toggle(i int) Accordion {
	if a.Open != nil && *a.Open == i {
		return Accordion{}
	}
	return Accordion{Open: &i}
}

func (a Accordion) IsOpen(i int) bool { return a.Open != nil && *a.Open == i }

// ToggleQuery — query no-JS ссылки секции i.
func (a Accordion) ToggleQuery(i int) string {
	next := a.Toggle(i)
	if next.Open == nil {
		return ""
	}
	return "open=" + strconv.Itoa(*next.Open)
}

// AccordionFromQuery — ?open=i; индексы вне [0, n) игнорируются.
func AccordionFromQuery(q url.Values, n int) Accordion {
	raw := q.Get("open")
	if raw == "" {
		return Accordion{}
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= n {
		return Accordion{}
	}
	return Accordion{Open: &i}
}
