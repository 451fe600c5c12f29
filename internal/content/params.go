package content

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Gunvolt24/catalog_site/internal/domain"
)

type Param struct {
	Key   string
	Value string
}

// Params — упорядоченный набор query-параметров; порядок добавления сохраняется
// при кодировании, пустые значения не попадают в запрос.
type Params []Param

func (p Params) Add(key, value string) Params {
	if value == "" {
		return p
	}
	return append(p, Param{Key: key, Value: value})
}

// AddInt — неположительные значения пропускаются.
func (p Params) AddInt(key string, v int) Params {
	if v <= 0 {
		return p
	}
	return p.Add(key, strconv.Itoa(v))
}

func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Encode — key=value&... в порядке добавления; запятые в значениях не экранируются.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(kv.Key))
		b.WriteByte('=')
		b.WriteString(escape(kv.Value))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%2C", ",")
}

// ProductParams — query для products: limit, search, categories (через запятую), year.
func ProductParams(q domain.ProductListQuery) Params {
	ids := make([]string, 0, len(q.CategoryIDs))
	for _, id := range q.CategoryIDs {
		if id != "" {
			ids = append(ids, id.String())
		}
	}
	return Params{}.
		AddInt("limit", q.Limit).
		Add("search", strings.TrimSpace(q.Search)).
		Add("categories", strings.Join(ids, ",")).
		AddInt("year", q.Year)
}
