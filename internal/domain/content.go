// Пакет domain — типизированные записи контент-API.
// Схемы валидируются на границе content-клиента: дальше по коду ходят только эти типы.
package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ID — идентификатор записи контент-API. Апстрим отдаёт его то числом, то строкой,
// поэтому храним как строку.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		*id = ID(unq)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Timestamps — created_at/updated_at, общие для всех записей.
type Timestamps struct {
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// LastModified — updated_at, иначе created_at; нулевое время, если нет ни того, ни другого.
func (t Timestamps) LastModified() time.Time {
	switch {
	case t.UpdatedAt != nil && !t.UpdatedAt.IsZero():
		return *t.UpdatedAt
	case t.CreatedAt != nil && !t.CreatedAt.IsZero():
		return *t.CreatedAt
	default:
		return time.Time{}
	}
}

// SEO — мета-теги страницы.
type SEO struct {
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`
}

type Setting struct {
	SiteName    string            `json:"site_name"`
	Logo        string            `json:"logo,omitempty"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Address     string            `json:"address,omitempty"`
	Footer      string            `json:"footer_text,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
	SEO
}

type Category struct {
	ID          ID         `json:"id"`
	ParentID    ID         `json:"parent_id,omitempty"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	SortOrder   int        `json:"sort_order,omitempty"`
	Children    []Category `json:"children,omitempty"`
	Products    []Product  `json:"products,omitempty"`
	SEO
	Timestamps
}

type Product struct {
	ID               ID       `json:"id"`
	CategoryID       ID       `json:"category_id,omitempty"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"short_description,omitempty"`
	Description      string   `json:"description,omitempty"`
	Image            string   `json:"image,omitempty"`
	Gallery          []string `json:"gallery,omitempty"`
	Specifications   []Spec   `json:"specifications,omitempty"`
	SEO
	Timestamps
}

// Images — главное изображение и галерея без дублей.
func (p Product) Images() []string {
	return uniqueNonEmpty(append([]string{p.Image}, p.Gallery...))
}

type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Blog struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body,omitempty"`
	Image       string     `json:"image,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Categories  []Taxon    `json:"categories,omitempty"`
	Tags        []Taxon    `json:"tags,omitempty"`
	SEO
	Timestamps
}

// Taxon — категория блога или тег; у обоих одинаковая форма.
type Taxon struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Blogs []Blog `json:"blogs,omitempty"`
	Timestamps
}

type FAQ struct {
	ID       ID     `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Page struct {
	ID       ID     `json:"id"`
	ParentID ID     `json:"parent_id,omitempty"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Body     string `json:"body,omitempty"`
	Image    string `json:"image,omitempty"`
	SEO
	Timestamps
}

type Slider struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image"`
	Link     string `json:"link,omitempty"`
}

type Video struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type Career struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Timestamps
}

func uniqueNonEmpty(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
