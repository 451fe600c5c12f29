// Package sitemap — sitemap.xml, image-sitemap.xml и robots.txt по всем коллекциям контента.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
)

const (
	nsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	nsImage   = "http://www.google.com/schemas/sitemap-image/1.1"

	PriorityHome     = "1.0"
	PriorityCategory = "0.9"
	PriorityProduct  = "0.8"
	PriorityBlog     = "0.7"
	PriorityOther    = "0.6"
)

// Entry — один URL карты сайта.
type Entry struct {
	Loc      string
	LastMod  time.Time
	Priority string
	Images   []string
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	XImage  string   `xml:"xmlns:image,attr,omitempty"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc      string     `xml:"loc"`
	LastMod  string     `xml:"lastmod,omitempty"`
	Priority string     `xml:"priority"`
	Images   []xmlImage `xml:"image:image,omitempty"`
}

type xmlImage struct {
	Loc string `xml:"image:loc"`
}

// staticRoutes — маршруты без слага.
var staticRoutes = []struct {
	path     string
	priority string
}{
	{"/", PriorityHome},
	{"/category", PriorityCategory},
	{"/products", PriorityProduct},
	{"/blog", PriorityBlog},
	{"/faqs", PriorityOther},
	{"/contact", PriorityOther},
	{"/careers", PriorityOther},
	{"/videos", PriorityOther},
}

// Entries — статические маршруты + категории + товары + блог + категории блога + теги + страницы.
func Entries(base string, f *usecase.Feed) []Entry {
	base = strings.TrimRight(base, "/")
	abs := func(p string) string { return absURL(base, p) }

	out := make([]Entry, 0, len(staticRoutes)+len(f.Categories)+len(f.Products)+len(f.Blogs)+len(f.BlogCategories)+len(f.Tags)+len(f.Pages))
	for _, r := range staticRoutes {
		out = append(out, Entry{Loc: abs(r.path), Priority: r.priority})
	}
	for _, c := range f.Categories {
		if c.Slug == "" {
			continue
		}
		out = append(out, Entry{
			Loc: abs("/category/" + c.Slug), LastMod: c.LastModified(), Priority: PriorityCategory,
			Images: images(base, c.Image),
		})
	}
	for _, p := range f.Products {
		if p.Slug == "" {
			continue
		}
		out = append(out, Entry{
			Loc: abs("/product/" + p.Slug), LastMod: p.LastModified(), Priority: PriorityProduct,
			Images: images(base, p.Images()...),
		})
	}
	for _, b := range f.Blogs {
		if b.Slug == "" {
			continue
		}
		out = append(out, Entry{
			Loc: abs("/blog/" + b.Slug), LastMod: b.LastModified(), Priority: PriorityBlog,
			Images: images(base, b.Image),
		})
	}
	out = appendTaxa(out, base, "/blog-category/", f.BlogCategories)
	out = appendTaxa(out, base, "/tag/", f.Tags)
	for _, p := range f.Pages {
		if p.Slug == "" {
			continue
		}
		out = append(out, Entry{
			Loc: abs("/page/" + p.Slug), LastMod: p.LastModified(), Priority: PriorityOther,
			Images: images(base, p.Image),
		})
	}
	return out
}

func appendTaxa(out []Entry, base, prefix string, taxa []domain.Taxon) []Entry {
	for _, t := range taxa {
		if t.Slug == "" {
			continue
		}
		out = append(out, Entry{Loc: absURL(base, prefix+t.Slug), LastMod: t.LastModified(), Priority: PriorityOther})
	}
	return out
}

// Render — XML документа; withImages добавляет <image:image> для записей с картинками.
func Render(entries []Entry, withImages bool) ([]byte, error) {
	doc := urlset{Xmlns: nsSitemap, URLs: make([]xmlURL, 0, len(entries))}
	if withImages {
		doc.XImage = nsImage
	}
	for _, e := range entries {
		u := xmlURL{Loc: e.Loc, Priority: e.Priority}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		if withImages {
			for _, img := range e.Images {
				u.Images = append(u.Images, xmlImage{Loc: img})
			}
		}
		doc.URLs = append(doc.URLs, u)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Robots — robots.txt со ссылкой на карту сайта.
func Robots(base string) string {
	return "User-agent: *\nAllow: /\nSitemap: " + absURL(strings.TrimRight(base, "/"), "/sitemap.xml") + "\n"
}

func absURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func images(base string, srcs ...string) []string {
	out := make([]string, 0, len(srcs))
	for _, s := range srcs {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, absURL(base, s))
		}
	}
	return out
}
