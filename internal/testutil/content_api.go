package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// ContentResponse — поведение одного ресурса фейкового контент-API.
type ContentResponse struct {
	Status int
	Body   string
	Delay  time.Duration
}

// ContentAPI — httptest-сервер, имитирующий контент-API. Считает запросы по путям.
type ContentAPI struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]ContentResponse
	hits      map[string]int
	queries   map[string][]string
	headers   http.Header
}

func NewContentAPI() *ContentAPI {
	api := &ContentAPI{
		responses: make(map[string]ContentResponse),
		hits:      make(map[string]int),
		queries:   make(map[string][]string),
	}
	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	return api
}

func (a *ContentAPI) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")

	a.mu.Lock()
	a.hits[path]++
	a.queries[path] = append(a.queries[path], r.URL.RawQuery)
	a.headers = r.Header.Clone()
	resp, ok := a.responses[path]
	a.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
		return
	}
	if resp.Delay > 0 {
		select {
		case <-time.After(resp.Delay):
		case <-r.Context().Done():
			return
		}
	}
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}

// URL — базовый адрес (подставляется как CONTENT_BASE_URL).
func (a *ContentAPI) URL() string { return a.server.URL }

func (a *ContentAPI) Close() { a.server.Close() }

// Handle — произвольный ответ для пути (без ведущего /).
func (a *ContentAPI) Handle(path string, resp ContentResponse) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[strings.Trim(path, "/")] = resp
}

// List — ответ списочного ресурса в конверте {data:{data:[...]}}.
func (a *ContentAPI) List(path string, items any) {
	a.Handle(path, ContentResponse{Body: envelope(map[string]any{"data": items})})
}

// One — ответ одиночного ресурса в конверте {data:{...}}.
func (a *ContentAPI) One(path string, record any) {
	a.Handle(path, ContentResponse{Body: envelope(record)})
}

func (a *ContentAPI) Fail(path string, status int) {
	a.Handle(path, ContentResponse{Status: status, Body: `{"message":"error"}`})
}

// Hits — число запросов к пути.
func (a *ContentAPI) Hits(path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[strings.Trim(path, "/")]
}

// TotalHits — число запросов ко всем путям.
func (a *ContentAPI) TotalHits() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, v := range a.hits {
		n += v
	}
	return n
}

// LastQuery — raw query последнего запроса к пути.
func (a *ContentAPI) LastQuery(path string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	q := a.queries[strings.Trim(path, "/")]
	if len(q) == 0 {
		return ""
	}
	return q[len(q)-1]
}

func (a *ContentAPI) LastHeaders() http.Header {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.headers.Clone()
}

func (a *ContentAPI) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hits = make(map[string]int)
	a.queries = make(map[string][]string)
}

func envelope(data any) string {
	b, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		panic(err)
	}
	return string(b)
}
