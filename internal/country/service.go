// Package country — прокси к внешнему датасету телефонных кодов стран.
package country

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/catalog_site/internal/cache"
	"github.com/Gunvolt24/catalog_site/internal/content"
	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/ports"
)

const (
	cacheScope    = "country"
	cacheResource = "codes"
	maxBodyBytes  = 4 << 20
	resourceName  = "country-codes"
)

var _ ports.CountryCodes = (*Service)(nil)

type Service struct {
	url     string
	http    *http.Client
	timeout time.Duration
	cache   ports.ResponseCache
	ttl     time.Duration
	log     ports.Logger

	group singleflight.Group
}

func NewService(datasetURL string, timeout time.Duration, c ports.ResponseCache, ttl time.Duration, log ports.Logger) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		url:     datasetURL,
		http:    &http.Client{},
		timeout: timeout,
		cache:   c,
		ttl:     ttl,
		log:     log,
	}
}

// List — нормализованный, отсортированный по имени список; кэшируется на ttl.
// Одновременные промахи схлопываются в один запрос к датасету.
func (s *Service) List(ctx context.Context) ([]domain.Country, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.Key(cacheScope, cacheResource), s.ttl,
		func(ctx context.Context) ([]domain.Country, error) {
			// общий запрос не зависит от отмены первого клиента, только от s.timeout
			v, err, _ := s.group.Do(cacheResource, func() (any, error) {
				return s.fetch(context.WithoutCancel(ctx))
			})
			if err != nil {
				return nil, err
			}
			return v.([]domain.Country), nil
		})
}

func (s *Service) fetch(ctx context.Context) ([]domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &content.UpstreamError{Resource: resourceName, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded)
		s.log.Warnf(ctx, "country dataset request failed: %v", err)
		return nil, &content.UpstreamError{Resource: resourceName, Timeout: timeout, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &content.UpstreamError{Status: resp.StatusCode, Resource: resourceName}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &content.UpstreamError{Resource: resourceName, Err: err}
	}

	list, err := Normalize(body)
	if err != nil {
		return nil, &content.UpstreamError{Status: resp.StatusCode, Resource: resourceName, Err: err}
	}
	s.log.Infof(ctx, "country dataset loaded entries=%d", len(list))
	return list, nil
}

// rawCountry — объединение двух форм датасета:
// {name, dial_code, code} и {name:{common}, idd:{root, suffixes}}.
type rawCountry struct {
	Name     json.RawMessage `json:"name"`
	DialCode string          `json:"dial_code"`
	IDD      *struct {
		Root     string   `json:"root"`
		Suffixes []string `json:"suffixes"`
	} `json:"idd"`
}

// Normalize — [{dial_code, name}] без записей без кода, по имени.
func Normalize(body []byte) ([]domain.Country, error) {
	var raw []rawCountry
	if err := json.Unmarshal(bytes.TrimSpace(body), &raw); err != nil {
		return nil, fmt.Errorf("decode country dataset: %w", err)
	}

	out := make([]domain.Country, 0, len(raw))
	for _, r := range raw {
		name := countryName(r.Name)
		dial := strings.TrimSpace(r.DialCode)
		if dial == "" && r.IDD != nil {
			dial = strings.TrimSpace(r.IDD.Root)
			// у одного суффикса он часть кода страны, у многих — это уже региональные коды
			if len(r.IDD.Suffixes) == 1 {
				dial += strings.TrimSpace(r.IDD.Suffixes[0])
			}
		}
		if dial == "" || name == "" {
			continue
		}
		if !strings.HasPrefix(dial, "+") {
			dial = "+" + dial
		}
		out = append(out, domain.Country{DialCode: strings.ReplaceAll(dial, " ", ""), Name: name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func countryName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Common string `json:"common"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.Common)
	}
	return ""
}
