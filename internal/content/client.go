// Package content — HTTP-клиент внешнего контент-API.
// Один GET на вызов, без ретраев; каждый вызов ограничен таймаутом.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/catalog_site/internal/ports"
	"github.com/Gunvolt24/catalog_site/pkg/metrics"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "catalog-site/1.0"
	maxBodyBytes     = 8 << 20
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// ListLimit — лимит «полной» выборки (prev/next, карта сайта).
	ListLimit int
}

type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	listLimit int
	http      *http.Client
	log       ports.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(cfg Config, log ports.Logger, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("content: empty base url")
	}
	c := &Client{
		baseURL:   base,
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
		listLimit: cfg.ListLimit,
		http:      &http.Client{},
		log:       log,
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.listLimit <= 0 {
		c.listLimit = 1000
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListLimit — лимит полной выборки, которым пользуются загрузчики.
func (c *Client) ListLimit() int { return c.listLimit }

// Fetch — GET <base>/<resource>?<params>; возвращает payload без конверта.
func (c *Client) Fetch(ctx context.Context, resource string, params Params) (json.RawMessage, error) {
	resource = strings.Trim(resource, "/")
	label := metricLabel(resource)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + "/" + resource
	if q := params.Encode(); q != "" {
		u += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &UpstreamError{Resource: resource, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
		status := "error"
		if timeout {
			status = "timeout"
		}
		c.observe(label, status, start)
		if c.log != nil {
			c.log.Warnf(ctx, "content request failed resource=%s timeout=%v: %v", resource, timeout, err)
		}
		return nil, &UpstreamError{Resource: resource, Timeout: timeout, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.observe(label, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &UpstreamError{Status: resp.StatusCode, Resource: resource}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded)
		return nil, &UpstreamError{Status: 0, Resource: resource, Timeout: timeout, Err: err}
	}

	payload, err := unwrapEnvelope(body)
	if err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Resource: resource, Err: err}
	}
	return payload, nil
}

func (c *Client) observe(label, status string, start time.Time) {
	metrics.ContentRequests.WithLabelValues(label, status).Inc()
	metrics.ContentRequestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
}

// metricLabel — первый сегмент пути: слаги не раздувают кардинальность.
func metricLabel(resource string) string {
	if i := strings.IndexByte(resource, '/'); i >= 0 {
		return resource[:i]
	}
	return resource
}

// fetchList / fetchOne — Fetch + типизированное декодирование.
func fetchList[T any](ctx context.Context, c *Client, resource string, params Params) ([]T, error) {
	raw, err := c.Fetch(ctx, resource, params)
	if err != nil {
		return nil, err
	}
	out, err := List[T](raw)
	if err != nil {
		return nil, &UpstreamError{Status: http.StatusOK, Resource: resource, Err: err}
	}
	return out, nil
}

func fetchOne[T any](ctx context.Context, c *Client, resource string, params Params) (*T, error) {
	raw, err := c.Fetch(ctx, resource, params)
	if err != nil {
		return nil, err
	}
	out, err := One[T](raw)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", resource, ErrNotFound)
	}
	if err != nil {
		return nil, &UpstreamError{Status: http.StatusOK, Resource: resource, Err: err}
	}
	return out, nil
}
