package tenniscores

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
	"github.com/riskibarqy/paddle-roster/internal/platform/resilience"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

const (
	defaultBaseURL         = "https://aptachicago.tenniscores.com"
	defaultTimeout         = 20 * time.Second
	defaultRequestInterval = time.Second
	defaultMaxBodyBytes    = 8 << 20

	defaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	defaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	defaultAcceptLanguage = "en-US,en;q=0.9"
)

var errTenniscoresTransient = crerr.New("tenniscores transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	// RequestInterval is the minimum spacing between two outgoing requests.
	RequestInterval time.Duration
	UserAgent       string
	MaxBodyBytes    int64
	Logger          *logging.Logger
	CircuitBreaker  resilience.CircuitBreakerConfig
}

// Client fetches pages one attempt at a time with browser-like headers.
// Redirects follow the net/http default policy.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	maxBodyBytes   int64
	limiter        *rate.Limiter
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	interval := cfg.RequestInterval
	if interval < 0 {
		interval = defaultRequestInterval
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		userAgent:      userAgent,
		maxBodyBytes:   maxBody,
		limiter:        rate.NewLimiter(limit, 1),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveURL makes ref absolute against the configured base URL.
func (c *Client) ResolveURL(ref string) (string, error) {
	return resolveURL(c.baseURL, ref)
}

// Fetch returns the page body. Any network error, timeout or non-2xx status wraps
// usecase.ErrFetchFailed; there is no retry.
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	fullURL, err := c.ResolveURL(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrFetchFailed, err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: wait for request slot: %v", usecase.ErrFetchFailed, err)
	}

	if !c.circuitEnabled {
		return c.executeRequest(ctx, fullURL)
	}

	var body string
	err = c.breaker.Execute(func() error {
		var reqErr error
		body, reqErr = c.executeRequest(ctx, fullURL)
		return reqErr
	}, isTenniscoresCircuitFailure)
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "tenniscores circuit breaker rejected request", "state", c.breaker.State(), "url", fullURL)
		return "", fmt.Errorf("%w: %w: upstream site is temporarily unavailable", usecase.ErrFetchFailed, usecase.ErrDependencyUnavailable)
	}
	return body, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", usecase.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", defaultAccept)
	req.Header.Set("Accept-Language", defaultAcceptLanguage)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := crerr.Wrapf(err, "send request url=%s", fullURL)
		c.logger.WarnContext(ctx, "tenniscores request failed", "url", fullURL, "error", wrapped)
		return "", fmt.Errorf("%w: %w: %v", usecase.ErrFetchFailed, errTenniscoresTransient, wrapped)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	n, err := buf.ReadFrom(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w: read response body: %v", usecase.ErrFetchFailed, errTenniscoresTransient, err)
	}
	if n > c.maxBodyBytes {
		c.logger.WarnContext(ctx, "tenniscores response too large", "url", fullURL, "limit_bytes", c.maxBodyBytes)
		return "", fmt.Errorf("%w: response body exceeds %d bytes url=%s", usecase.ErrFetchFailed, c.maxBodyBytes, fullURL)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "tenniscores returned non-2xx", "url", fullURL, "status", resp.StatusCode)
		if isTransientStatus(resp.StatusCode) {
			return "", fmt.Errorf("%w: %w: status=%d url=%s", usecase.ErrFetchFailed, errTenniscoresTransient, resp.StatusCode, fullURL)
		}
		return "", fmt.Errorf("%w: status=%d url=%s", usecase.ErrFetchFailed, resp.StatusCode, fullURL)
	}

	return buf.String(), nil
}

func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func isTenniscoresCircuitFailure(err error) bool {
	return stderrors.Is(err, errTenniscoresTransient)
}

func resolveURL(base, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty url")
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", ref, err)
	}
	if refURL.IsAbs() {
		return refURL.String(), nil
	}
	baseURL, err := url.Parse(base + "/")
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", base, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
