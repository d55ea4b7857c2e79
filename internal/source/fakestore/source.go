package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"shopeasy/internal/domain"
)

const (
	SourceID         = "fakestore"
	DefaultBaseURL   = "https://fakestoreapi.com/"
	defaultUserAgent = "ShopEasy/1.0"
)

// Config holds remote catalog configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Source fetches users and products from a Fake Store compatible REST API.
// Every call performs exactly one request; failures are returned as-is.
type Source struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	validate   *validator.Validate
	logger     *slog.Logger
}

// New creates a new catalog source.
func New(cfg Config, logger *slog.Logger) (*Source, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Source{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:   base,
		userAgent: userAgent,
		validate:  validator.New(),
		logger:    logger.With("source", SourceID),
	}, nil
}

// FetchUsers retrieves every user.
func (s *Source) FetchUsers(ctx context.Context) ([]UserDTO, error) {
	var wire []userWire
	if err := s.get(ctx, "users", &wire); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	users := make([]UserDTO, len(wire))
	for i := range wire {
		if err := s.check(&wire[i]); err != nil {
			return nil, fmt.Errorf("fetch users: user at index %d: %w", i, err)
		}
		users[i] = wire[i].toDTO()
	}

	s.logger.Debug("fetched users", "count", len(users))
	return users, nil
}

// FetchProducts retrieves every product.
func (s *Source) FetchProducts(ctx context.Context) ([]ProductDTO, error) {
	var wire []productWire
	if err := s.get(ctx, "products", &wire); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products := make([]ProductDTO, len(wire))
	for i := range wire {
		if err := s.check(&wire[i]); err != nil {
			return nil, fmt.Errorf("fetch products: product at index %d: %w", i, err)
		}
		products[i] = wire[i].toDTO()
	}

	s.logger.Debug("fetched products", "count", len(products))
	return products, nil
}

// FetchProduct retrieves a single product. The API answers unknown ids with an
// empty body, which surfaces as a decode fault.
func (s *Source) FetchProduct(ctx context.Context, id int64) (ProductDTO, error) {
	var wire productWire
	if err := s.get(ctx, "products/"+strconv.FormatInt(id, 10), &wire); err != nil {
		return ProductDTO{}, fmt.Errorf("fetch product %d: %w", id, err)
	}
	if err := s.check(&wire); err != nil {
		return ProductDTO{}, fmt.Errorf("fetch product %d: %w", id, err)
	}
	return wire.toDTO(), nil
}

func (s *Source) check(payload any) error {
	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return nil
}

func (s *Source) get(ctx context.Context, path string, dest any) error {
	reqURL := s.baseURL.ResolveReference(&url.URL{Path: path})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.StatusError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrDecode, err)
	}

	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: scheme and host required", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
