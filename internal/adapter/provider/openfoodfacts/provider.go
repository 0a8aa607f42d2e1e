package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okravets/caltrack-backend/internal/provider"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

const defaultPageSize = 10

// Provider fetches product data from the Open Food Facts API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Open Food Facts URL.
func NewProvider(logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "openfoodfacts"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "openfoodfacts"),
	}
}

// Search queries the Open Food Facts catalog by free text. Products without a
// name or without any calorie figure are dropped. An empty result is not an
// error.
func (p *Provider) Search(ctx context.Context, query string) ([]provider.FoodResult, error) {
	reqURL := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		p.baseURL, url.QueryEscape(strings.TrimSpace(query)), defaultPageSize)

	p.log.DebugContext(ctx, "openfoodfacts search", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: create request: %w", err)
	}
	req.Header.Set("User-Agent", "caltrack-backend/1.0")

	resp, err := p.doWithRetry(ctx, req, query)
	if err != nil {
		p.log.ErrorContext(ctx, "openfoodfacts request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("openfoodfacts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: read body: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("openfoodfacts: decode json: %w", err)
	}

	results := mapProducts(parsed.Products)

	p.log.DebugContext(ctx, "openfoodfacts response",
		slog.String("query", query),
		slog.Int("products", len(parsed.Products)),
		slog.Int("usable", len(results)),
	)

	return results, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, query string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "openfoodfacts retry", slog.String("query", query), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = p.httpClient.Do(req)
	return resp, err
}

// mapProducts converts API products to FoodResults, preferring the
// per-serving calorie figure and falling back to per 100g.
func mapProducts(products []apiProduct) []provider.FoodResult {
	results := make([]provider.FoodResult, 0, len(products))
	for _, prod := range products {
		name := strings.TrimSpace(prod.ProductName)
		if name == "" {
			continue
		}

		kcal, ok := calories(prod.Nutriments)
		if !ok {
			continue
		}

		result := provider.FoodResult{
			Name:     name,
			Brand:    strings.TrimSpace(prod.Brands),
			Calories: kcal,
		}
		if img := strings.TrimSpace(prod.ImageURL); img != "" {
			result.ImageURL = &img
		}
		results = append(results, result)
	}
	return results
}

// calories extracts a whole-kcal value from the nutriments map. The API is
// inconsistent about number encoding, so both JSON numbers and numeric
// strings are accepted.
func calories(n map[string]any) (int, bool) {
	for _, key := range []string{"energy-kcal_serving", "energy-kcal_100g"} {
		f, ok := toFloat(n[key])
		if !ok || f <= 0 {
			continue
		}
		return int(math.Round(f)), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
