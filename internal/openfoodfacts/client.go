// Package openfoodfacts looks up third-party sustainability metadata for a
// product name. Lookups are best-effort: callers treat any error as "no
// external data" and the comparison proceeds without it.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ecocart/internal/models"
	"ecocart/pkg/config"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrNotFound       = errors.New("no matching product in Open Food Facts")
	ErrUpstreamFailed = errors.New("Open Food Facts request failed")
)

type searchResponse struct {
	Products []externalProduct `json:"products"`
}

type externalProduct struct {
	ProductName         string   `json:"product_name"`
	EcoscoreScore       float64  `json:"ecoscore_score"`
	EcoscoreGrade       string   `json:"ecoscore_grade"`
	Packaging           string   `json:"packaging"`
	LabelsTags          []string `json:"labels_tags"`
	AdditivesTags       []string `json:"additives_tags"`
	Origins             string   `json:"origins"`
	ManufacturingPlaces string   `json:"manufacturing_places"`
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

func NewClient(cfg *config.OpenFoodFactsConfig, logger *zap.Logger) *Client {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 2
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 5),
		logger:      logger,
	}
}

// Lookup searches Open Food Facts by product name and extracts a bounded set
// of sustainability fields from the first match. A single attempt, no
// retries: the caller degrades gracefully on any failure.
func (c *Client) Lookup(ctx context.Context, name string) (*models.ExternalProduct, error) {
	if name == "" {
		return nil, ErrNotFound
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Add("search_terms", name)
	params.Add("json", "1")
	reqURL := fmt.Sprintf("%s/cgi/search.pl?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "EcoCart/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("Open Food Facts non-OK status",
			zap.String("query", name),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailed, err)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(searchResp.Products) == 0 {
		return nil, ErrNotFound
	}

	ext := searchResp.Products[0]
	result := &models.ExternalProduct{
		ProductName:         ext.ProductName,
		Ecoscore:            ext.EcoscoreScore,
		EcoscoreGrade:       ext.EcoscoreGrade,
		Packaging:           ext.Packaging,
		Labels:              ext.LabelsTags,
		AdditivesCount:      len(ext.AdditivesTags),
		Origins:             ext.Origins,
		ManufacturingPlaces: ext.ManufacturingPlaces,
	}
	result.Description = describe(result)

	c.logger.Debug("Open Food Facts match",
		zap.String("query", name),
		zap.String("match", result.ProductName),
		zap.String("grade", result.EcoscoreGrade),
	)

	return result, nil
}

var gradeDescriptions = map[string]string{
	"a": "Excellent environmental rating",
	"b": "Good environmental rating",
	"c": "Average environmental rating",
	"d": "Below average environmental rating",
	"e": "Poor environmental rating",
}

// describe derives a short human-readable summary from the extracted fields.
func describe(ext *models.ExternalProduct) string {
	var sb strings.Builder

	if text, ok := gradeDescriptions[strings.ToLower(ext.EcoscoreGrade)]; ok {
		sb.WriteString(text)
	}

	if ext.AdditivesCount > 0 {
		fmt.Fprintf(&sb, " Contains %d additives.", ext.AdditivesCount)
		if ext.AdditivesCount > 5 {
			sb.WriteString(" High number of additives may impact eco-score.")
		}
	}

	if ext.Packaging != "" {
		fmt.Fprintf(&sb, " Packaging: %s.", ext.Packaging)
	}

	if len(ext.Labels) > 0 {
		labels := ext.Labels
		if len(labels) > 3 {
			labels = labels[:3]
		}
		fmt.Fprintf(&sb, " Certified with: %s.", strings.Join(labels, ", "))
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "Basic sustainability information available."
	}
	return text
}
