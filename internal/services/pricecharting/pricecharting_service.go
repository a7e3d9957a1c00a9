package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"game-tradein/internal/metrics"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrUpstream        = errors.New("pricecharting upstream error")
)

type PriceChartingService struct {
	apiKey  string
	client  *resty.Client
	baseURL string
}

// CatalogEntry is a normalized PriceCharting product. Prices are in
// dollars keyed by condition (Loose, Complete, Sealed).
type CatalogEntry struct {
	Title    string             `json:"title"`
	Platform string             `json:"platform"`
	Prices   map[string]float64 `json:"prices"`
}

type priceChartingProduct struct {
	ProductName   string  `json:"product-name"`
	ConsoleName   string  `json:"console-name"`
	LoosePrice    float64 `json:"loose-price"`
	CompletePrice float64 `json:"complete-price"`
	NewPrice      float64 `json:"new-price"`
}

type productsResponse struct {
	Products []priceChartingProduct `json:"products"`
}

type productResponse struct {
	Product *priceChartingProduct `json:"product"`
}

func NewPriceChartingService(apiKey, baseURL string) *PriceChartingService {
	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetHeader("User-Agent", "GameTradeIn/1.0")

	return &PriceChartingService{
		apiKey:  apiKey,
		client:  client,
		baseURL: baseURL,
	}
}

// Search queries the bulk product endpoint. An empty query returns no
// results without an outbound call. Failures come back as an error
// alongside an empty result, never as a panic.
func (p *PriceChartingService) Search(query string) ([]CatalogEntry, error) {
	if query == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/api/products", p.baseURL)

	resp, err := p.client.R().
		SetQueryParams(map[string]string{
			"t": p.apiKey,
			"q": query,
		}).
		Get(url)

	if err != nil {
		metrics.UpstreamRequestCounter.WithLabelValues("products", "error").Inc()
		log.Warnf("PriceCharting search failed: %v", err)
		return nil, err
	}

	if resp.IsError() {
		metrics.UpstreamRequestCounter.WithLabelValues("products", "error").Inc()
		return nil, fmt.Errorf("pricecharting API error: %s", resp.Status())
	}

	var pcResp productsResponse
	if err := json.Unmarshal(resp.Body(), &pcResp); err != nil {
		metrics.UpstreamRequestCounter.WithLabelValues("products", "error").Inc()
		return nil, err
	}

	metrics.UpstreamRequestCounter.WithLabelValues("products", "success").Inc()

	results := make([]CatalogEntry, 0, len(pcResp.Products))
	for _, product := range pcResp.Products {
		results = append(results, product.toEntry(""))
	}

	return results, nil
}

// Lookup fetches one product by title and console. Both arguments are
// required and checked before any outbound call. The console name is
// passed through to PriceCharting as-is.
func (p *PriceChartingService) Lookup(title, platform string) (*CatalogEntry, error) {
	if title == "" || platform == "" {
		return nil, ErrInvalidArgument
	}

	url := fmt.Sprintf("%s/api/product", p.baseURL)

	resp, err := p.client.R().
		SetQueryParams(map[string]string{
			"t":       p.apiKey,
			"q":       title,
			"console": platform,
		}).
		Get(url)

	if err != nil {
		metrics.UpstreamRequestCounter.WithLabelValues("product", "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.IsError() {
		metrics.UpstreamRequestCounter.WithLabelValues("product", "error").Inc()
		return nil, fmt.Errorf("%w: %s", ErrUpstream, resp.Status())
	}

	var pcResp productResponse
	if err := json.Unmarshal(resp.Body(), &pcResp); err != nil {
		metrics.UpstreamRequestCounter.WithLabelValues("product", "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if pcResp.Product == nil {
		metrics.UpstreamRequestCounter.WithLabelValues("product", "not_found").Inc()
		return nil, ErrNotFound
	}

	metrics.UpstreamRequestCounter.WithLabelValues("product", "success").Inc()

	entry := pcResp.Product.toEntry(title)
	return &entry, nil
}

// toEntry normalizes one upstream product. PriceCharting reports
// prices in pennies; missing fields decode as 0. fallbackTitle is used
// when the upstream omits the product name.
func (product priceChartingProduct) toEntry(fallbackTitle string) CatalogEntry {
	title := product.ProductName
	if title == "" {
		title = fallbackTitle
	}

	return CatalogEntry{
		Title:    title,
		Platform: product.ConsoleName,
		Prices: map[string]float64{
			"Loose":    centsToDollars(product.LoosePrice),
			"Complete": centsToDollars(product.CompletePrice),
			"Sealed":   centsToDollars(product.NewPrice),
		},
	}
}

func centsToDollars(cents float64) float64 {
	if cents <= 0 {
		return 0
	}
	return cents / 100
}
