// Package api scrapes the Petrol Ofisi fuel price page for Kayseri and turns
// its price table into per-district records.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultURL     = "https://www.petrolofisi.com.tr/akaryakit-fiyatlari/kayseri-akaryakit-fiyatlari"
	DefaultTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/90.0.4430.93 Safari/537.36"
)

// FuelPriceAPI fetches the price page. It holds no mutable state and is
// safe for concurrent use.
type FuelPriceAPI struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a FuelPriceAPI.
type Option func(*FuelPriceAPI)

// WithBaseURL overrides the page URL.
func WithBaseURL(url string) Option {
	return func(api *FuelPriceAPI) {
		api.baseURL = url
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(api *FuelPriceAPI) {
		api.httpClient = c
	}
}

// WithLogger sets the logger used to report failed fetches.
func WithLogger(l *slog.Logger) Option {
	return func(api *FuelPriceAPI) {
		api.log = l
	}
}

// NewFuelPriceAPI creates a new FuelPriceAPI client with default settings.
func NewFuelPriceAPI(opts ...Option) *FuelPriceAPI {
	api := &FuelPriceAPI{
		baseURL: DefaultURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(api)
	}

	return api
}

// FetchPrices downloads the price page and extracts the district records.
// Every failure is logged and returned as a *FetchError.
func (api *FuelPriceAPI) FetchPrices(ctx context.Context) (PriceReport, error) {
	report, err := api.fetchPrices(ctx)
	if err != nil {
		api.logFailure(err)
		return nil, err
	}

	api.log.Debug("fetched fuel prices", "url", api.baseURL, "districts", len(report))

	return report, nil
}

func (api *FuelPriceAPI) fetchPrices(ctx context.Context) (PriceReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api.baseURL, http.NoBody)
	if err != nil {
		return nil, &FetchError{Kind: NetworkError, Detail: "error creating request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: NetworkError, Detail: "error fetching data", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Kind: HTTPError, Status: resp.StatusCode}
	}

	return ExtractPrices(resp.Body)
}

func (api *FuelPriceAPI) logFailure(err error) {
	var fe *FetchError
	if !errors.As(err, &fe) {
		api.log.Error("fetching fuel prices", "url", api.baseURL, "error", err)
		return
	}

	switch fe.Kind {
	case HTTPError:
		api.log.Error("unexpected upstream status", "url", api.baseURL, "status", fe.Status)
	case StructureError:
		api.log.Error("unexpected page structure", "url", api.baseURL, "reason", fe.Detail)
	default:
		api.log.Error("request failed", "url", api.baseURL, "error", fe)
	}
}
