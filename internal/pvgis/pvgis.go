// Package pvgis fetches long-term solar yield estimates from the European
// Commission's PVGIS service. Callers are expected to fall back to the static
// yield table when the provider is unreachable; this package only reports the
// failure.
package pvgis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// DefaultBaseURL is the production PVGIS API endpoint.
const DefaultBaseURL = "https://re.jrc.ec.europa.eu/api/v5_2"

// Source is the yield provider contract consumed by the service layer.
// Implemented by Client and by test doubles.
type Source interface {
	AnnualYield(ctx context.Context, latitude, longitude float64) (float64, error)
}

// systemLossPercent is the assumed total system loss (cabling, inverter,
// soiling) passed to PVcalc.
const systemLossPercent = 14.0

// Client provides methods for fetching solar yield data from the PVGIS API.
// It wraps an HTTP client and retries transient failures with exponential
// backoff before giving up.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries uint64
}

// NewClient creates a new PVGIS client against the given base URL.
// An empty baseURL selects the production endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		maxRetries: 2,
	}
}

// AnnualYield fetches the expected annual production in kWh per installed kWp
// for the given coordinates. It queries PVcalc with a 1 kWp reference system
// so the returned E_y is directly the specific yield.
//
// Transient failures (network errors, 5xx) are retried with exponential
// backoff; a final failure is returned to the caller, who owns the fallback
// policy.
func (c *Client) AnnualYield(ctx context.Context, latitude, longitude float64) (float64, error) {
	url := fmt.Sprintf(
		"%s/PVcalc?lat=%.4f&lon=%.4f&peakpower=1&loss=%.1f&outputformat=json",
		c.baseURL,
		latitude,
		longitude,
		systemLossPercent,
	)

	var response Response
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(500*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		result, err := c.query(ctx, url)
		if err != nil {
			return retry.RetryableError(err)
		}
		response = result
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("pvgis yield lookup failed: %w", err)
	}

	if response.Outputs.Totals.Fixed.AnnualEnergyKwh <= 0 {
		return 0, fmt.Errorf("pvgis returned no yearly energy for lat=%.4f lon=%.4f", latitude, longitude)
	}

	return response.Outputs.Totals.Fixed.AnnualEnergyKwh, nil
}

// query executes one HTTP request against the PVGIS API and decodes the body.
func (c *Client) query(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("pvgis responded with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	return response, nil
}
