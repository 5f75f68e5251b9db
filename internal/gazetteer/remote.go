package gazetteer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/relextract/slotscan/internal/model"
	"github.com/relextract/slotscan/internal/util"
)

// Client queries a remote geography service over HTTP. Requests are rate
// limited so that bulk annotation runs stay polite to the service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// lookupResult is the JSON body returned by the service's /lookup endpoint.
type lookupResult struct {
	City    bool `json:"city"`
	Region  bool `json:"region"`
	Country bool `json:"country"`
}

// NewClient creates a remote gazetteer client from configuration.
func NewClient(cfg model.GazetteerConfig) *Client {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// IsValidCity reports whether the service knows the name as a city.
// Lookup failures are treated as "unknown".
func (c *Client) IsValidCity(name string) bool {
	res, err := c.Lookup(context.Background(), name)
	return err == nil && res.City
}

// IsValidRegion reports whether the service knows the name as a state or
// province.
func (c *Client) IsValidRegion(name string) bool {
	res, err := c.Lookup(context.Background(), name)
	return err == nil && res.Region
}

// IsValidCountry reports whether the service knows the name as a country.
func (c *Client) IsValidCountry(name string) bool {
	res, err := c.Lookup(context.Background(), name)
	return err == nil && res.Country
}

// Lookup queries the service for all classifications of a name at once.
func (c *Client) Lookup(ctx context.Context, name string) (*lookupResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/lookup?name=" + url.QueryEscape(normalize(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup %q: unexpected status %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var res lookupResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}
	return &res, nil
}
