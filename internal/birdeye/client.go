package birdeye

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"TokenPulse/internal/model"
)

// DefaultBaseURL is the public Birdeye API endpoint.
const DefaultBaseURL = "https://public-api.birdeye.so"

// Client is the canonical HTTP transport for the Birdeye data service.
// Every method issues exactly one outbound request; retry and backoff are the
// caller's responsibility.
type Client struct {
	BaseURL string
	APIKey  string
	Chain   string
	// Delay is an optional advisory pause applied before each request to
	// stay under the upstream rate limit. Zero disables it.
	Delay  time.Duration
	Client *http.Client
}

// NewClient creates a Birdeye client with optional proxy support.
func NewClient(baseURL, apiKey, chain, proxyURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Chain:   chain,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (c *Client) Name() string { return "birdeye" }

// historyEnvelope is the documented response shape of /defi/history_price.
type historyEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Items []model.PricePoint `json:"items"`
	} `json:"data"`
}

// tokenListEnvelope is the documented response shape of /defi/tokenlist.
type tokenListEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Items []model.TokenInfo `json:"items"`
	} `json:"data"`
}

// HistoryPrice fetches time-bucketed prices for an address over the window.
// An upstream payload with no items is returned as an empty series, not an
// error; callers must check emptiness before computing statistics.
func (c *Client) HistoryPrice(address string, kind model.AddressKind, interval model.Interval, window model.TimeWindow) (model.PriceSeries, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("address_type", string(kind))
	q.Set("type", string(interval))
	q.Set("time_from", strconv.FormatInt(window.From, 10))
	q.Set("time_to", strconv.FormatInt(window.To, 10))

	body, err := c.get("/defi/history_price", q)
	if err != nil {
		return nil, err
	}

	var env historyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decode history payload: %v", ErrUpstream, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamFailure, upstreamMessage(env.Message))
	}
	if env.Data == nil || len(env.Data.Items) == 0 {
		return model.PriceSeries{}, nil
	}
	return model.PriceSeries(env.Data.Items), nil
}

// TokenListParams controls sorting and pagination of the ranked token list.
type TokenListParams struct {
	SortBy   string
	SortType string
	Limit    int
	Offset   int
}

// TokenList fetches the ranked token list for the configured chain.
func (c *Client) TokenList(p TokenListParams) ([]model.TokenInfo, error) {
	if p.SortBy == "" {
		p.SortBy = "v24hChangePercent"
	}
	if p.SortType == "" {
		p.SortType = "desc"
	}
	if p.Limit <= 0 {
		p.Limit = 100
	}

	q := url.Values{}
	q.Set("sort_by", p.SortBy)
	q.Set("sort_type", p.SortType)
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))

	body, err := c.get("/defi/tokenlist", q)
	if err != nil {
		return nil, err
	}

	var env tokenListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decode token list payload: %v", ErrUpstream, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamFailure, upstreamMessage(env.Message))
	}
	if env.Data == nil {
		return nil, nil
	}
	return env.Data.Items, nil
}

// get performs one GET against the API and maps status codes onto the
// package failure taxonomy.
func (c *Client) get(path string, q url.Values) ([]byte, error) {
	if c.Delay > 0 {
		time.Sleep(c.Delay)
	}

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-chain", c.Chain)
	req.Header.Set("X-API-KEY", c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrRequestRejected, resp.StatusCode, body)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrUpstream, resp.StatusCode, body)
	}
	return body, nil
}

func upstreamMessage(msg string) string {
	if msg == "" {
		return "no message in payload"
	}
	return msg
}
