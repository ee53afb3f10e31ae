// Package oneinch implements an HTTP client for the 1inch aggregation gateway.
//
// Coverage: Fusion+ quote and swap submission, per-chain token lists, supported chains,
// token balances and classic-swap gas estimation.
//
// Notes:
//   - Every request carries "Authorization: Bearer <key>", even when the key is empty.
//     The gateway rejects it with 401 and that surfaces as an *APIError.
//   - Successful bodies are returned verbatim (json.RawMessage); callers own field checks.
//   - Non-2xx responses become *APIError; requests that never got a response become *RequestError.
//   - No retries. A per-call timeout is applied when configured.
package oneinch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	quotePath     = "/fusion-plus/v1.0/quote/receive"
	swapPath      = "/fusion-plus/v1.0/swap"
	tokensPathFmt = "/swap/v6.0/%d/tokens"
	chainsPath    = "/swap/v6.0/supported-chains"
	balancePath   = "/balance/v1.2/balance"
	gasQuotePath  = "/swap/v6.0/quote"
)

// Default HTTP client tuned for server-side usage
var (
	DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}
)

// NewClient constructs a new API client. base should be like "https://api.1inch.dev".
func NewClient(base string, opts ...Option) (*Client, error) {
	if base == "" {
		return nil, errors.New("base url is required")
	}
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		BaseURL:   u,
		HTTP:      DefaultHTTPClient,
		UserAgent: "swapproxy/1.0",
		Fee:       "1",
		Logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option functional options
type Option func(*Client)

func WithAPIKey(key string) Option         { return func(c *Client) { c.APIKey = key } }
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTP = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithLogger(l zerolog.Logger) Option   { return func(c *Client) { c.Logger = l } }
func WithTimeout(d time.Duration) Option   { return func(c *Client) { c.Timeout = d } }
func WithFee(fee string) Option            { return func(c *Client) { c.Fee = fee } }

type Client struct {
	BaseURL   *url.URL
	HTTP      *http.Client
	APIKey    string
	UserAgent string
	// Fee is sent as the fixed "fee" query parameter on every quote.
	Fee string
	// Timeout bounds each outbound call; zero leaves it to the context and HTTP client.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// APIError is a non-2xx answer from the gateway.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.StatusCode, e.Message)
}

// RequestError means no usable HTTP response was received.
type RequestError struct {
	Method string
	Path   string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// --- Fusion+ ---

// QuoteParams are the normalized quote inputs. Field names follow the gateway's query names.
type QuoteParams struct {
	SrcChain        int    `json:"srcChain"`
	DestChain       int    `json:"destChain"`
	SrcTokenAddress string `json:"srcTokenAddress"`
	DstTokenAddress string `json:"dstTokenAddress"`
	Amount          string `json:"amount"`
	WalletAddress   string `json:"walletAddress"`
}

func (p QuoteParams) values() url.Values {
	q := url.Values{}
	q.Set("srcChain", fmt.Sprint(p.SrcChain))
	q.Set("destChain", fmt.Sprint(p.DestChain))
	q.Set("srcTokenAddress", p.SrcTokenAddress)
	q.Set("dstTokenAddress", p.DstTokenAddress)
	q.Set("amount", p.Amount)
	q.Set("walletAddress", p.WalletAddress)
	return q
}

// SwapParams is the execution body: the quote inputs plus the quote reference.
type SwapParams struct {
	QuoteParams
	QuoteID   string          `json:"quoteId"`
	Permit    json.RawMessage `json:"permit,omitempty"`
	Signature json.RawMessage `json:"signature,omitempty"`
}

// GetQuote requests a cross-chain quote and returns the body verbatim.
func (c *Client) GetQuote(ctx context.Context, p QuoteParams) (json.RawMessage, error) {
	q := p.values()
	q.Set("enableEstimate", "false")
	q.Set("fee", c.Fee)
	return c.do(ctx, http.MethodGet, quotePath, q, nil)
}

// PostSwap submits a previously quoted swap and returns the body verbatim.
func (c *Client) PostSwap(ctx context.Context, p SwapParams) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, swapPath, nil, p)
}

// --- Reference data ---

type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	LogoURI  string `json:"logoURI,omitempty"`
}

type Chain struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetTokens lists the tokens of a chain in the order the gateway sent them.
func (c *Client) GetTokens(ctx context.Context, chainID int) ([]Token, error) {
	b, err := c.do(ctx, http.MethodGet, fmt.Sprintf(tokensPathFmt, chainID), nil, nil)
	if err != nil {
		return nil, err
	}
	tokens, err := decodeTokenMap(b)
	if err != nil {
		return nil, &RequestError{Method: http.MethodGet, Path: fmt.Sprintf(tokensPathFmt, chainID), Err: fmt.Errorf("decode tokens: %w", err)}
	}
	return tokens, nil
}

// GetSupportedChains lists the chains the gateway routes on.
func (c *Client) GetSupportedChains(ctx context.Context) ([]Chain, error) {
	b, err := c.do(ctx, http.MethodGet, chainsPath, nil, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Chains []Chain `json:"chains"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, &RequestError{Method: http.MethodGet, Path: chainsPath, Err: fmt.Errorf("decode chains: %w", err)}
	}
	if out.Chains == nil {
		out.Chains = []Chain{}
	}
	return out.Chains, nil
}

// --- Balances & gas ---

type BalanceParams struct {
	ChainID       int
	TokenAddress  string
	WalletAddress string
}

// GetBalance returns the raw balance payload for a wallet/token pair.
func (c *Client) GetBalance(ctx context.Context, p BalanceParams) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("tokenAddress", p.TokenAddress)
	q.Set("walletAddress", p.WalletAddress)
	q.Set("chainId", fmt.Sprint(p.ChainID))
	return c.do(ctx, http.MethodGet, balancePath, q, nil)
}

type GasParams struct {
	ChainID          int
	FromTokenAddress string
	ToTokenAddress   string
	Amount           string
}

type GasEstimate struct {
	Gas      string `json:"gas"`
	GasPrice string `json:"gasPrice"`
}

// GetGasEstimate asks the classic swap quote endpoint for gas figures. Missing values read "0".
func (c *Client) GetGasEstimate(ctx context.Context, p GasParams) (*GasEstimate, error) {
	q := url.Values{}
	q.Set("fromTokenAddress", p.FromTokenAddress)
	q.Set("toTokenAddress", p.ToTokenAddress)
	q.Set("amount", p.Amount)
	q.Set("chainId", fmt.Sprint(p.ChainID))

	b, err := c.do(ctx, http.MethodGet, gasQuotePath, q, nil)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, &RequestError{Method: http.MethodGet, Path: gasQuotePath, Err: fmt.Errorf("decode gas estimate: %w", err)}
	}
	return &GasEstimate{
		Gas:      stringOrZero(payload["gas"]),
		GasPrice: stringOrZero(payload["gasPrice"]),
	}, nil
}

// --- Core HTTP execution with logging ---
func (c *Client) do(
	ctx context.Context,
	method, p string,
	q url.Values,
	body any,
) (json.RawMessage, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	u := *c.BaseURL
	u.Path = path.Join(u.Path, p)
	u.RawQuery = q.Encode()

	// --- Build request body ---
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	// --- Execute request ---
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Error().
			Str("method", method).
			Str("path", u.Path).
			Str("duration", time.Since(start).String()).
			Err(err).
			Msg("http request failed")
		return nil, &RequestError{Method: method, Path: u.Path, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: u.Path, Err: fmt.Errorf("read body: %w", err)}
	}

	// --- Logging response ---
	ev := c.Logger.Info().
		Str("method", method).
		Str("path", u.Path).
		Int("status", resp.StatusCode).
		Str("duration", time.Since(start).String())
	if json.Valid(b) {
		ev = ev.RawJSON("response", truncateJSON(b, 2048))
	} else {
		ev = ev.Str("response", truncateString(string(b), 512))
	}
	ev.Msg("http response")

	// --- Status check ---
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    errorMessage(resp, b),
			Body:       b,
		}
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(b) {
		return nil, &RequestError{Method: method, Path: u.Path, Err: errors.New("response is not valid JSON")}
	}
	return json.RawMessage(b), nil
}

// errorMessage prefers the gateway's own message and falls back to the status text.
// An unparseable body is treated as an empty object.
func errorMessage(resp *http.Response, body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		payload = map[string]any{}
	}
	for _, key := range []string{"message", "description", "error"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode)))
}

// --- Helpers ---
func stringOrZero(v any) string {
	switch t := v.(type) {
	case nil:
		return "0"
	case string:
		if t == "" {
			return "0"
		}
		return t
	default:
		return fmt.Sprint(t)
	}
}

func truncateJSON(b []byte, max int) []byte {
	if len(b) > max {
		// a cut document is no longer JSON
		return []byte(fmt.Sprintf("%q", truncateString(string(b), max)))
	}
	return b
}

func truncateString(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
