// Package gateway holds the outbound payment provider client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"

	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/usecase/commands"
)

// MercadoPagoClient talks to the Mercado Pago REST API. Checkout sessions
// are created as preferences; payment objects are always re-fetched from
// the API before being trusted.
type MercadoPagoClient struct {
	accessToken string
	notifyURL   string
	baseURL     string
	httpClient  *http.Client
}

func NewMercadoPagoClient(cfg config.GatewayConfig, notifyURL string) *MercadoPagoClient {
	return &MercadoPagoClient{
		accessToken: cfg.AccessToken,
		notifyURL:   notifyURL,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// WithBaseURL overrides the API base URL (for testing).
func (c *MercadoPagoClient) WithBaseURL(baseURL string) *MercadoPagoClient {
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type preferencePayer struct {
	Email string `json:"email"`
}

type preferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceRequest struct {
	ExternalReference string             `json:"external_reference"`
	Items             []preferenceItem   `json:"items"`
	Payer             preferencePayer    `json:"payer"`
	BackURLs          preferenceBackURLs `json:"back_urls"`
	AutoReturn        string             `json:"auto_return"`
	NotificationURL   string             `json:"notification_url,omitempty"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

func (c *MercadoPagoClient) CreateCheckoutSession(ctx context.Context, params commands.CheckoutSessionParams) (*commands.CheckoutSession, error) {
	body := preferenceRequest{
		ExternalReference: params.ExternalReference,
		Items: []preferenceItem{{
			Title:      params.Title,
			Quantity:   1,
			UnitPrice:  float64(params.AmountCents) / 100,
			CurrencyID: params.Currency,
		}},
		Payer: preferencePayer{Email: params.PayerEmail},
		BackURLs: preferenceBackURLs{
			Success: params.ReturnURL,
			Failure: params.ReturnURL,
			Pending: params.ReturnURL,
		},
		AutoReturn:      "approved",
		NotificationURL: c.notifyURL,
	}

	var resp preferenceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/checkout/preferences", body, &resp); err != nil {
		return nil, err
	}
	return &commands.CheckoutSession{
		ProviderRef: resp.ID,
		RedirectURL: resp.InitPoint,
	}, nil
}

type paymentResponse struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
	ExternalReference string  `json:"external_reference"`
}

func (c *MercadoPagoClient) FetchPayment(ctx context.Context, providerRef string) (*commands.GatewayPayment, error) {
	var resp paymentResponse
	raw, err := c.doJSONRaw(ctx, http.MethodGet, "/v1/payments/"+url.PathEscape(providerRef), nil, &resp)
	if err != nil {
		return nil, err
	}
	return toGatewayPayment(resp, raw), nil
}

type paymentSearchResponse struct {
	Results []json.RawMessage `json:"results"`
}

// FindByReference returns the most recent payment attempt for our external
// reference, or nil when the provider has no record of one.
func (c *MercadoPagoClient) FindByReference(ctx context.Context, externalRef string) (*commands.GatewayPayment, error) {
	path := "/v1/payments/search?sort=date_created&criteria=desc&external_reference=" + url.QueryEscape(externalRef)

	var resp paymentSearchResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	var first paymentResponse
	if err := json.Unmarshal(resp.Results[0], &first); err != nil {
		return nil, fmt.Errorf("gateway: decode payment search result: %w", err)
	}
	return toGatewayPayment(first, resp.Results[0]), nil
}

func toGatewayPayment(resp paymentResponse, raw []byte) *commands.GatewayPayment {
	return &commands.GatewayPayment{
		ProviderRef:       fmt.Sprintf("%d", resp.ID),
		Status:            commands.GatewayStatus(resp.Status),
		AmountCents:       int64(math.Round(resp.TransactionAmount * 100)),
		Currency:          resp.CurrencyID,
		ExternalReference: resp.ExternalReference,
		Raw:               raw,
	}
}

func (c *MercadoPagoClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	_, err := c.doJSONRaw(ctx, method, path, body, out)
	return err
}

func (c *MercadoPagoClient) doJSONRaw(ctx context.Context, method, path string, body, out any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("gateway: encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("gateway: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway: %s %s: status %d: %s", method, path, resp.StatusCode, truncate(raw, 256))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("gateway: decode response: %w", err)
		}
	}
	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

var _ commands.PaymentGateway = (*MercadoPagoClient)(nil)
