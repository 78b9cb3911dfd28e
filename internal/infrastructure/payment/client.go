// Package payment is the HTTP client for the external payment provider
// (checkout sessions, transfers, payouts). Calls carry a request timeout and
// transient failures are retried a bounded number of times.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/gateway"
)

const (
	requestTimeout = 10 * time.Second
	maxRetries     = 2
	retryBackoff   = 500 * time.Millisecond
)

type Client struct {
	baseURL   string
	secretKey string
	hc        *http.Client
}

var _ gateway.PaymentGateway = (*Client)(nil)

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		hc:        &http.Client{Timeout: requestTimeout},
	}
}

type checkoutSessionReq struct {
	Customer          string `json:"customer"`
	AmountTotal       int64  `json:"amount_total"`
	ClientReferenceID string `json:"client_reference_id"`
}

type checkoutSessionResp struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Status      string `json:"status"`
	AmountTotal int64  `json:"amount_total"`
}

func (c *Client) CreateCheckout(ctx context.Context, customerID string, amount float64, correlationID string) (gateway.Checkout, error) {
	body := checkoutSessionReq{
		Customer:          customerID,
		AmountTotal:       toCents(amount),
		ClientReferenceID: correlationID,
	}
	var resp checkoutSessionResp
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", body, &resp); err != nil {
		return gateway.Checkout{}, err
	}
	return gateway.Checkout{ID: resp.ID, URL: resp.URL}, nil
}

func (c *Client) RetrieveStatus(ctx context.Context, paymentID string) (gateway.CheckoutStatus, error) {
	var resp checkoutSessionResp
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+paymentID, nil, &resp); err != nil {
		return gateway.CheckoutStatus{}, err
	}
	return gateway.CheckoutStatus{Status: resp.Status, AmountTotal: resp.AmountTotal}, nil
}

type moveFundsReq struct {
	AmountTotal int64  `json:"amount_total"`
	Destination string `json:"destination"`
}

func (c *Client) Transfer(ctx context.Context, amount float64, destinationAccount string) error {
	return c.do(ctx, http.MethodPost, "/v1/transfers",
		moveFundsReq{AmountTotal: toCents(amount), Destination: destinationAccount}, nil)
}

func (c *Client) Payout(ctx context.Context, amount float64, destinationAccount string) error {
	return c.do(ctx, http.MethodPost, "/v1/payouts",
		moveFundsReq{AmountTotal: toCents(amount), Destination: destinationAccount}, nil)
}

// do sends one API request, retrying transport errors and 5xx responses.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: %v", gateway.ErrGateway, err)
		}
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("%w: %v", gateway.ErrGateway, err)
		}
		req.Header.Set("Authorization", "Bearer "+c.secretKey)
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.hc.Do(req)
		if err == nil {
			retriable, err2 := c.handle(resp, out)
			if err2 == nil {
				return nil
			}
			lastErr = err2
			if !retriable {
				return lastErr
			}
		} else {
			lastErr = fmt.Errorf("%w: %v", gateway.ErrGateway, err)
		}

		if attempt >= maxRetries || ctx.Err() != nil {
			return lastErr
		}
		select {
		case <-time.After(retryBackoff << attempt):
		case <-ctx.Done():
			return lastErr
		}
	}
}

func (c *Client) handle(resp *http.Response, out any) (retriable bool, err error) {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode >= 500 {
		return true, fmt.Errorf("%w: provider returned %d", gateway.ErrGateway, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return false, fmt.Errorf("%w: provider returned %d: %s", gateway.ErrGateway, resp.StatusCode, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return false, fmt.Errorf("%w: bad response body: %v", gateway.ErrGateway, err)
		}
	}
	return false, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
