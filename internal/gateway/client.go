package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/payment-wallet/internal"
	gatewaytypes "github.com/frahmantamala/payment-wallet/internal/core/datamodel/gateway"
)

// Client talks to the Razorpay REST API. Orders and refunds are the only
// endpoints this service uses; everything else the gateway does (capture,
// settlement) happens on the gateway side.
type Client struct {
	keyID     string
	keySecret string
	apiURL    string
	timeout   time.Duration
	client    *http.Client
	logger    *slog.Logger
}

type Config struct {
	KeyID     string
	KeySecret string
	APIURL    string
	Timeout   time.Duration
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		keyID:     config.KeyID,
		keySecret: config.KeySecret,
		apiURL:    config.APIURL,
		timeout:   timeout,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// CreateOrder reserves an order with the gateway. Amount is already in
// minor units; auto-capture is always enabled.
func (c *Client) CreateOrder(req *gatewaytypes.OrderRequest) (*gatewaytypes.Order, error) {
	if err := req.Validate(); err != nil {
		c.logger.Error("order request validation failed", "error", err)
		return nil, fmt.Errorf("validation error: %w", err)
	}

	req.PaymentCapture = 1

	var order gatewaytypes.Order
	if err := c.post("/orders", req, &order); err != nil {
		c.logger.Error("order creation failed",
			"error", err,
			"receipt", req.Receipt,
			"amount", req.Amount)
		return nil, err
	}

	c.logger.Info("gateway order created",
		"order_id", order.ID,
		"amount", order.Amount,
		"currency", order.Currency,
		"receipt", order.Receipt)

	return &order, nil
}

// RefundPayment issues a full refund for a captured payment.
func (c *Client) RefundPayment(paymentID string) (*gatewaytypes.Refund, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("payment id is required")
	}

	var refund gatewaytypes.Refund
	path := fmt.Sprintf("/payments/%s/refund", paymentID)
	if err := c.post(path, struct{}{}, &refund); err != nil {
		c.logger.Error("refund failed", "error", err, "payment_id", paymentID)
		return nil, err
	}

	c.logger.Info("gateway refund created",
		"refund_id", refund.ID,
		"payment_id", refund.PaymentID,
		"amount", refund.Amount,
		"status", refund.Status)

	return &refund, nil
}

func (c *Client) post(path string, payload interface{}, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	ctx, cancel := internal.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.apiURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var apiErr gatewaytypes.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrorBody.Description != "" {
		return fmt.Errorf("gateway error %s: %s", apiErr.ErrorBody.Code, apiErr.ErrorBody.Description)
	}

	return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(body))
}
