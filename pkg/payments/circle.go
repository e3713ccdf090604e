package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TransferRequest describes an outgoing USDC transfer to a producer wallet
type TransferRequest struct {
	Amount             float64
	DestinationAddress string
	Metadata           map[string]string
}

// Transfer is the result of a transfer API call
type Transfer struct {
	ID     string
	Status string
}

// TransferClient abstracts the external payment API so the payout service
// can be exercised with a fake in tests.
type TransferClient interface {
	CreateTransfer(ctx context.Context, req TransferRequest) (*Transfer, error)
}

// CircleClient implements TransferClient against Circle's transfers API
type CircleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewCircleClient creates a Circle transfer client.
// baseURL selects sandbox vs production (https://api-sandbox.circle.com / https://api.circle.com).
func NewCircleClient(apiKey, baseURL string) *CircleClient {
	return &CircleClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type circleTransferRequest struct {
	IdempotencyKey string            `json:"idempotencyKey"`
	Source         circleSource      `json:"source"`
	Destination    circleDestination `json:"destination"`
	Amount         circleAmount      `json:"amount"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type circleSource struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

type circleDestination struct {
	Type    string `json:"type"`
	Address string `json:"address"`
	Chain   string `json:"chain"`
}

type circleAmount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type circleTransferResponse struct {
	Data struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
	Message string `json:"message"`
}

// CreateTransfer sends a USDC transfer to a blockchain address.
// A fresh idempotency key is generated per call; retries of a failed payout
// are deliberate new transfer attempts, not replays.
func (c *CircleClient) CreateTransfer(ctx context.Context, req TransferRequest) (*Transfer, error) {
	body := circleTransferRequest{
		IdempotencyKey: uuid.NewString(),
		Source:         circleSource{Type: "wallet"},
		Destination: circleDestination{
			Type:    "blockchain",
			Address: req.DestinationAddress,
			Chain:   "ETH",
		},
		Amount: circleAmount{
			Amount:   fmt.Sprintf("%.2f", req.Amount),
			Currency: "USD",
		},
		Metadata: req.Metadata,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build transfer request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transfer request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read transfer response: %w", err)
	}

	var parsed circleTransferResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode transfer response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Message
		if msg == "" {
			msg = string(respBody)
		}
		return nil, fmt.Errorf("transfer rejected (status %d): %s", resp.StatusCode, msg)
	}

	if parsed.Data.ID == "" {
		return nil, fmt.Errorf("transfer response missing transaction id")
	}

	return &Transfer{
		ID:     parsed.Data.ID,
		Status: parsed.Data.Status,
	}, nil
}
