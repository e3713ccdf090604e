package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransfer_Success(t *testing.T) {
	var captured circleTransferRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transfers", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"transfer-abc123","status":"pending"}}`))
	}))
	defer server.Close()

	client := NewCircleClient("test-key", server.URL)

	transfer, err := client.CreateTransfer(context.Background(), TransferRequest{
		Amount:             150.50,
		DestinationAddress: "0xabc123",
		Metadata: map[string]string{
			"payout_id": "7",
			"month":     "2025-03",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "transfer-abc123", transfer.ID)
	assert.Equal(t, "pending", transfer.Status)

	assert.NotEmpty(t, captured.IdempotencyKey)
	assert.Equal(t, "0xabc123", captured.Destination.Address)
	assert.Equal(t, "150.50", captured.Amount.Amount)
	assert.Equal(t, "USD", captured.Amount.Currency)
	assert.Equal(t, "2025-03", captured.Metadata["month"])
}

func TestCreateTransfer_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"insufficient funds"}`))
	}))
	defer server.Close()

	client := NewCircleClient("test-key", server.URL)

	_, err := client.CreateTransfer(context.Background(), TransferRequest{
		Amount:             5000,
		DestinationAddress: "0xabc123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestCreateTransfer_MissingTransactionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewCircleClient("test-key", server.URL)

	_, err := client.CreateTransfer(context.Background(), TransferRequest{
		Amount:             10,
		DestinationAddress: "0xabc123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing transaction id")
}

func TestCreateTransfer_FreshIdempotencyKeyPerCall(t *testing.T) {
	var keys []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req circleTransferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		keys = append(keys, req.IdempotencyKey)
		w.Write([]byte(`{"data":{"id":"t1","status":"pending"}}`))
	}))
	defer server.Close()

	client := NewCircleClient("test-key", server.URL)
	req := TransferRequest{Amount: 10, DestinationAddress: "0xabc123"}

	_, err := client.CreateTransfer(context.Background(), req)
	require.NoError(t, err)
	_, err = client.CreateTransfer(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}
