package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSlackClient simulates Slack webhook API
type MockSlackClient struct {
	shouldFail bool
	messages   []Message
}

func (m *MockSlackClient) SendMessage(ctx context.Context, msg Message) error {
	if m.shouldFail {
		return ErrSlackSendFailed
	}
	m.messages = append(m.messages, msg)
	return nil
}

func TestPayoutsGeneratedNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send generation summary", func(t *testing.T) {
		err := service.NotifyPayoutsGenerated(context.Background(), "2025-07", 42, 38, 4)

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "Payouts Generated")
		assert.Contains(t, msg.Text, "2025-07")
		assert.Contains(t, msg.Text, "Producers: 42")
		assert.Contains(t, msg.Text, "Generated: 38")
		assert.Contains(t, msg.Text, "Skipped: 4")
	})

	t.Run("Failure - Slack API error", func(t *testing.T) {
		failingClient := &MockSlackClient{shouldFail: true}
		failingService := NewService(failingClient)

		err := failingService.NotifyPayoutsGenerated(context.Background(), "2025-07", 1, 1, 0)

		require.Error(t, err)
		assert.Equal(t, ErrSlackSendFailed, err)
	})
}

func TestDisbursementNotification(t *testing.T) {
	t.Run("Success - All payouts succeeded", func(t *testing.T) {
		client := &MockSlackClient{}
		service := NewService(client)

		err := service.NotifyDisbursementComplete(context.Background(), "2025-07", 38, 38, 0, 0)

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "Disbursement Complete")
		assert.NotContains(t, msg.Text, "Failures")
		assert.Contains(t, msg.Text, "Successful: 38")
	})

	t.Run("Success - Failures get louder header", func(t *testing.T) {
		client := &MockSlackClient{}
		service := NewService(client)

		err := service.NotifyDisbursementComplete(context.Background(), "2025-07", 38, 30, 5, 3)

		require.NoError(t, err)
		require.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "Completed With Failures")
		assert.Contains(t, msg.Text, "Failed: 5")
		assert.Contains(t, msg.Text, "Skipped: 3")
	})
}

func TestRetrySweepNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	err := service.NotifyRetrySweepComplete(context.Background(), 5, 4, 1, 0)

	require.NoError(t, err)
	require.Len(t, client.messages, 1)

	msg := client.messages[0]
	assert.Contains(t, msg.Text, "Retry Sweep Complete")
	assert.Contains(t, msg.Text, "Retried: 5")
	assert.Contains(t, msg.Text, "Still failing: 1")
}

func TestExclusiveSaleNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	err := service.NotifyExclusiveSale(context.Background(), "Midnight Static", "Nova Keys", 299.99)

	require.NoError(t, err)
	require.Len(t, client.messages, 1)

	msg := client.messages[0]
	assert.Contains(t, msg.Text, "Exclusive License Sold")
	assert.Contains(t, msg.Text, "Midnight Static")
	assert.Contains(t, msg.Text, "Nova Keys")
	assert.Contains(t, msg.Text, "299.99")
}

func TestDisabledService(t *testing.T) {
	service := NewService(nil)

	assert.False(t, service.IsEnabled())

	// All notifications are silent no-ops when disabled
	require.NoError(t, service.NotifyPayoutsGenerated(context.Background(), "2025-07", 1, 1, 0))
	require.NoError(t, service.NotifyDisbursementComplete(context.Background(), "2025-07", 1, 1, 0, 0))
	require.NoError(t, service.NotifyRetrySweepComplete(context.Background(), 0, 0, 0, 0))
	require.NoError(t, service.NotifyExclusiveSale(context.Background(), "Track", "Producer", 1.0))
}
