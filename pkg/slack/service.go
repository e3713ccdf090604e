package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrSlackSendFailed is returned when Slack API fails
	ErrSlackSendFailed = errors.New("failed to send Slack notification")
)

// Message represents a Slack message
type Message struct {
	Text string `json:"text"`
}

// SlackClient is an interface for sending Slack notifications
type SlackClient interface {
	SendMessage(ctx context.Context, msg Message) error
}

// WebhookClient implements SlackClient using Slack webhooks
type WebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookClient creates a new Slack webhook client
func NewWebhookClient(webhookURL string) *WebhookClient {
	return &WebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendMessage sends a message to Slack via webhook
func (c *WebhookClient) SendMessage(ctx context.Context, msg Message) error {
	if c.webhookURL == "" {
		return fmt.Errorf("slack webhook URL not configured")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrSlackSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrSlackSendFailed
	}

	return nil
}

// Service posts operational notifications for the payout pipeline and
// marketplace to a Slack channel
type Service struct {
	client SlackClient
}

// NewService creates a new Slack service
func NewService(client SlackClient) *Service {
	return &Service{
		client: client,
	}
}

// IsEnabled returns true if Slack notifications are enabled
func (s *Service) IsEnabled() bool {
	return s.client != nil
}

// NotifyPayoutsGenerated sends a notification after a generation run
func (s *Service) NotifyPayoutsGenerated(ctx context.Context, month string, producers, generated, skipped int) error {
	if !s.IsEnabled() {
		return nil // Silently skip if not enabled
	}

	text := fmt.Sprintf("📋 *Payouts Generated*\n"+
		"• Month: %s\n"+
		"• Producers: %d\n"+
		"• Generated: %d\n"+
		"• Skipped: %d",
		month, producers, generated, skipped)

	msg := Message{Text: text}
	return s.client.SendMessage(ctx, msg)
}

// NotifyDisbursementComplete sends a notification after a disbursement run.
// Failed payouts get a louder header so the channel can act on them.
func (s *Service) NotifyDisbursementComplete(ctx context.Context, month string, total, successful, failed, skipped int) error {
	if !s.IsEnabled() {
		return nil
	}

	header := "💸 *Disbursement Complete*"
	if failed > 0 {
		header = "🚨 *Disbursement Completed With Failures*"
	}

	text := fmt.Sprintf("%s\n"+
		"• Month: %s\n"+
		"• Total: %d\n"+
		"• Successful: %d\n"+
		"• Failed: %d\n"+
		"• Skipped: %d",
		header, month, total, successful, failed, skipped)

	msg := Message{Text: text}
	return s.client.SendMessage(ctx, msg)
}

// NotifyRetrySweepComplete sends a notification after a retry sweep
func (s *Service) NotifyRetrySweepComplete(ctx context.Context, total, successful, failed, skipped int) error {
	if !s.IsEnabled() {
		return nil
	}

	text := fmt.Sprintf("🔁 *Retry Sweep Complete*\n"+
		"• Retried: %d\n"+
		"• Successful: %d\n"+
		"• Still failing: %d\n"+
		"• Skipped: %d",
		total, successful, failed, skipped)

	msg := Message{Text: text}
	return s.client.SendMessage(ctx, msg)
}

// NotifyExclusiveSale sends a notification when an exclusive license sells
func (s *Service) NotifyExclusiveSale(ctx context.Context, trackTitle, producerName string, amount float64) error {
	if !s.IsEnabled() {
		return nil
	}

	text := fmt.Sprintf("💎 *Exclusive License Sold*\n"+
		"• Track: %s\n"+
		"• Producer: %s\n"+
		"• Amount: $%.2f",
		trackTitle, producerName, amount)

	msg := Message{Text: text}
	return s.client.SendMessage(ctx, msg)
}
