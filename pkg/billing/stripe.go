package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/pkg/catalog"
	"github.com/tracklane/tracklane/pkg/metrics"
	"github.com/tracklane/tracklane/pkg/models"
)

// EmailSender abstracts email sending for purchase receipts.
type EmailSender interface {
	SendLicenseReceiptEmail(toEmail, toName, trackTitle, licenseType string, amount float64) error
}

// Alerter posts ops notifications for notable sales.
type Alerter interface {
	NotifyExclusiveSale(ctx context.Context, trackTitle, producerName string, amount float64) error
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// Service handles Stripe license checkout operations
type Service struct {
	db      *ent.Client
	catalog *catalog.Service
	config  *StripeConfig
	email   EmailSender
	alerts  Alerter
	metrics *metrics.Metrics
}

// NewService creates a new billing service
func NewService(db *ent.Client, catalogService *catalog.Service, config *StripeConfig) *Service {
	stripe.Key = config.SecretKey

	return &Service{
		db:      db,
		catalog: catalogService,
		config:  config,
	}
}

// SetEmailSender sets the email sender for purchase receipts.
func (s *Service) SetEmailSender(e EmailSender) {
	s.email = e
}

// SetAlerter sets the Slack channel for exclusive sale notifications.
func (s *Service) SetAlerter(a Alerter) {
	s.alerts = a
}

// SetMetrics sets the metrics collector for sale counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// CreateCheckoutSession creates a Stripe checkout session for a track
// license and records a pending sale keyed by the session ID.
func (s *Service) CreateCheckoutSession(ctx context.Context, buyerID int, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	t, err := s.db.Track.Query().
		Where(track.IDEQ(req.TrackID), track.StatusEQ(track.StatusPublished)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("track %d is not available for licensing", req.TrackID)
		}
		return nil, fmt.Errorf("loading track: %w", err)
	}

	licenseType := sale.LicenseType(req.LicenseType)
	price := t.StandardPrice
	if licenseType == sale.LicenseTypeExclusive {
		price = t.ExclusivePrice
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(t.Title),
						Description: stripe.String(fmt.Sprintf("%s license", req.LicenseType)),
					},
					UnitAmount: stripe.Int64(int64(price * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			"track_id":     fmt.Sprintf("%d", t.ID),
			"buyer_id":     fmt.Sprintf("%d", buyerID),
			"producer_id":  fmt.Sprintf("%d", t.ProducerID),
			"license_type": req.LicenseType,
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	// Record the pending sale so the webhook can complete it
	_, err = s.db.Sale.Create().
		SetTrackID(t.ID).
		SetProducerID(t.ProducerID).
		SetBuyerID(buyerID).
		SetLicenseType(licenseType).
		SetAmount(price).
		SetStatus(sale.StatusPending).
		SetStripeSessionID(sess.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record pending sale: %w", err)
	}

	return &models.CheckoutResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

// HandleWebhook processes Stripe webhook events
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "checkout.session.expired":
		return s.handleCheckoutExpired(ctx, event)
	case "charge.refunded":
		return s.handleChargeRefunded(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleCheckoutCompleted completes the pending sale for the session.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	rec, err := s.db.Sale.Query().
		Where(sale.StripeSessionIDEQ(sess.ID)).
		WithTrack(func(q *ent.TrackQuery) { q.WithProducer() }).
		WithBuyer().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("no sale recorded for session %s", sess.ID)
		}
		return fmt.Errorf("loading sale: %w", err)
	}

	// Stripe retries webhooks; a completed sale is already handled
	if rec.Status == sale.StatusCompleted {
		log.Printf("⚠️  Sale %d already completed, ignoring duplicate webhook", rec.ID)
		return nil
	}

	update := s.db.Sale.UpdateOneID(rec.ID).
		SetStatus(sale.StatusCompleted).
		SetCompletedAt(time.Now())
	if sess.PaymentIntent != nil {
		update.SetStripePaymentIntentID(sess.PaymentIntent.ID)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("completing sale %d: %w", rec.ID, err)
	}

	log.Printf("✅ Sale %d completed: track=%d buyer=%d license=%s amount=%.2f",
		rec.ID, rec.TrackID, rec.BuyerID, rec.LicenseType, rec.Amount)

	if s.metrics != nil {
		s.metrics.LicensesSold.WithLabelValues(string(rec.LicenseType)).Inc()
	}

	// Exclusive sales delist the track
	if rec.LicenseType == sale.LicenseTypeExclusive {
		if err := s.catalog.MarkExclusivelySold(ctx, rec.TrackID); err != nil {
			log.Printf("⚠️  Failed to delist exclusively sold track %d: %v", rec.TrackID, err)
		}
		if s.alerts != nil && rec.Edges.Track != nil {
			producerName := ""
			if p := rec.Edges.Track.Edges.Producer; p != nil {
				producerName = p.ArtistName
				if producerName == "" {
					producerName = p.Name
				}
			}
			if err := s.alerts.NotifyExclusiveSale(ctx, rec.Edges.Track.Title, producerName, rec.Amount); err != nil {
				log.Printf("⚠️  Slack notification failed: %v", err)
			}
		}
	}

	if s.email != nil && rec.Edges.Buyer != nil && rec.Edges.Track != nil {
		buyer, t := rec.Edges.Buyer, rec.Edges.Track
		go s.email.SendLicenseReceiptEmail(buyer.Email, buyer.Name, t.Title, string(rec.LicenseType), rec.Amount)
	}

	return nil
}

// handleCheckoutExpired drops the pending sale so the track stays purchasable.
func (s *Service) handleCheckoutExpired(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	n, err := s.db.Sale.Delete().
		Where(sale.StripeSessionIDEQ(sess.ID), sale.StatusEQ(sale.StatusPending)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting expired sale: %w", err)
	}
	if n > 0 {
		log.Printf("🗑️  Removed pending sale for expired session %s", sess.ID)
	}
	return nil
}

// handleChargeRefunded marks the matching sale refunded so it no longer
// counts toward producer earnings.
func (s *Service) handleChargeRefunded(ctx context.Context, event stripe.Event) error {
	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return fmt.Errorf("failed to unmarshal charge: %w", err)
	}
	if charge.PaymentIntent == nil {
		return nil
	}

	n, err := s.db.Sale.Update().
		Where(
			sale.StripePaymentIntentIDEQ(charge.PaymentIntent.ID),
			sale.StatusEQ(sale.StatusCompleted),
		).
		SetStatus(sale.StatusRefunded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("marking sale refunded: %w", err)
	}
	if n > 0 {
		log.Printf("✅ Marked sale refunded for payment intent %s", charge.PaymentIntent.ID)
	}
	return nil
}
