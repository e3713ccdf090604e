package payout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/payoutrun"
	"github.com/tracklane/tracklane/ent/predicate"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/metrics"
	"github.com/tracklane/tracklane/pkg/models"
	"github.com/tracklane/tracklane/pkg/payments"
)

// DefaultMaxRetries bounds automatic retry sweeps when the caller does not
// supply a limit
const DefaultMaxRetries = 3

// ErrInvalidMonth is returned when a month key fails the YYYY-MM format check
var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// ErrRunInProgress is returned when another generate/disburse run already
// holds the marker for the month
var ErrRunInProgress = errors.New("a payout run for this month is already in progress")

// Notifier abstracts the payout-paid email side channel
type Notifier interface {
	SendPayoutPaidEmail(toEmail, toName, month string, amount float64, transactionID string) error
}

// Service implements the monthly payout pipeline: generation, disbursement
// and retry. Each entry point is stateless; per-record failures are isolated
// and recorded in the result list instead of aborting the batch.
type Service struct {
	db       *ent.Client
	transfer payments.TransferClient
	notifier Notifier
	metrics  *metrics.Metrics
}

// NewService creates a payout service
func NewService(db *ent.Client, transfer payments.TransferClient) *Service {
	return &Service{db: db, transfer: transfer}
}

// SetNotifier sets the email side channel for paid notifications
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// SetMetrics sets the business metrics sink
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// Generate computes each active producer's earnings for the month and inserts
// one PayoutRecord per producer. Re-running for a month that already has
// records is a structured no-op unless forceRegenerate is set, in which case
// the month's records are deleted and rebuilt.
func (s *Service) Generate(ctx context.Context, month string, forceRegenerate bool, triggeredBy int) (*models.GeneratePayoutsResponse, error) {
	if !ValidMonth(month) {
		return nil, ErrInvalidMonth
	}

	run, err := s.acquireRun(ctx, month, payoutrun.KindGenerate, triggeredBy)
	if err != nil {
		return nil, err
	}
	defer s.releaseRun(run)

	exists, err := s.db.PayoutRecord.Query().
		Where(payoutrecord.MonthEQ(month)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing payouts: %w", err)
	}

	if exists && !forceRegenerate {
		return &models.GeneratePayoutsResponse{
			Success: false,
			Month:   month,
			Message: fmt.Sprintf("payouts already exist for %s; pass forceRegenerate to rebuild", month),
			Results: []models.PayoutResult{},
		}, nil
	}

	if exists {
		deleted, err := s.db.PayoutRecord.Delete().
			Where(payoutrecord.MonthEQ(month)).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to delete existing payouts: %w", err)
		}
		log.Printf("🔄 Regenerating payouts for %s (%d existing records deleted)", month, deleted)
	}

	producers, err := s.db.User.Query().
		Where(
			user.RoleEQ(user.RoleProducer),
			user.ActiveEQ(true),
			user.DeletedAtIsNil(),
		).
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load producers: %w", err)
	}

	rates, err := LoadRates(ctx, s.db)
	if err != nil {
		return nil, err
	}
	calc := NewCalculator(s.db, rates)

	resp := &models.GeneratePayoutsResponse{
		Success: true,
		Month:   month,
		Summary: models.GenerateSummary{TotalProducers: len(producers)},
		Results: make([]models.PayoutResult, 0, len(producers)),
	}

	for _, p := range producers {
		result := models.PayoutResult{
			ProducerID:    p.ID,
			ProducerName:  p.Name,
			WalletAddress: p.WalletAddress,
		}

		breakdown, err := calc.ForProducer(ctx, p.ID, month)
		if err != nil {
			result.Status = "error"
			result.Error = err.Error()
			resp.Results = append(resp.Results, result)
			log.Printf("❌ Earnings calculation failed for producer %d: %v", p.ID, err)
			continue
		}

		result.Amount = breakdown.Total

		// Pending whenever there is something to pay OR somewhere to pay it;
		// a producer with zero earnings and no wallet is skipped outright.
		status := payoutrecord.StatusSkipped
		if breakdown.Total > 0 || ValidWallet(p.WalletAddress) {
			status = payoutrecord.StatusPending
		}

		rec, err := s.db.PayoutRecord.Create().
			SetProducerID(p.ID).
			SetMonth(month).
			SetAmount(breakdown.Total).
			SetStatus(status).
			SetWalletAddress(p.WalletAddress).
			Save(ctx)
		if err != nil {
			result.Status = "error"
			result.Error = err.Error()
			resp.Results = append(resp.Results, result)
			log.Printf("❌ Failed to insert payout record for producer %d: %v", p.ID, err)
			continue
		}

		result.PayoutID = rec.ID
		result.Status = string(status)
		resp.Results = append(resp.Results, result)

		if status == payoutrecord.StatusPending {
			resp.Summary.PayoutsGenerated++
		} else {
			resp.Summary.Skipped++
		}
		if s.metrics != nil {
			s.metrics.PayoutsGenerated.WithLabelValues(string(status)).Inc()
		}
	}

	log.Printf("✅ Payout generation for %s complete: %d producers, %d pending, %d skipped",
		month, resp.Summary.TotalProducers, resp.Summary.PayoutsGenerated, resp.Summary.Skipped)

	return resp, nil
}

// Disburse transfers funds for the month's pending payout records. With
// dryRun set it simulates outcomes without calling the transfer API or
// mutating any record.
func (s *Service) Disburse(ctx context.Context, month string, dryRun bool, triggeredBy int) (*models.DisbursePayoutsResponse, error) {
	if !ValidMonth(month) {
		return nil, ErrInvalidMonth
	}

	records, err := s.db.PayoutRecord.Query().
		Where(
			payoutrecord.MonthEQ(month),
			payoutrecord.StatusEQ(payoutrecord.StatusPending),
		).
		Order(ent.Asc(payoutrecord.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending payouts: %w", err)
	}

	eligible := 0
	for _, rec := range records {
		if rec.Amount > 0 {
			eligible++
		}
	}
	if eligible == 0 {
		return &models.DisbursePayoutsResponse{
			Success: true,
			DryRun:  dryRun,
			Month:   month,
			Message: "no eligible payouts",
			Results: []models.PayoutResult{},
		}, nil
	}

	// Dry runs mutate nothing, so concurrent ones are harmless and
	// do not take the run marker.
	if !dryRun {
		run, err := s.acquireRun(ctx, month, payoutrun.KindDisburse, triggeredBy)
		if err != nil {
			return nil, err
		}
		defer s.releaseRun(run)
	}

	resp := &models.DisbursePayoutsResponse{
		Success: true,
		DryRun:  dryRun,
		Month:   month,
		Summary: models.DisburseSummary{Total: len(records)},
		Results: make([]models.PayoutResult, 0, len(records)),
	}

	for _, rec := range records {
		result := s.disburseRecord(ctx, rec, dryRun)
		resp.Results = append(resp.Results, result)

		switch result.Status {
		case "paid", "simulated":
			resp.Summary.Successful++
		case "skipped":
			resp.Summary.Skipped++
		default:
			resp.Summary.Failed++
		}
	}

	log.Printf("✅ Payout disbursement for %s complete (dry_run=%t): %d total, %d successful, %d failed, %d skipped",
		month, dryRun, resp.Summary.Total, resp.Summary.Successful, resp.Summary.Failed, resp.Summary.Skipped)

	return resp, nil
}

// Retry re-attempts disbursement for pending records whose retry count is
// still under maxRetries. The sweep covers all months unless month narrows it.
func (s *Service) Retry(ctx context.Context, maxRetries int, month string) (*models.RetryPayoutsResponse, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if month != "" && !ValidMonth(month) {
		return nil, ErrInvalidMonth
	}

	preds := []predicate.PayoutRecord{
		payoutrecord.StatusEQ(payoutrecord.StatusPending),
		payoutrecord.RetryCountLT(maxRetries),
	}
	if month != "" {
		preds = append(preds, payoutrecord.MonthEQ(month))
	}

	records, err := s.db.PayoutRecord.Query().
		Where(preds...).
		Order(ent.Asc(payoutrecord.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query retryable payouts: %w", err)
	}

	resp := &models.RetryPayoutsResponse{
		Success: true,
		Summary: models.DisburseSummary{Total: len(records)},
		Results: make([]models.PayoutResult, 0, len(records)),
	}

	for _, rec := range records {
		result := s.disburseRecord(ctx, rec, false)
		resp.Results = append(resp.Results, result)

		switch result.Status {
		case "paid":
			resp.Summary.Successful++
		case "skipped":
			resp.Summary.Skipped++
		default:
			resp.Summary.Failed++
		}
	}

	log.Printf("✅ Payout retry sweep complete: %d considered, %d successful, %d failed",
		resp.Summary.Total, resp.Summary.Successful, resp.Summary.Failed)

	return resp, nil
}

// disburseRecord attempts to pay out a single pending record. Shared by
// Disburse and Retry so both apply identical transfer semantics.
func (s *Service) disburseRecord(ctx context.Context, rec *ent.PayoutRecord, dryRun bool) models.PayoutResult {
	result := models.PayoutResult{
		PayoutID:   rec.ID,
		ProducerID: rec.ProducerID,
		Amount:     rec.Amount,
	}

	producer, err := s.db.User.Get(ctx, rec.ProducerID)
	if err != nil {
		result.Status = "failed"
		result.Error = fmt.Sprintf("failed to load producer: %v", err)
		s.recordFailure(ctx, rec, result.Error, dryRun)
		return result
	}
	result.ProducerName = producer.Name

	// The producer's current wallet wins over the generation-time snapshot
	// so adding a wallet after generation unblocks the payout.
	wallet := producer.WalletAddress
	if wallet == "" {
		wallet = rec.WalletAddress
	}
	result.WalletAddress = wallet

	if !ValidWallet(wallet) {
		result.Status = "skipped"
		result.Error = "no valid payout wallet address"
		if !dryRun {
			if err := s.db.PayoutRecord.UpdateOne(rec).
				SetStatus(payoutrecord.StatusSkipped).
				SetLastError(result.Error).
				Exec(ctx); err != nil {
				log.Printf("⚠️  Failed to mark payout %d skipped: %v", rec.ID, err)
			}
		}
		return result
	}

	// Zero-amount records can be pending (wallet present, no earnings);
	// there is nothing to transfer, so they are closed out as skipped.
	if rec.Amount <= 0 {
		result.Status = "skipped"
		result.Error = "zero-amount payout"
		if !dryRun {
			if err := s.db.PayoutRecord.UpdateOne(rec).
				SetStatus(payoutrecord.StatusSkipped).
				SetLastError(result.Error).
				Exec(ctx); err != nil {
				log.Printf("⚠️  Failed to mark payout %d skipped: %v", rec.ID, err)
			}
		}
		return result
	}

	if dryRun {
		result.Status = "simulated"
		return result
	}

	start := time.Now()
	transfer, err := s.transfer.CreateTransfer(ctx, payments.TransferRequest{
		Amount:             rec.Amount,
		DestinationAddress: wallet,
		Metadata: map[string]string{
			"payout_id":   strconv.Itoa(rec.ID),
			"producer_id": strconv.Itoa(rec.ProducerID),
			"month":       rec.Month,
		},
	})
	if s.metrics != nil {
		s.metrics.TransferDuration.Observe(time.Since(start).Seconds())
	}

	if err != nil {
		result.Status = "failed"
		result.Error = err.Error()
		s.recordFailure(ctx, rec, result.Error, false)
		if s.metrics != nil {
			s.metrics.PayoutsDisbursed.WithLabelValues("failed").Inc()
		}
		log.Printf("❌ Transfer failed for payout %d (producer %d): %v", rec.ID, rec.ProducerID, err)
		return result
	}

	if err := s.db.PayoutRecord.UpdateOne(rec).
		SetStatus(payoutrecord.StatusPaid).
		SetPaymentTransactionID(transfer.ID).
		SetPaidAt(time.Now()).
		SetLastError("").
		AddRetryCount(1).
		Exec(ctx); err != nil {
		// The transfer went through but the ledger update failed; surface
		// this loudly since the record still reads pending.
		result.Status = "failed"
		result.Error = fmt.Sprintf("transfer %s succeeded but status update failed: %v", transfer.ID, err)
		log.Printf("🚨 %s", result.Error)
		return result
	}

	result.Status = "paid"
	result.TransactionID = transfer.ID
	if s.metrics != nil {
		s.metrics.PayoutsDisbursed.WithLabelValues("paid").Inc()
		s.metrics.PayoutAmountPaid.Add(rec.Amount)
	}

	// Notification is fire-and-forget: the payment is already durable, a
	// failed email must not roll anything back.
	if s.notifier != nil {
		if err := s.notifier.SendPayoutPaidEmail(producer.Email, producer.Name, rec.Month, rec.Amount, transfer.ID); err != nil {
			log.Printf("⚠️  Payout notification failed for producer %d: %v", rec.ProducerID, err)
		}
	}

	return result
}

// recordFailure leaves the record pending for a future retry while bumping
// the attempt counter and error message
func (s *Service) recordFailure(ctx context.Context, rec *ent.PayoutRecord, msg string, dryRun bool) {
	if dryRun {
		return
	}
	if len(msg) > 500 {
		msg = msg[:500]
	}
	if err := s.db.PayoutRecord.UpdateOne(rec).
		AddRetryCount(1).
		SetLastError(msg).
		Exec(ctx); err != nil {
		log.Printf("⚠️  Failed to record payout failure for %d: %v", rec.ID, err)
	}
}

// acquireRun creates the month's run marker, failing fast when another run
// of the same kind is still marked running
func (s *Service) acquireRun(ctx context.Context, month string, kind payoutrun.Kind, triggeredBy int) (*ent.PayoutRun, error) {
	running, err := s.db.PayoutRun.Query().
		Where(
			payoutrun.MonthEQ(month),
			payoutrun.KindEQ(kind),
			payoutrun.StatusEQ(payoutrun.StatusRunning),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for running payout run: %w", err)
	}
	if running {
		return nil, ErrRunInProgress
	}

	run, err := s.db.PayoutRun.Create().
		SetMonth(month).
		SetKind(kind).
		SetStatus(payoutrun.StatusRunning).
		SetTriggeredBy(triggeredBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create payout run marker: %w", err)
	}
	return run, nil
}

func (s *Service) releaseRun(run *ent.PayoutRun) {
	if run == nil {
		return
	}
	// Best effort with a fresh context so release survives request cancellation
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.db.PayoutRun.UpdateOne(run).
		SetStatus(payoutrun.StatusCompleted).
		SetFinishedAt(time.Now()).
		Exec(ctx); err != nil {
		log.Printf("⚠️  Failed to release payout run %d: %v", run.ID, err)
	}
}

// ValidWallet reports whether addr looks like an EVM wallet address
// (0x-prefixed, 40 hex characters)
func ValidWallet(addr string) bool {
	if len(addr) != 42 || !strings.HasPrefix(addr, "0x") {
		return false
	}
	for _, r := range addr[2:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
