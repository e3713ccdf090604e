package payout

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/enttest"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/payoutrun"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/payments"
)

const testWallet = "0x52908400098527886E0F7030069857D2E4169EE7"

// buyerSeq keeps generated buyer emails unique across helpers
var buyerSeq atomic.Int64

// fakeTransferClient records transfer calls and fails on demand
type fakeTransferClient struct {
	calls   []payments.TransferRequest
	failFor map[string]string // wallet address -> error message
	nextID  int
}

func newFakeTransferClient() *fakeTransferClient {
	return &fakeTransferClient{failFor: map[string]string{}}
}

func (f *fakeTransferClient) CreateTransfer(ctx context.Context, req payments.TransferRequest) (*payments.Transfer, error) {
	f.calls = append(f.calls, req)
	if msg, ok := f.failFor[req.DestinationAddress]; ok {
		return nil, fmt.Errorf("%s", msg)
	}
	f.nextID++
	return &payments.Transfer{
		ID:     fmt.Sprintf("transfer-%d", f.nextID),
		Status: "pending",
	}, nil
}

// fakeNotifier records payout notifications
type fakeNotifier struct {
	sent []string
	fail bool
}

func (f *fakeNotifier) SendPayoutPaidEmail(toEmail, toName, month string, amount float64, transactionID string) error {
	f.sent = append(f.sent, toEmail)
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	return nil
}

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createProducer(t *testing.T, client *ent.Client, email, wallet string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("hashed").
		SetName("Producer " + email).
		SetRole(user.RoleProducer).
		SetWalletAddress(wallet).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createBuyer(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("hashed").
		SetName("Buyer " + email).
		SetRole(user.RoleClient).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createCompletedSale(t *testing.T, client *ent.Client, producer *ent.User, amount float64, licenseType sale.LicenseType, completedAt time.Time) {
	t.Helper()
	ctx := context.Background()

	buyer := createBuyer(t, client, fmt.Sprintf("buyer-%d-%d@test.com", producer.ID, buyerSeq.Add(1)))
	track, err := client.Track.Create().
		SetProducerID(producer.ID).
		SetTitle("Test Track").
		SetStatus("published").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Sale.Create().
		SetTrackID(track.ID).
		SetProducerID(producer.ID).
		SetBuyerID(buyer.ID).
		SetLicenseType(licenseType).
		SetAmount(amount).
		SetStatus(sale.StatusCompleted).
		SetCompletedAt(completedAt).
		Save(ctx)
	require.NoError(t, err)
}

func march15() time.Time {
	return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
}

func TestGenerate_MonthValidation(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, newFakeTransferClient())

	for _, month := range []string{"2025-3", "2025-13", "202503", "march", ""} {
		_, err := service.Generate(context.Background(), month, false, 1)
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q", month)
	}
}

func TestGenerate_ClassifiesProducers(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// One producer with no earnings and no wallet, one with earnings and a
	// wallet, one with no earnings but a wallet.
	noWalletNoSales := createProducer(t, client, "p1@test.com", "")
	earner := createProducer(t, client, "p2@test.com", testWallet)
	walletOnly := createProducer(t, client, "p3@test.com", testWallet)

	createCompletedSale(t, client, earner, 100.0, sale.LicenseTypeStandard, march15())

	service := NewService(client, newFakeTransferClient())
	resp, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Summary.TotalProducers)
	assert.Equal(t, 2, resp.Summary.PayoutsGenerated)
	assert.Equal(t, 1, resp.Summary.Skipped)
	require.Len(t, resp.Results, 3)

	byProducer := map[int]string{}
	for _, r := range resp.Results {
		byProducer[r.ProducerID] = r.Status
	}
	assert.Equal(t, "skipped", byProducer[noWalletNoSales.ID])
	assert.Equal(t, "pending", byProducer[earner.ID])
	// Zero earnings but a wallet exists: still pending per the OR rule
	assert.Equal(t, "pending", byProducer[walletOnly.ID])

	// Default standard rate is 0.70
	rec, err := client.PayoutRecord.Query().
		Where(payoutrecord.ProducerIDEQ(earner.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70.0, rec.Amount)
	assert.Nil(t, rec.PaymentTransactionID)
}

func TestGenerate_IdempotentNoOp(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	createProducer(t, client, "p1@test.com", testWallet)

	service := NewService(client, newFakeTransferClient())

	first, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)
	require.True(t, first.Success)

	before, err := client.PayoutRecord.Query().Where(payoutrecord.MonthEQ("2025-03")).All(ctx)
	require.NoError(t, err)

	second, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Contains(t, second.Message, "already exist")

	after, err := client.PayoutRecord.Query().Where(payoutrecord.MonthEQ("2025-03")).All(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Amount, after[i].Amount)
	}
}

func TestGenerate_ForceRegenerate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p := createProducer(t, client, "p1@test.com", testWallet)

	service := NewService(client, newFakeTransferClient())

	_, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	// New sales land after the first generation
	createCompletedSale(t, client, p, 200.0, sale.LicenseTypeStandard, march15())

	resp, err := service.Generate(ctx, "2025-03", true, 1)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	records, err := client.PayoutRecord.Query().Where(payoutrecord.MonthEQ("2025-03")).All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 140.0, records[0].Amount)
}

func TestGenerate_RunMarkerConflict(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := client.PayoutRun.Create().
		SetMonth("2025-03").
		SetKind(payoutrun.KindGenerate).
		SetStatus(payoutrun.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	service := NewService(client, newFakeTransferClient())
	_, err = service.Generate(ctx, "2025-03", false, 1)
	assert.ErrorIs(t, err, ErrRunInProgress)
}

func TestDisburse_RunMarkerConflict(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p := createProducer(t, client, "p1@test.com", testWallet)
	createCompletedSale(t, client, p, 100.0, sale.LicenseTypeStandard, march15())

	service := NewService(client, newFakeTransferClient())
	_, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	_, err = client.PayoutRun.Create().
		SetMonth("2025-03").
		SetKind(payoutrun.KindDisburse).
		SetStatus(payoutrun.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	_, err = service.Disburse(ctx, "2025-03", false, 1)
	assert.ErrorIs(t, err, ErrRunInProgress)
}

func TestDisburse_DryRunIgnoresRunMarker(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p := createProducer(t, client, "p1@test.com", testWallet)
	createCompletedSale(t, client, p, 100.0, sale.LicenseTypeStandard, march15())

	transfer := newFakeTransferClient()
	service := NewService(client, transfer)
	_, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	_, err = client.PayoutRun.Create().
		SetMonth("2025-03").
		SetKind(payoutrun.KindDisburse).
		SetStatus(payoutrun.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	// A dry run mutates nothing, so it neither conflicts with the
	// running marker nor leaves one of its own behind
	resp, err := service.Disburse(ctx, "2025-03", true, 1)
	require.NoError(t, err)
	assert.True(t, resp.DryRun)
	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Empty(t, transfer.calls)

	count, err := client.PayoutRun.Query().
		Where(payoutrun.KindEQ(payoutrun.KindDisburse)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDisburse_NoEligiblePayouts(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, newFakeTransferClient())
	resp, err := service.Disburse(context.Background(), "2025-03", false, 1)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "no eligible payouts", resp.Message)
	assert.Equal(t, 0, resp.Summary.Total)
}

func TestDisburse_HappyPath(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p := createProducer(t, client, "p1@test.com", testWallet)
	createCompletedSale(t, client, p, 100.0, sale.LicenseTypeStandard, march15())

	transfer := newFakeTransferClient()
	notifier := &fakeNotifier{}
	service := NewService(client, transfer)
	service.SetNotifier(notifier)

	_, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	resp, err := service.Disburse(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 0, resp.Summary.Failed)
	require.Len(t, transfer.calls, 1)
	assert.Equal(t, 70.0, transfer.calls[0].Amount)
	assert.Equal(t, testWallet, transfer.calls[0].DestinationAddress)
	assert.Equal(t, "2025-03", transfer.calls[0].Metadata["month"])

	rec, err := client.PayoutRecord.Query().
		Where(payoutrecord.ProducerIDEQ(p.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, payoutrecord.StatusPaid, rec.Status)
	require.NotNil(t, rec.PaymentTransactionID)
	assert.Equal(t, "transfer-1", *rec.PaymentTransactionID)
	assert.NotNil(t, rec.PaidAt)

	// Producer was notified
	assert.Equal(t, []string{"p1@test.com"}, notifier.sent)
}

func TestDisburse_DryRunMutatesNothing(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p := createProducer(t, client, "p1@test.com", testWallet)
	createCompletedSale(t, client, p, 100.0, sale.LicenseTypeStandard, march15())

	transfer := newFakeTransferClient()
	service := NewService(client, transfer)

	_, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	resp, err := service.Disburse(ctx, "2025-03", true, 1)
	require.NoError(t, err)
	assert.True(t, resp.DryRun)
	assert.Equal(t, 1, resp.Summary.Successful)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "simulated", resp.Results[0].Status)

	// No transfer API call, no status change, no retry count bump
	assert.Empty(t, transfer.calls)
	rec, err := client.PayoutRecord.Query().Where(payoutrecord.ProducerIDEQ(p.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, payoutrecord.StatusPending, rec.Status)
	assert.Equal(t, 0, rec.RetryCount)
	assert.Nil(t, rec.PaymentTransactionID)
}

func TestDisburse_ZeroAmountSkippedAtDisbursement(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// Wallet but no earnings: generated pending with amount 0, plus one
	// earning producer so the month has an eligible record.
	walletOnly := createProducer(t, client, "p1@test.com", testWallet)
	earner := createProducer(t, client, "p2@test.com", testWallet)
	createCompletedSale(t, client, earner, 100.0, sale.LicenseTypeStandard, march15())

	transfer := newFakeTransferClient()
	service := NewService(client, transfer)

	_, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	resp, err := service.Disburse(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 1, resp.Summary.Skipped)

	// Only the positive-amount record hit the transfer API
	require.Len(t, transfer.calls, 1)
	assert.Equal(t, 70.0, transfer.calls[0].Amount)

	rec, err := client.PayoutRecord.Query().Where(payoutrecord.ProducerIDEQ(walletOnly.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, payoutrecord.StatusSkipped, rec.Status)
	assert.Nil(t, rec.PaymentTransactionID)
}

func TestDisburse_PartialFailureLeavesRecordPending(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	goodWallet := testWallet
	badWallet := "0x8617E340B3D01FA5F11F306F4090FD50E238070D"

	p1 := createProducer(t, client, "p1@test.com", goodWallet)
	p2 := createProducer(t, client, "p2@test.com", badWallet)
	createCompletedSale(t, client, p1, 100.0, sale.LicenseTypeStandard, march15())
	createCompletedSale(t, client, p2, 100.0, sale.LicenseTypeStandard, march15())

	transfer := newFakeTransferClient()
	transfer.failFor[badWallet] = "destination address frozen"
	service := NewService(client, transfer)

	_, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	resp, err := service.Disburse(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 1, resp.Summary.Failed)

	failed, err := client.PayoutRecord.Query().Where(payoutrecord.ProducerIDEQ(p2.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, payoutrecord.StatusPending, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	assert.Contains(t, failed.LastError, "frozen")
	assert.Nil(t, failed.PaymentTransactionID)
}

func TestDisburse_NotificationFailureDoesNotAffectStatus(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p := createProducer(t, client, "p1@test.com", testWallet)
	createCompletedSale(t, client, p, 100.0, sale.LicenseTypeStandard, march15())

	service := NewService(client, newFakeTransferClient())
	service.SetNotifier(&fakeNotifier{fail: true})

	_, err := service.Generate(ctx, "2025-03", false, 1)
	require.NoError(t, err)

	resp, err := service.Disburse(ctx, "2025-03", false, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.Successful)

	rec, err := client.PayoutRecord.Query().Where(payoutrecord.ProducerIDEQ(p.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, payoutrecord.StatusPaid, rec.Status)
}

func TestRetry_RespectsMaxRetries(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p1 := createProducer(t, client, "p1@test.com", testWallet)
	p2 := createProducer(t, client, "p2@test.com", "0x8617E340B3D01FA5F11F306F4090FD50E238070D")

	// One record still under the retry limit, one already exhausted
	_, err := client.PayoutRecord.Create().
		SetProducerID(p1.ID).
		SetMonth("2025-03").
		SetAmount(50.0).
		SetStatus(payoutrecord.StatusPending).
		SetRetryCount(1).
		Save(ctx)
	require.NoError(t, err)

	exhausted, err := client.PayoutRecord.Create().
		SetProducerID(p2.ID).
		SetMonth("2025-03").
		SetAmount(75.0).
		SetStatus(payoutrecord.StatusPending).
		SetRetryCount(3).
		Save(ctx)
	require.NoError(t, err)

	transfer := newFakeTransferClient()
	service := NewService(client, transfer)

	resp, err := service.Retry(ctx, 3, "")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Successful)
	require.Len(t, transfer.calls, 1)
	assert.Equal(t, 50.0, transfer.calls[0].Amount)

	// The exhausted record was never touched
	rec, err := client.PayoutRecord.Get(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, payoutrecord.StatusPending, rec.Status)
	assert.Equal(t, 3, rec.RetryCount)
}

func TestRetry_NeverTouchesPaidRecords(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p := createProducer(t, client, "p1@test.com", testWallet)

	_, err := client.PayoutRecord.Create().
		SetProducerID(p.ID).
		SetMonth("2025-02").
		SetAmount(80.0).
		SetStatus(payoutrecord.StatusPaid).
		SetPaymentTransactionID("transfer-old").
		Save(ctx)
	require.NoError(t, err)

	transfer := newFakeTransferClient()
	service := NewService(client, transfer)

	resp, err := service.Retry(ctx, 3, "")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Summary.Total)
	assert.Empty(t, transfer.calls)
}

func TestRetry_OptionalMonthScope(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	p1 := createProducer(t, client, "p1@test.com", testWallet)
	p2 := createProducer(t, client, "p2@test.com", testWallet)

	_, err := client.PayoutRecord.Create().
		SetProducerID(p1.ID).
		SetMonth("2025-02").
		SetAmount(10.0).
		SetStatus(payoutrecord.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PayoutRecord.Create().
		SetProducerID(p2.ID).
		SetMonth("2025-03").
		SetAmount(20.0).
		SetStatus(payoutrecord.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	transfer := newFakeTransferClient()
	service := NewService(client, transfer)

	resp, err := service.Retry(ctx, 3, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.Total)
	require.Len(t, transfer.calls, 1)
	assert.Equal(t, 20.0, transfer.calls[0].Amount)

	// Unscoped sweep picks up the remaining month
	resp, err = service.Retry(ctx, 3, "")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.Total)
}

func TestValidWallet(t *testing.T) {
	assert.True(t, ValidWallet(testWallet))
	assert.False(t, ValidWallet(""))
	assert.False(t, ValidWallet("0x123"))
	assert.False(t, ValidWallet("52908400098527886E0F7030069857D2E4169EE7aa"))
	assert.False(t, ValidWallet("0xZZ908400098527886E0F7030069857D2E4169EE7"))
}
