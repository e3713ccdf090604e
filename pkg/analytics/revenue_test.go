package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/enttest"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/payout"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createProducer(t *testing.T, client *ent.Client, email, artistName string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetName("Producer").
		SetArtistName(artistName).
		SetRole(user.RoleProducer).
		SetActive(true).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createCompletedSale(t *testing.T, client *ent.Client, producerID int, licenseType sale.LicenseType, amount float64, completedAt time.Time) {
	t.Helper()
	ctx := context.Background()

	seq := fmt.Sprintf("%d-%d", producerID, time.Now().UnixNano())
	buyer, err := client.User.Create().
		SetEmail(fmt.Sprintf("buyer-%s@example.com", seq)).
		SetPasswordHash("x").
		SetName("Buyer").
		SetRole(user.RoleClient).
		SetActive(true).
		Save(ctx)
	require.NoError(t, err)

	tr, err := client.Track.Create().
		SetProducerID(producerID).
		SetTitle("Track " + seq).
		SetStatus("published").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Sale.Create().
		SetTrackID(tr.ID).
		SetProducerID(producerID).
		SetBuyerID(buyer.ID).
		SetLicenseType(licenseType).
		SetAmount(amount).
		SetStatus(sale.StatusCompleted).
		SetCompletedAt(completedAt).
		Save(ctx)
	require.NoError(t, err)
}

func TestGetMonthlyRevenue(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()
	producer := createProducer(t, client, "beats@example.com", "Nightdrive")

	inMonth := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	outOfMonth := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

	createCompletedSale(t, client, producer.ID, sale.LicenseTypeStandard, 29.99, inMonth)
	createCompletedSale(t, client, producer.ID, sale.LicenseTypeStandard, 29.99, inMonth)
	createCompletedSale(t, client, producer.ID, sale.LicenseTypeExclusive, 299.99, inMonth)
	createCompletedSale(t, client, producer.ID, sale.LicenseTypeStandard, 29.99, outOfMonth)

	syncTrack, err := client.Track.Create().
		SetProducerID(producer.ID).
		SetTitle("Sync Candidate").
		SetStatus("published").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.SyncProposal.Create().
		SetProducerID(producer.ID).
		SetTrackID(syncTrack.ID).
		SetProjectName("Indie Film").
		SetFee(500).
		SetStatus("accepted").
		SetAcceptedAt(inMonth).
		Save(ctx)
	require.NoError(t, err)

	t.Run("rejects invalid month", func(t *testing.T) {
		_, err := svc.GetMonthlyRevenue(ctx, "2026-13")
		assert.ErrorIs(t, err, payout.ErrInvalidMonth)
	})

	t.Run("aggregates the month window only", func(t *testing.T) {
		result, err := svc.GetMonthlyRevenue(ctx, "2026-03")
		require.NoError(t, err)

		assert.Equal(t, 3, result.SalesCount)
		assert.InDelta(t, 359.97, result.GrossSales, 0.001)
		assert.InDelta(t, 500.0, result.SyncFees, 0.001)
		assert.Equal(t, 1, result.SyncCount)
		assert.InDelta(t, 859.97, result.TotalRevenue, 0.001)

		require.Len(t, result.ByLicenseType, 2)
		assert.Equal(t, "exclusive", result.ByLicenseType[0].LicenseType)
		assert.Equal(t, 1, result.ByLicenseType[0].Count)
		assert.Equal(t, "standard", result.ByLicenseType[1].LicenseType)
		assert.Equal(t, 2, result.ByLicenseType[1].Count)
	})
}

func TestGetTopProducers(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()

	inMonth := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	big := createProducer(t, client, "big@example.com", "Big Seller")
	small := createProducer(t, client, "small@example.com", "Small Seller")

	createCompletedSale(t, client, big.ID, sale.LicenseTypeExclusive, 299.99, inMonth)
	createCompletedSale(t, client, small.ID, sale.LicenseTypeStandard, 29.99, inMonth)

	ranked, err := svc.GetTopProducers(ctx, "2026-03", 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, big.ID, ranked[0].ProducerID)
	assert.Equal(t, "Big Seller", ranked[0].ProducerName)
	assert.InDelta(t, 299.99, ranked[0].Gross, 0.001)
	assert.Equal(t, small.ID, ranked[1].ProducerID)

	t.Run("limit caps the result", func(t *testing.T) {
		ranked, err := svc.GetTopProducers(ctx, "2026-03", 1)
		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, big.ID, ranked[0].ProducerID)
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		_, err := svc.GetTopProducers(ctx, "2026-00", 10)
		assert.ErrorIs(t, err, payout.ErrInvalidMonth)
	})
}

func TestGetPayoutTotals(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()

	p1 := createProducer(t, client, "p1@example.com", "One")
	p2 := createProducer(t, client, "p2@example.com", "Two")
	p3 := createProducer(t, client, "p3@example.com", "Three")

	_, err := client.PayoutRecord.Create().
		SetProducerID(p1.ID).
		SetMonth("2026-03").
		SetAmount(70).
		SetStatus(payoutrecord.StatusPending).
		SetWalletAddress("0x52908400098527886E0F7030069857D2E4169EE7").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PayoutRecord.Create().
		SetProducerID(p2.ID).
		SetMonth("2026-03").
		SetAmount(210).
		SetStatus(payoutrecord.StatusPaid).
		SetWalletAddress("0x52908400098527886E0F7030069857D2E4169EE7").
		SetPaidAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PayoutRecord.Create().
		SetProducerID(p3.ID).
		SetMonth("2026-03").
		SetAmount(0).
		SetStatus(payoutrecord.StatusSkipped).
		Save(ctx)
	require.NoError(t, err)

	totals, err := svc.GetPayoutTotals(ctx, "2026-03")
	require.NoError(t, err)

	assert.Equal(t, 1, totals.Pending)
	assert.Equal(t, 1, totals.Paid)
	assert.Equal(t, 1, totals.Skipped)
	assert.InDelta(t, 70.0, totals.AmountDue, 0.001)
	assert.InDelta(t, 210.0, totals.AmountPaid, 0.001)
}
