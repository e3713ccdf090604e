package payout

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklane/tracklane/ent/enttest"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/syncproposal"
)

func TestValidMonth(t *testing.T) {
	valid := []string{"2025-01", "2025-12", "1999-06"}
	invalid := []string{"2025-00", "2025-13", "2025-1", "25-01", "2025/01", "", "2025-01-01"}

	for _, m := range valid {
		assert.True(t, ValidMonth(m), m)
	}
	for _, m := range invalid {
		assert.False(t, ValidMonth(m), m)
	}
}

func TestMonthWindow(t *testing.T) {
	start, end, err := MonthWindow("2025-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year
	start, end, err = MonthWindow("2025-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestLoadRates_DefaultsWhenUnset(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()

	rates, err := LoadRates(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, DefaultRates(), rates)
}

func TestLoadRates_ReadsSingleton(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	_, err := client.CompensationSettings.Create().
		SetID(1).
		SetStandardRate(0.60).
		SetExclusiveRate(0.75).
		SetSyncFeeRate(0.90).
		SetVolumeBonusRate(0.02).
		SetVolumeBonusThreshold(10).
		Save(ctx)
	require.NoError(t, err)

	rates, err := LoadRates(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 0.60, rates.Standard)
	assert.Equal(t, 0.75, rates.Exclusive)
	assert.Equal(t, 0.90, rates.SyncFee)
	assert.Equal(t, 10, rates.VolumeBonusThreshold)
}

func TestCalculator_ForProducer(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	p := createProducer(t, client, "producer@test.com", testWallet)

	inMonth := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	outOfMonth := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	createCompletedSale(t, client, p, 100.0, sale.LicenseTypeStandard, inMonth)
	createCompletedSale(t, client, p, 300.0, sale.LicenseTypeExclusive, inMonth)
	// Outside the window, must not count
	createCompletedSale(t, client, p, 500.0, sale.LicenseTypeStandard, outOfMonth)

	track, err := client.Track.Create().
		SetProducerID(p.ID).
		SetTitle("Sync Track").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.SyncProposal.Create().
		SetProducerID(p.ID).
		SetTrackID(track.ID).
		SetProjectName("Indie Film").
		SetFee(200.0).
		SetStatus(syncproposal.StatusAccepted).
		SetAcceptedAt(inMonth).
		Save(ctx)
	require.NoError(t, err)

	calc := NewCalculator(client, Rates{
		Standard:             0.70,
		Exclusive:            0.80,
		SyncFee:              0.85,
		VolumeBonus:          0.05,
		VolumeBonusThreshold: 20,
	})

	b, err := calc.ForProducer(ctx, p.ID, "2025-03")
	require.NoError(t, err)

	assert.Equal(t, 70.0, b.StandardShare)    // 100 * 0.70
	assert.Equal(t, 240.0, b.ExclusiveShare)  // 300 * 0.80
	assert.Equal(t, 170.0, b.SyncFeeShare)    // 200 * 0.85
	assert.Equal(t, 0.0, b.VolumeBonus)       // 2 sales < threshold 20
	assert.Equal(t, 2, b.SalesCount)
	assert.Equal(t, 480.0, b.Total)
}

func TestCalculator_VolumeBonus(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	p := createProducer(t, client, "producer@test.com", testWallet)
	inMonth := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		createCompletedSale(t, client, p, 50.0, sale.LicenseTypeStandard, inMonth)
	}

	calc := NewCalculator(client, Rates{
		Standard:             0.70,
		Exclusive:            0.80,
		SyncFee:              0.85,
		VolumeBonus:          0.10,
		VolumeBonusThreshold: 3,
	})

	b, err := calc.ForProducer(ctx, p.ID, "2025-03")
	require.NoError(t, err)

	assert.Equal(t, 105.0, b.StandardShare) // 150 * 0.70
	assert.Equal(t, 15.0, b.VolumeBonus)    // 150 gross * 0.10
	assert.Equal(t, 120.0, b.Total)
}

func TestCalculator_IgnoresPendingAndRefundedSales(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	p := createProducer(t, client, "producer@test.com", testWallet)

	buyer := createBuyer(t, client, "buyer@test.com")
	track, err := client.Track.Create().
		SetProducerID(p.ID).
		SetTitle("Track").
		Save(ctx)
	require.NoError(t, err)

	for _, status := range []sale.Status{sale.StatusPending, sale.StatusRefunded} {
		_, err := client.Sale.Create().
			SetTrackID(track.ID).
			SetProducerID(p.ID).
			SetBuyerID(buyer.ID).
			SetLicenseType(sale.LicenseTypeStandard).
			SetAmount(100.0).
			SetStatus(status).
			SetCompletedAt(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)).
			Save(ctx)
		require.NoError(t, err)
	}

	calc := NewCalculator(client, DefaultRates())
	b, err := calc.ForProducer(ctx, p.ID, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Total)
}
