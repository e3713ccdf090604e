package payout

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/syncproposal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonth reports whether month is a well-formed YYYY-MM key
func ValidMonth(month string) bool {
	return monthPattern.MatchString(month)
}

// MonthWindow returns the [start, end) UTC window covered by a YYYY-MM key
func MonthWindow(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}

// Rates holds the compensation percentages applied to a producer's gross
// sales when computing monthly earnings
type Rates struct {
	Standard             float64
	Exclusive            float64
	SyncFee              float64
	VolumeBonus          float64
	VolumeBonusThreshold int
}

// DefaultRates are used when the settings singleton has never been saved
func DefaultRates() Rates {
	return Rates{
		Standard:             0.70,
		Exclusive:            0.80,
		SyncFee:              0.85,
		VolumeBonus:          0.05,
		VolumeBonusThreshold: 20,
	}
}

// LoadRates reads the compensation settings singleton, falling back to
// hardcoded defaults if the row does not exist
func LoadRates(ctx context.Context, db *ent.Client) (Rates, error) {
	settings, err := db.CompensationSettings.Get(ctx, 1)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultRates(), nil
		}
		return Rates{}, fmt.Errorf("failed to load compensation settings: %w", err)
	}

	return Rates{
		Standard:             settings.StandardRate,
		Exclusive:            settings.ExclusiveRate,
		SyncFee:              settings.SyncFeeRate,
		VolumeBonus:          settings.VolumeBonusRate,
		VolumeBonusThreshold: settings.VolumeBonusThreshold,
	}, nil
}

// Breakdown is a producer's earnings for one month, by component.
// All component values are the producer's share (rate already applied).
type Breakdown struct {
	StandardShare  float64 `json:"standard_share"`
	ExclusiveShare float64 `json:"exclusive_share"`
	SyncFeeShare   float64 `json:"sync_fee_share"`
	VolumeBonus    float64 `json:"volume_bonus"`
	SalesCount     int     `json:"sales_count"`
	Total          float64 `json:"total"`
}

// Calculator computes monthly producer earnings from completed sales,
// accepted sync proposals and the compensation rates
type Calculator struct {
	db    *ent.Client
	rates Rates
}

// NewCalculator creates an earnings calculator with a rates snapshot.
// The snapshot is taken once per run so a mid-run settings change cannot
// produce inconsistent amounts.
func NewCalculator(db *ent.Client, rates Rates) *Calculator {
	return &Calculator{db: db, rates: rates}
}

// ForProducer computes the earnings breakdown for one producer and month
func (c *Calculator) ForProducer(ctx context.Context, producerID int, month string) (*Breakdown, error) {
	start, end, err := MonthWindow(month)
	if err != nil {
		return nil, err
	}

	sales, err := c.db.Sale.Query().
		Where(
			sale.ProducerIDEQ(producerID),
			sale.StatusEQ(sale.StatusCompleted),
			sale.CompletedAtGTE(start),
			sale.CompletedAtLT(end),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	proposals, err := c.db.SyncProposal.Query().
		Where(
			syncproposal.ProducerIDEQ(producerID),
			syncproposal.StatusIn(syncproposal.StatusAccepted, syncproposal.StatusPaid),
			syncproposal.AcceptedAtGTE(start),
			syncproposal.AcceptedAtLT(end),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync proposals: %w", err)
	}

	b := &Breakdown{}
	var gross float64

	for _, s := range sales {
		b.SalesCount++
		gross += s.Amount
		switch s.LicenseType {
		case sale.LicenseTypeExclusive:
			b.ExclusiveShare += s.Amount * c.rates.Exclusive
		default:
			b.StandardShare += s.Amount * c.rates.Standard
		}
	}

	for _, p := range proposals {
		b.SyncFeeShare += p.Fee * c.rates.SyncFee
	}

	if c.rates.VolumeBonusThreshold > 0 && b.SalesCount >= c.rates.VolumeBonusThreshold {
		b.VolumeBonus = gross * c.rates.VolumeBonus
	}

	b.StandardShare = roundCents(b.StandardShare)
	b.ExclusiveShare = roundCents(b.ExclusiveShare)
	b.SyncFeeShare = roundCents(b.SyncFeeShare)
	b.VolumeBonus = roundCents(b.VolumeBonus)
	b.Total = roundCents(b.StandardShare + b.ExclusiveShare + b.SyncFeeShare + b.VolumeBonus)

	return b, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
