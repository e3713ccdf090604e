package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/syncproposal"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/cache"
	"github.com/tracklane/tracklane/pkg/payout"
)

const revenueCacheTTL = 10 * time.Minute

// Service handles marketplace revenue analytics
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new analytics service
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
	}
}

// LicenseTypeRevenue represents revenue for a single license type
type LicenseTypeRevenue struct {
	LicenseType string  `json:"license_type"`
	Count       int     `json:"count"`
	Gross       float64 `json:"gross"`
	Percent     float64 `json:"percent"`
}

// MonthlyRevenue represents marketplace revenue for one month
type MonthlyRevenue struct {
	Month         string               `json:"month"`
	GrossSales    float64              `json:"gross_sales"`
	SalesCount    int                  `json:"sales_count"`
	ByLicenseType []LicenseTypeRevenue `json:"by_license_type"`
	SyncFees      float64              `json:"sync_fees"`
	SyncCount     int                  `json:"sync_count"`
	TotalRevenue  float64              `json:"total_revenue"`
}

// ProducerRevenue represents one producer's gross for a month
type ProducerRevenue struct {
	ProducerID   int     `json:"producer_id"`
	ProducerName string  `json:"producer_name"`
	SalesCount   int     `json:"sales_count"`
	Gross        float64 `json:"gross"`
}

// PayoutTotals summarizes payout records for one month
type PayoutTotals struct {
	Month      string  `json:"month"`
	Pending    int     `json:"pending"`
	Paid       int     `json:"paid"`
	Skipped    int     `json:"skipped"`
	AmountDue  float64 `json:"amount_due"`
	AmountPaid float64 `json:"amount_paid"`
}

// GetMonthlyRevenue returns gross marketplace revenue for the month,
// broken down by license type. Results are cached.
func (s *Service) GetMonthlyRevenue(ctx context.Context, month string) (*MonthlyRevenue, error) {
	if !payout.ValidMonth(month) {
		return nil, payout.ErrInvalidMonth
	}

	cacheKey := fmt.Sprintf("analytics:revenue:%s", month)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var result MonthlyRevenue
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	start, end, err := payout.MonthWindow(month)
	if err != nil {
		return nil, err
	}

	sales, err := s.db.Sale.Query().
		Where(
			sale.StatusEQ(sale.StatusCompleted),
			sale.CompletedAtGTE(start),
			sale.CompletedAtLT(end),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying sales: %w", err)
	}

	result := &MonthlyRevenue{Month: month}
	byType := map[string]*LicenseTypeRevenue{}
	for _, rec := range sales {
		result.SalesCount++
		result.GrossSales += rec.Amount
		lt := string(rec.LicenseType)
		if byType[lt] == nil {
			byType[lt] = &LicenseTypeRevenue{LicenseType: lt}
		}
		byType[lt].Count++
		byType[lt].Gross += rec.Amount
	}
	for _, r := range byType {
		if result.GrossSales > 0 {
			r.Percent = roundCents(r.Gross / result.GrossSales * 100)
		}
		r.Gross = roundCents(r.Gross)
		result.ByLicenseType = append(result.ByLicenseType, *r)
	}
	sort.Slice(result.ByLicenseType, func(i, j int) bool {
		return result.ByLicenseType[i].LicenseType < result.ByLicenseType[j].LicenseType
	})

	proposals, err := s.db.SyncProposal.Query().
		Where(
			syncproposal.StatusIn(syncproposal.StatusAccepted, syncproposal.StatusPaid),
			syncproposal.AcceptedAtGTE(start),
			syncproposal.AcceptedAtLT(end),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying sync proposals: %w", err)
	}
	for _, p := range proposals {
		result.SyncCount++
		result.SyncFees += p.Fee
	}

	result.GrossSales = roundCents(result.GrossSales)
	result.SyncFees = roundCents(result.SyncFees)
	result.TotalRevenue = roundCents(result.GrossSales + result.SyncFees)

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, cacheKey, string(data), revenueCacheTTL)
		}
	}

	return result, nil
}

// GetTopProducers returns the producers with the highest completed sales
// gross for the month, descending.
func (s *Service) GetTopProducers(ctx context.Context, month string, limit int) ([]ProducerRevenue, error) {
	if !payout.ValidMonth(month) {
		return nil, payout.ErrInvalidMonth
	}
	if limit <= 0 {
		limit = 10
	}

	start, end, err := payout.MonthWindow(month)
	if err != nil {
		return nil, err
	}

	sales, err := s.db.Sale.Query().
		Where(
			sale.StatusEQ(sale.StatusCompleted),
			sale.CompletedAtGTE(start),
			sale.CompletedAtLT(end),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying sales: %w", err)
	}

	byProducer := map[int]*ProducerRevenue{}
	for _, rec := range sales {
		if byProducer[rec.ProducerID] == nil {
			byProducer[rec.ProducerID] = &ProducerRevenue{ProducerID: rec.ProducerID}
		}
		byProducer[rec.ProducerID].SalesCount++
		byProducer[rec.ProducerID].Gross += rec.Amount
	}

	ranked := make([]ProducerRevenue, 0, len(byProducer))
	for _, r := range byProducer {
		r.Gross = roundCents(r.Gross)
		ranked = append(ranked, *r)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Gross != ranked[j].Gross {
			return ranked[i].Gross > ranked[j].Gross
		}
		return ranked[i].ProducerID < ranked[j].ProducerID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	// Resolve display names
	ids := make([]int, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ProducerID)
	}
	producers, err := s.db.User.Query().Where(user.IDIn(ids...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading producers: %w", err)
	}
	names := map[int]string{}
	for _, p := range producers {
		name := p.ArtistName
		if name == "" {
			name = p.Name
		}
		names[p.ID] = name
	}
	for i := range ranked {
		ranked[i].ProducerName = names[ranked[i].ProducerID]
	}

	return ranked, nil
}

// GetPayoutTotals summarizes the payout records generated for the month.
func (s *Service) GetPayoutTotals(ctx context.Context, month string) (*PayoutTotals, error) {
	if !payout.ValidMonth(month) {
		return nil, payout.ErrInvalidMonth
	}

	records, err := s.db.PayoutRecord.Query().
		Where(payoutrecord.MonthEQ(month)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying payout records: %w", err)
	}

	totals := &PayoutTotals{Month: month}
	for _, rec := range records {
		switch rec.Status {
		case payoutrecord.StatusPending, payoutrecord.StatusFailed:
			totals.Pending++
			totals.AmountDue += rec.Amount
		case payoutrecord.StatusPaid:
			totals.Paid++
			totals.AmountPaid += rec.Amount
		case payoutrecord.StatusSkipped:
			totals.Skipped++
		}
	}
	totals.AmountDue = roundCents(totals.AmountDue)
	totals.AmountPaid = roundCents(totals.AmountPaid)

	return totals, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
