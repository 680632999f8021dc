package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/utils/accounting"
	"github.com/nkhandel/personal_finance_app/internal/utils/finmath"
	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
)

// netWorthService implements the NetWorthSvcFacade interface.
type netWorthService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	planRepo   portsrepo.PlanRepositoryFacade
}

// NewNetWorthService creates a new net-worth reporting service.
func NewNetWorthService(ledgerRepo portsrepo.LedgerRepositoryFacade, planRepo portsrepo.PlanRepositoryFacade) portssvc.NetWorthSvcFacade {
	return &netWorthService{ledgerRepo: ledgerRepo, planRepo: planRepo}
}

// Ensure netWorthService implements the NetWorthSvcFacade interface.
var _ portssvc.NetWorthSvcFacade = (*netWorthService)(nil)

// BankBalance nets the ledger: income in, expenses and investment
// contributions out. Transfers are ignored pending multi-account support.
func BankBalance(entries []domain.LedgerEntry) decimal.Decimal {
	return accounting.CashBalance(entries)
}

// NetWorth combines the owner's bank balance with realized contributions
// to active plans. Min and Max are currently the same figure: divergence
// is reserved for a return-rate-sensitive projection that is not yet
// implemented.
func (s *netWorthService) NetWorth(ctx context.Context, ownerID string) (*domain.NetWorthReport, error) {
	entries, err := s.ledgerRepo.ListEntriesByOwner(ctx, ownerID, time.Time{}, time.Time{})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger entries", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to fetch ledger entries: %w", err)
	}

	invested, err := s.activePlanInvestmentTotal(ctx, ownerID, entries)
	if err != nil {
		return nil, err
	}

	balance := BankBalance(entries)
	total := balance.Add(invested)
	return &domain.NetWorthReport{
		OwnerID:       ownerID,
		BankBalance:   balance,
		InvestedTotal: invested,
		Min:           total,
		Max:           total,
	}, nil
}

// Timeline buckets the owner's ledger by month, accumulates cash
// month-over-month and pairs each month with the projected investment
// value for that month's year taken from the portfolio midpoint
// projection.
func (s *netWorthService) Timeline(ctx context.Context, ownerID string, horizonMonths int) ([]domain.TimelinePoint, error) {
	entries, err := s.ledgerRepo.ListEntriesByOwner(ctx, ownerID, time.Time{}, time.Time{})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger entries", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to fetch ledger entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	projected, err := s.projectedValueByYear(ctx, ownerID, horizonMonths)
	if err != nil {
		return nil, err
	}

	return BuildTimeline(entries, projected), nil
}

// BuildTimeline is the pure timeline aggregation: entries bucketed by
// month, cash accumulated across buckets, each point paired with the
// caller-supplied projected investment value for its year index (year 1
// is the first timeline year).
func BuildTimeline(entries []domain.LedgerEntry, projectedByYear map[int]decimal.Decimal) []domain.TimelinePoint {
	if len(entries) == 0 {
		return nil
	}

	monthly := make(map[time.Time][]domain.LedgerEntry)
	for _, entry := range entries {
		key := timemath.MonthStart(entry.OccurredOn)
		monthly[key] = append(monthly[key], entry)
	}

	months := make([]time.Time, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	points := make([]domain.TimelinePoint, 0, len(months))
	cash := decimal.Zero
	first := months[0]
	for _, month := range months {
		cash = cash.Add(BankBalance(monthly[month]))
		year := timemath.MonthsBetween(first, month)/12 + 1
		invested := projectedByYear[year]
		points = append(points, domain.TimelinePoint{
			Month:    month,
			Cash:     cash,
			Invested: invested,
			NetWorth: cash.Add(invested),
		})
	}
	return points
}

// activePlanInvestmentTotal sums realized investment contributions that
// are stamped with an active plan. Forward growth is deliberately not
// applied.
func (s *netWorthService) activePlanInvestmentTotal(ctx context.Context, ownerID string, entries []domain.LedgerEntry) (decimal.Decimal, error) {
	plans, err := s.planRepo.FindActivePlans(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch active plans", slog.String("owner_id", ownerID))
		return decimal.Zero, fmt.Errorf("failed to fetch active plans: %w", err)
	}

	active := make(map[string]struct{}, len(plans))
	for _, plan := range plans {
		active[plan.PlanID] = struct{}{}
	}

	total := decimal.Zero
	for _, entry := range entries {
		if entry.Kind != domain.EntryInvestment || entry.PlanID == nil {
			continue
		}
		if _, ok := active[*entry.PlanID]; ok {
			total = total.Add(entry.Amount)
		}
	}
	return total, nil
}

// projectedValueByYear runs the midpoint portfolio projection and indexes
// the year-end values for timeline lookups.
func (s *netWorthService) projectedValueByYear(ctx context.Context, ownerID string, horizonMonths int) (map[int]decimal.Decimal, error) {
	plans, err := s.planRepo.FindActivePlans(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active plans: %w", err)
	}

	months := horizonMonths
	if months <= 0 {
		months = DefaultProjectionMonths
	}

	projected := make(map[int]decimal.Decimal)
	for _, plan := range plans {
		points := finmath.Project(plan.MonthlyContribution, finmath.MonthlyRate(plan.MidpointReturn()), months, plan.AnnualIncreasePercent)
		for _, point := range points {
			if point.Month%12 != 0 {
				continue
			}
			year := point.Month / 12
			projected[year] = projected[year].Add(point.Value)
		}
	}
	return projected, nil
}
