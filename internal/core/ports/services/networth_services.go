package services

import (
	"context"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// NetWorthSvcFacade exposes the net-worth report and monthly timeline.
type NetWorthSvcFacade interface {
	// NetWorth nets the owner's ledger into a bank balance and combines
	// it with realized contributions to active plans.
	NetWorth(ctx context.Context, ownerID string) (*domain.NetWorthReport, error)

	// Timeline buckets the owner's ledger by month and pairs cumulative
	// cash with the projected investment value for each month's year,
	// over at most horizonMonths trailing months.
	Timeline(ctx context.Context, ownerID string, horizonMonths int) ([]domain.TimelinePoint, error)
}
