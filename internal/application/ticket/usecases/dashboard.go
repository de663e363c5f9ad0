package usecases

import (
	"context"
	"sort"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

const dashboardListSize = 5

type DashboardUseCase struct {
	ticketRepo ticket.TicketRepository
	stats      *GetStatsUseCase
	logger     logger.Interface
}

func NewDashboardUseCase(
	ticketRepo ticket.TicketRepository,
	stats *GetStatsUseCase,
	logger logger.Interface,
) *DashboardUseCase {
	return &DashboardUseCase{
		ticketRepo: ticketRepo,
		stats:      stats,
		logger:     logger,
	}
}

// Execute returns the stats, the first urgent or SLA-breached tickets in
// collection order, and the most recently updated tickets.
func (uc *DashboardUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	stats, err := uc.stats.Execute(ctx)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for dashboard", "error", err)
		return nil, err
	}

	attention := make([]*ticket.Ticket, 0, dashboardListSize)
	for _, t := range tickets {
		if len(attention) == dashboardListSize {
			break
		}
		if t.NeedsAttention() {
			attention = append(attention, t)
		}
	}

	recent := make([]*ticket.Ticket, len(tickets))
	copy(recent, tickets)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UpdatedAt().After(recent[j].UpdatedAt())
	})
	if len(recent) > dashboardListSize {
		recent = recent[:dashboardListSize]
	}

	return &dto.DashboardDTO{
		Stats:          *stats,
		NeedsAttention: dto.ToTicketDTOs(attention),
		RecentlyActive: dto.ToTicketDTOs(recent),
	}, nil
}
