package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type GetStatsUseCase struct {
	ticketRepo           ticket.TicketRepository
	clock                Clock
	location             *time.Location
	avgFirstResponseTime string
	logger               logger.Interface
}

// NewGetStatsUseCase counts calendar days in location. The average first
// response time is a fixed figure reported as given.
func NewGetStatsUseCase(
	ticketRepo ticket.TicketRepository,
	clock Clock,
	location *time.Location,
	avgFirstResponseTime string,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		ticketRepo:           ticketRepo,
		clock:                clock,
		location:             location,
		avgFirstResponseTime: avgFirstResponseTime,
		logger:               logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for stats", "error", err)
		return nil, err
	}

	stats := dto.ToStatsDTO(ticket.ComputeStats(tickets, uc.clock(), uc.location, uc.avgFirstResponseTime))
	return &stats, nil
}
