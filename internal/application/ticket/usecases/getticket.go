package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns the first ticket with the given id, or a not-found error.
func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID string) (*dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tickets", "error", err, "ticket_id", ticketID)
		return nil, err
	}

	_, t := findTicket(tickets, ticketID)
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found", ticketID)
	}

	result := dto.ToTicketDTO(t)
	return &result, nil
}
