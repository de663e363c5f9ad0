package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	clock      Clock
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	clock Clock,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, ticketID string, req dto.UpdateTicketRequest) (*dto.TicketDTO, error) {
	update, err := toDomainUpdate(req)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tickets", "error", err, "ticket_id", ticketID)
		return nil, err
	}

	_, t := findTicket(tickets, ticketID)
	if t == nil {
		uc.logger.Warnw("ticket not found for update", "ticket_id", ticketID)
		return nil, errors.NewNotFoundError("ticket not found", ticketID)
	}

	t.ApplyUpdate(update, uc.clock())

	if err := uc.ticketRepo.SaveAll(ctx, tickets); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", ticketID, "status", t.Status(), "priority", t.Priority())

	result := dto.ToTicketDTO(t)
	return &result, nil
}

func toDomainUpdate(req dto.UpdateTicketRequest) (ticket.TicketUpdate, error) {
	update := ticket.TicketUpdate{
		AssignedAdminID:   req.AssignedAdminID,
		AssignedAdminName: req.AssignedAdminName,
		Tags:              req.Tags,
	}
	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}
	if req.Priority != nil {
		priority, err := parsePriority(*req.Priority)
		if err != nil {
			return update, err
		}
		update.Priority = &priority
	}
	return update, nil
}
