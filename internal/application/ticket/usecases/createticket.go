package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	numbers    ticket.NumberGenerator
	newID      IDGenerator
	clock      Clock
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	numbers ticket.NumberGenerator,
	newID IDGenerator,
	clock Clock,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		numbers:    numbers,
		newID:      newID,
		clock:      clock,
		logger:     logger,
	}
}

// Execute appends a new open ticket to the collection. Only the category and
// priority are checked, since they must name known values; text fields are
// stored as given.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, req dto.CreateTicketRequest) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "subject", req.Subject, "company_id", req.CompanyID)

	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	priority, err := parsePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tickets", "error", err)
		return nil, err
	}

	number, err := uc.numbers.Generate(ctx, tickets)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, err
	}
	id, err := uc.newID()
	if err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		id,
		number,
		req.Subject,
		req.Description,
		category,
		priority,
		ticket.Requester{
			CompanyID:   req.CompanyID,
			CompanyName: req.CompanyName,
			ClientID:    req.ClientID,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
		},
		uc.clock(),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, err
	}

	if err := uc.ticketRepo.SaveAll(ctx, append(tickets, newTicket)); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "number", newTicket.Number())

	result := dto.ToTicketDTO(newTicket)
	return &result, nil
}
