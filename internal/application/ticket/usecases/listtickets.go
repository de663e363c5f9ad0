package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns every ticket in insertion order.
func (uc *ListTicketsUseCase) Execute(ctx context.Context) ([]dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}
	return dto.ToTicketDTOs(tickets), nil
}

// ExecuteByCompany returns the tickets whose company id equals companyID
// exactly.
func (uc *ListTicketsUseCase) ExecuteByCompany(ctx context.Context, companyID string) ([]dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "company_id", companyID)
		return nil, err
	}

	result := make([]*ticket.Ticket, 0)
	for _, t := range tickets {
		if t.CompanyID() == companyID {
			result = append(result, t)
		}
	}
	return dto.ToTicketDTOs(result), nil
}

// ExecuteFiltered applies the list filters of the ticket views.
func (uc *ListTicketsUseCase) ExecuteFiltered(ctx context.Context, req dto.FilterRequest) ([]dto.TicketDTO, error) {
	filter, err := toDomainFilter(req)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}
	return dto.ToTicketDTOs(filter.Apply(tickets)), nil
}

func toDomainFilter(req dto.FilterRequest) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		CompanyID: req.CompanyID,
		Search:    req.Search,
	}
	if req.Status != "" {
		status, err := parseStatus(req.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if req.Priority != "" {
		priority, err := parsePriority(req.Priority)
		if err != nil {
			return filter, err
		}
		filter.Priority = &priority
	}
	if req.Category != "" {
		category, err := parseCategory(req.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &category
	}
	return filter, nil
}
