package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type InitMockDataResult struct {
	TicketsSeeded  bool `json:"ticketsSeeded"`
	MessagesSeeded bool `json:"messagesSeeded"`
}

// InitMockDataUseCase writes the seed collections into storage, once. A key
// that already holds a value, even an empty collection, is never touched.
type InitMockDataUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewInitMockDataUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *InitMockDataUseCase {
	return &InitMockDataUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *InitMockDataUseCase) Execute(ctx context.Context) (*InitMockDataResult, error) {
	result := &InitMockDataResult{}

	persisted, err := uc.ticketRepo.IsPersisted(ctx)
	if err != nil {
		return nil, err
	}
	if !persisted {
		// Nothing stored yet, so List yields the seed collection.
		tickets, err := uc.ticketRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		if err := uc.ticketRepo.SaveAll(ctx, tickets); err != nil {
			return nil, err
		}
		result.TicketsSeeded = true
	}

	persisted, err = uc.messageRepo.IsPersisted(ctx)
	if err != nil {
		return nil, err
	}
	if !persisted {
		threads, err := uc.messageRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		if err := uc.messageRepo.SaveAll(ctx, threads); err != nil {
			return nil, err
		}
		result.MessagesSeeded = true
	}

	uc.logger.Infow("mock data initialized",
		"tickets_seeded", result.TicketsSeeded,
		"messages_seeded", result.MessagesSeeded)
	return result, nil
}
