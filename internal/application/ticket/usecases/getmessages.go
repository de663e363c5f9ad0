package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetMessagesUseCase struct {
	messageRepo ticket.MessageRepository
	policy      ticket.VisibilityPolicy
	logger      logger.Interface
}

func NewGetMessagesUseCase(
	messageRepo ticket.MessageRepository,
	policy ticket.VisibilityPolicy,
	logger logger.Interface,
) *GetMessagesUseCase {
	return &GetMessagesUseCase{
		messageRepo: messageRepo,
		policy:      policy,
		logger:      logger,
	}
}

// Execute returns the full thread in insertion order, internal notes
// included. An unknown ticket yields an empty thread.
func (uc *GetMessagesUseCase) Execute(ctx context.Context, ticketID string) ([]dto.MessageDTO, error) {
	thread, err := uc.thread(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return dto.ToMessageDTOs(thread), nil
}

// ExecuteForViewer returns the part of the thread the role may read.
func (uc *GetMessagesUseCase) ExecuteForViewer(ctx context.Context, ticketID string, role string) ([]dto.MessageDTO, error) {
	viewer, err := vo.NewViewerRole(role)
	if err != nil {
		return nil, errors.NewValidationError("invalid viewer role", role)
	}

	thread, err := uc.thread(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	visible := make([]*ticket.Message, 0, len(thread))
	for _, m := range thread {
		ok, err := m.VisibleTo(uc.policy, viewer)
		if err != nil {
			return nil, err
		}
		if ok {
			visible = append(visible, m)
		}
	}
	return dto.ToMessageDTOs(visible), nil
}

func (uc *GetMessagesUseCase) thread(ctx context.Context, ticketID string) ([]*ticket.Message, error) {
	threads, err := uc.messageRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load messages", "error", err, "ticket_id", ticketID)
		return nil, err
	}
	return threads[ticketID], nil
}
