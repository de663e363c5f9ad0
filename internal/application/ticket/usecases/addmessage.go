package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddMessageUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	newID       IDGenerator
	clock       Clock
	logger      logger.Interface
}

func NewAddMessageUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	newID IDGenerator,
	clock Clock,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		newID:       newID,
		clock:       clock,
		logger:      logger,
	}
}

// Execute appends a message to the ticket's thread, then refreshes the
// owning ticket. The ticket id is not checked against the collection: a
// message for an unknown ticket is stored and no ticket changes.
func (uc *AddMessageUseCase) Execute(ctx context.Context, ticketID string, req dto.AddMessageRequest) (*dto.MessageDTO, error) {
	uc.logger.Infow("executing add message use case",
		"ticket_id", ticketID,
		"sender", req.Sender,
		"is_internal", req.IsInternal)

	sender, err := vo.NewMessageSender(req.Sender)
	if err != nil {
		return nil, errors.NewValidationError("invalid sender", req.Sender)
	}

	attachments := make([]ticket.Attachment, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, a.ToDomain())
	}

	id, err := uc.newID()
	if err != nil {
		return nil, err
	}
	now := uc.clock()

	msg, err := ticket.NewMessage(id, ticketID, req.Content, sender, req.SenderName, req.IsInternal, attachments, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	threads, err := uc.messageRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load messages", "error", err)
		return nil, err
	}
	threads[ticketID] = append(threads[ticketID], msg)
	if err := uc.messageRepo.SaveAll(ctx, threads); err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tickets", "error", err)
		return nil, err
	}
	if _, t := findTicket(tickets, ticketID); t != nil {
		t.RecordMessage(req.IsInternal, now)
		if err := uc.ticketRepo.SaveAll(ctx, tickets); err != nil {
			return nil, err
		}
	} else {
		uc.logger.Warnw("message stored for unknown ticket", "ticket_id", ticketID, "message_id", id)
	}

	result := dto.ToMessageDTO(msg)
	return &result, nil
}
