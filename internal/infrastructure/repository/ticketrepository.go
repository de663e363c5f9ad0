package repository

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/kvstore"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/infrastructure/seed"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// TicketRepository keeps the ticket collection under one key. Reads fall back
// to the seed collection until the key has been written.
type TicketRepository struct {
	store  kvstore.Store
	seed   *seed.Dataset
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(store kvstore.Store, ds *seed.Dataset, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		store:  store,
		seed:   ds,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var fallback []models.TicketRecord
	if r.seed != nil {
		fallback = r.seed.TicketRecords()
	}

	records, err := kvstore.GetOr(ctx, r.store, models.TicketsKey, fallback)
	if err != nil {
		r.logger.Errorw("failed to load tickets", "error", err)
		return nil, errors.NewInternalError("failed to load tickets", err.Error())
	}

	tickets, err := r.mapper.ToDomainList(records)
	if err != nil {
		return nil, errors.NewInternalError("failed to decode tickets", err.Error())
	}
	return tickets, nil
}

func (r *TicketRepository) SaveAll(ctx context.Context, tickets []*ticket.Ticket) error {
	if err := r.store.Set(ctx, models.TicketsKey, r.mapper.ToRecords(tickets)); err != nil {
		r.logger.Errorw("failed to save tickets", "count", len(tickets), "error", err)
		return errors.NewInternalError("failed to save tickets", err.Error())
	}
	return nil
}

func (r *TicketRepository) IsPersisted(ctx context.Context) (bool, error) {
	exists, err := kvstore.Exists(ctx, r.store, models.TicketsKey)
	if err != nil {
		return false, errors.NewInternalError("failed to check stored tickets", err.Error())
	}
	return exists, nil
}

// MessageRepository keeps every thread in one map keyed by ticket id.
type MessageRepository struct {
	store  kvstore.Store
	seed   *seed.Dataset
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewMessageRepository(store kvstore.Store, ds *seed.Dataset, log logger.Interface) *MessageRepository {
	return &MessageRepository{
		store:  store,
		seed:   ds,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

func (r *MessageRepository) ListAll(ctx context.Context) (map[string][]*ticket.Message, error) {
	fallback := map[string][]models.MessageRecord{}
	if r.seed != nil {
		fallback = r.seed.MessageRecords()
	}

	records, err := kvstore.GetOr(ctx, r.store, models.MessagesKey, fallback)
	if err != nil {
		r.logger.Errorw("failed to load messages", "error", err)
		return nil, errors.NewInternalError("failed to load messages", err.Error())
	}

	threads, err := r.mapper.ThreadsToDomain(records)
	if err != nil {
		return nil, errors.NewInternalError("failed to decode messages", err.Error())
	}
	return threads, nil
}

func (r *MessageRepository) SaveAll(ctx context.Context, threads map[string][]*ticket.Message) error {
	if err := r.store.Set(ctx, models.MessagesKey, r.mapper.ThreadsToRecords(threads)); err != nil {
		r.logger.Errorw("failed to save messages", "threads", len(threads), "error", err)
		return errors.NewInternalError("failed to save messages", err.Error())
	}
	return nil
}

func (r *MessageRepository) IsPersisted(ctx context.Context) (bool, error) {
	exists, err := kvstore.Exists(ctx, r.store, models.MessagesKey)
	if err != nil {
		return false, errors.NewInternalError("failed to check stored messages", err.Error())
	}
	return exists, nil
}

// SequenceRepository persists the last issued ticket number.
type SequenceRepository struct {
	store kvstore.Store
}

func NewSequenceRepository(store kvstore.Store) *SequenceRepository {
	return &SequenceRepository{store: store}
}

func (r *SequenceRepository) Next(ctx context.Context, floor int) (int, error) {
	current, err := kvstore.GetOr(ctx, r.store, models.TicketSequenceKey, 0)
	if err != nil {
		return 0, errors.NewInternalError("failed to load ticket sequence", err.Error())
	}
	if floor > current {
		current = floor
	}

	next := current + 1
	if err := r.store.Set(ctx, models.TicketSequenceKey, next); err != nil {
		return 0, errors.NewInternalError("failed to save ticket sequence", err.Error())
	}
	return next, nil
}

var (
	_ ticket.TicketRepository   = (*TicketRepository)(nil)
	_ ticket.MessageRepository  = (*MessageRepository)(nil)
	_ ticket.SequenceRepository = (*SequenceRepository)(nil)
)
