package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
)

type mockTicketRepository struct {
	ListFunc        func(ctx context.Context) ([]*ticket.Ticket, error)
	SaveAllFunc     func(ctx context.Context, tickets []*ticket.Ticket) error
	IsPersistedFunc func(ctx context.Context) (bool, error)
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveAll(ctx context.Context, tickets []*ticket.Ticket) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, tickets)
	}
	return nil
}

func (m *mockTicketRepository) IsPersisted(ctx context.Context) (bool, error) {
	if m.IsPersistedFunc != nil {
		return m.IsPersistedFunc(ctx)
	}
	return false, nil
}

type mockMessageRepository struct {
	ListAllFunc     func(ctx context.Context) (map[string][]*ticket.Message, error)
	SaveAllFunc     func(ctx context.Context, threads map[string][]*ticket.Message) error
	IsPersistedFunc func(ctx context.Context) (bool, error)
}

func (m *mockMessageRepository) ListAll(ctx context.Context) (map[string][]*ticket.Message, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return map[string][]*ticket.Message{}, nil
}

func (m *mockMessageRepository) SaveAll(ctx context.Context, threads map[string][]*ticket.Message) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, threads)
	}
	return nil
}

func (m *mockMessageRepository) IsPersisted(ctx context.Context) (bool, error) {
	if m.IsPersistedFunc != nil {
		return m.IsPersistedFunc(ctx)
	}
	return false, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context, existing []*ticket.Ticket) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context, existing []*ticket.Ticket) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, existing)
	}
	return "TKT-001", nil
}

func fixedID(id string) IDGenerator {
	return func() (string, error) { return id, nil }
}
