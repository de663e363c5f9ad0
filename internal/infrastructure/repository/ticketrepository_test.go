package repository

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/kvstore"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/infrastructure/seed"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func newSeed(t *testing.T) *seed.Dataset {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	return ds
}

func TestTicketRepository_FallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	ds := newSeed(t)
	repo := NewTicketRepository(store, ds, logger.NewNop())

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, len(ds.Tickets))

	persisted, err := repo.IsPersisted(ctx)
	require.NoError(t, err)
	assert.False(t, persisted, "reading must not write the key")
}

func TestTicketRepository_SaveAllReplacesCollection(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewTicketRepository(store, newSeed(t), logger.NewNop())

	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	tk, err := ticket.NewTicket("tkt_1", "TKT-100", "s", "d", vo.CategoryGeneral, vo.PriorityLow,
		ticket.Requester{CompanyID: "c1"}, now)
	require.NoError(t, err)

	require.NoError(t, repo.SaveAll(ctx, []*ticket.Ticket{tk}))

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "TKT-100", tickets[0].Number())

	persisted, err := repo.IsPersisted(ctx)
	require.NoError(t, err)
	assert.True(t, persisted)

	// An empty collection is still a written key and must not fall back.
	require.NoError(t, repo.SaveAll(ctx, nil))
	tickets, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestTicketRepository_NoSeed(t *testing.T) {
	repo := NewTicketRepository(kvstore.NewMemoryStore(), nil, logger.NewNop())
	tickets, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestMessageRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewMessageRepository(store, newSeed(t), logger.NewNop())

	threads, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, threads["1"])

	msg, err := ticket.NewMessage("msg_1", "1", "hello", vo.SenderAdmin, "Sarah", false, nil,
		time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	threads["1"] = append(threads["1"], msg)
	require.NoError(t, repo.SaveAll(ctx, threads))

	reloaded, err := repo.ListAll(ctx)
	require.NoError(t, err)
	last := reloaded["1"][len(reloaded["1"])-1]
	assert.Equal(t, "msg_1", last.ID())
	assert.Empty(t, last.Attachments())

	var raw map[string][]models.MessageRecord
	found, err := store.Get(ctx, models.MessagesKey, &raw)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotNil(t, raw["1"][len(raw["1"])-1].Attachments)
}

func TestSequenceRepository_Next(t *testing.T) {
	ctx := context.Background()
	repo := NewSequenceRepository(kvstore.NewMemoryStore())

	n, err := repo.Next(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	// A lower floor never moves the counter back.
	n, err = repo.Next(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	n, err = repo.Next(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 21, n)
}

// failingStore answers every call with the same storage error.
type failingStore struct {
	err error
}

func (s failingStore) Get(context.Context, string, any) (bool, error) { return false, s.err }
func (s failingStore) Set(context.Context, string, any) error { return s.err }
func (s failingStore) Remove(context.Context, string) error { return s.err }

func TestRepositories_StorageFailuresAreInternal(t *testing.T) {
	ctx := context.Background()
	store := failingStore{err: stderrors.New("connection refused")}
	ds := newSeed(t)
	tickets := NewTicketRepository(store, ds, logger.NewNop())
	messages := NewMessageRepository(store, ds, logger.NewNop())
	sequence := NewSequenceRepository(store)

	checks := []struct {
		name string
		call func() error
	}{
		{"list tickets", func() error { _, err := tickets.List(ctx); return err }},
		{"save tickets", func() error { return tickets.SaveAll(ctx, nil) }},
		{"tickets persisted", func() error { _, err := tickets.IsPersisted(ctx); return err }},
		{"list messages", func() error { _, err := messages.ListAll(ctx); return err }},
		{"save messages", func() error { return messages.SaveAll(ctx, nil) }},
		{"messages persisted", func() error { _, err := messages.IsPersisted(ctx); return err }},
		{"next sequence", func() error { _, err := sequence.Next(ctx, 0); return err }},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.IsInternalError(err))
			assert.Contains(t, err.Error(), "connection refused")
		})
	}
}
