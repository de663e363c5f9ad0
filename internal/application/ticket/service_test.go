package ticket

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/kvstore"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/seed"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	svc   *Service
	store kvstore.Store
	clock *fakeClock
	seed  *seed.Dataset
}

// newFixture builds a service over an in-memory store. With seeded=false the
// repositories have no fallback collection, so the store starts empty.
func newFixture(t *testing.T, seeded bool) *fixture {
	t.Helper()

	ds, err := seed.Default()
	require.NoError(t, err)

	var fallback *seed.Dataset
	if seeded {
		fallback = ds
	}

	store := kvstore.NewMemoryStore()
	log := logger.NewNop()
	enforcer, err := permission.NewEnforcer(log)
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}

	svc := NewService(
		repository.NewTicketRepository(store, fallback, log),
		repository.NewMessageRepository(store, fallback, log),
		ticket.NewSequenceNumberGenerator(repository.NewSequenceRepository(store)),
		ds,
		enforcer,
		markdown.NewRenderer(),
		Options{
			Clock:                clock.Now,
			Location:             time.UTC,
			AvgFirstResponseTime: ds.AvgFirstResponseTime,
		},
		log,
	)

	return &fixture{svc: svc, store: store, clock: clock, seed: ds}
}

func loginBroken() dto.CreateTicketRequest {
	return dto.CreateTicketRequest{
		Subject:     "Login broken",
		Description: "Cannot sign in since this morning",
		Category:    "technical",
		Priority:    "high",
		CompanyID:   "company-9",
		CompanyName: "Umbrella",
		ClientID:    "client-9",
		ClientName:  "Alice",
		ClientEmail: "alice@umbrella.test",
	}
}

func TestService_CreateTicket_OnEmptyStore(t *testing.T) {
	f := newFixture(t, false)

	created, err := f.svc.CreateTicket(context.Background(), loginBroken())
	require.NoError(t, err)

	assert.Equal(t, "open", created.Status)
	assert.Equal(t, "TKT-001", created.TicketNumber)
	assert.Equal(t, 0, created.UnreadCount)
	assert.Equal(t, []string{}, created.Tags)
	assert.False(t, created.SLABreached)
	assert.Nil(t, created.AssignedAdminID)
	assert.Equal(t, f.clock.Now(), created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestService_CreateTicket_SequentialNumbers(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	ids := map[string]bool{}
	for i := 1; i <= 12; i++ {
		created, err := f.svc.CreateTicket(ctx, loginBroken())
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("TKT-%03d", i), created.TicketNumber)
		assert.False(t, ids[created.ID], "duplicate id %s", created.ID)
		ids[created.ID] = true
	}

	all, err := f.svc.ListAllTickets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 12)
	assert.Equal(t, "TKT-001", all[0].TicketNumber)
	assert.Equal(t, "TKT-012", all[11].TicketNumber)
}

func TestService_CreateTicket_NumbersNeverReused(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.CreateTicket(ctx, loginBroken())
		require.NoError(t, err)
	}

	// Drop the collection behind the service's back.
	require.NoError(t, f.store.Set(ctx, models.TicketsKey, []models.TicketRecord{}))

	created, err := f.svc.CreateTicket(ctx, loginBroken())
	require.NoError(t, err)
	assert.Equal(t, "TKT-004", created.TicketNumber)
}

func TestService_CreateTicket_ContinuesAfterSeed(t *testing.T) {
	f := newFixture(t, true)

	created, err := f.svc.CreateTicket(context.Background(), loginBroken())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("TKT-%03d", len(f.seed.Tickets)+1), created.TicketNumber)
}

func TestService_CreateTicket_InvalidEnum(t *testing.T) {
	f := newFixture(t, false)

	req := loginBroken()
	req.Category = "hardware"
	_, err := f.svc.CreateTicket(context.Background(), req)
	assert.True(t, errors.IsValidationError(err))

	req = loginBroken()
	req.Priority = "critical"
	_, err = f.svc.CreateTicket(context.Background(), req)
	assert.True(t, errors.IsValidationError(err))
}

func TestService_CreateTicket_AcceptsEmptySubject(t *testing.T) {
	f := newFixture(t, false)

	req := loginBroken()
	req.Subject = ""
	created, err := f.svc.CreateTicket(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, created.Subject)
}

func TestService_UpdateTicket(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	before, err := f.svc.GetTicketByID(ctx, "4")
	require.NoError(t, err)

	f.clock.Advance(time.Hour)

	status := "in_progress"
	priority := "urgent"
	adminID := "admin-3"
	adminName := "Priya Patel"
	req := dto.UpdateTicketRequest{
		Status:            &status,
		Priority:          &priority,
		AssignedAdminID:   &adminID,
		AssignedAdminName: &adminName,
		Tags:              []string{"api", "escalated"},
	}

	updated, err := f.svc.UpdateTicket(ctx, "4", req)
	require.NoError(t, err)

	got, err := f.svc.GetTicketByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	assert.Equal(t, status, got.Status)
	assert.Equal(t, priority, got.Priority)
	assert.Equal(t, &adminID, got.AssignedAdminID)
	assert.Equal(t, &adminName, got.AssignedAdminName)
	assert.Equal(t, []string{"api", "escalated"}, got.Tags)
	assert.False(t, got.UpdatedAt.Before(before.UpdatedAt))
	assert.Equal(t, f.clock.Now(), got.UpdatedAt)

	// Untouched fields survive.
	assert.Equal(t, before.Subject, got.Subject)
	assert.Equal(t, before.UnreadCount, got.UnreadCount)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)
}

func TestService_UpdateTicket_PartialAndClearing(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	empty := ""
	updated, err := f.svc.UpdateTicket(ctx, "2", dto.UpdateTicketRequest{
		AssignedAdminID:   &empty,
		AssignedAdminName: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.AssignedAdminID)
	assert.Nil(t, updated.AssignedAdminName)
	assert.Equal(t, "in_progress", updated.Status)
	assert.Equal(t, []string{"invoice"}, updated.Tags)

	updated, err = f.svc.UpdateTicket(ctx, "2", dto.UpdateTicketRequest{Tags: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, updated.Tags)
}

func TestService_UpdateTicket_UpdatedAtNeverMovesBack(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	before, err := f.svc.GetTicketByID(ctx, "1")
	require.NoError(t, err)

	f.clock.Advance(-48 * time.Hour)

	status := "resolved"
	updated, err := f.svc.UpdateTicket(ctx, "1", dto.UpdateTicketRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, before.UpdatedAt, updated.UpdatedAt)
}

func TestService_UpdateTicket_NotFound(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	status := "closed"
	_, err := f.svc.UpdateTicket(ctx, "missing", dto.UpdateTicketRequest{Status: &status})
	assert.True(t, errors.IsNotFoundError(err))

	persisted, err := kvstore.Exists(ctx, f.store, models.TicketsKey)
	require.NoError(t, err)
	assert.False(t, persisted, "a failed update must not write")
}

func TestService_GetTicketByID_NotFound(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.GetTicketByID(context.Background(), "nope")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestService_ListTicketsByCompany(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tickets, err := f.svc.ListTicketsByCompany(ctx, "company-1")
	require.NoError(t, err)
	require.NotEmpty(t, tickets)
	for _, tk := range tickets {
		assert.Equal(t, "company-1", tk.CompanyID)
	}

	none, err := f.svc.ListTicketsByCompany(ctx, "COMPANY-1")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestService_FilterTickets(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.FilterRequest
		wantIDs []string
	}{
		{"status", dto.FilterRequest{Status: "open"}, []string{"1", "4"}},
		{"priority", dto.FilterRequest{Priority: "urgent"}, []string{"1", "6"}},
		{"category", dto.FilterRequest{Category: "billing"}, []string{"2", "7"}},
		{"company and status", dto.FilterRequest{CompanyID: "company-1", Status: "closed"}, []string{"7"}},
		{"search number", dto.FilterRequest{Search: "tkt-003"}, []string{"3"}},
		{"search company", dto.FilterRequest{Search: "initech"}, []string{"5", "6"}},
		{"search subject", dto.FilterRequest{Search: "INVOICE"}, []string{"2"}},
		{"nothing", dto.FilterRequest{Search: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tickets, err := f.svc.FilterTickets(ctx, tt.req)
			require.NoError(t, err)

			ids := make([]string, 0, len(tickets))
			for _, tk := range tickets {
				ids = append(ids, tk.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	_, err := f.svc.FilterTickets(ctx, dto.FilterRequest{Status: "pending"})
	assert.True(t, errors.IsValidationError(err))
}

func TestService_AddMessage_UnreadCount(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	before, err := f.svc.GetTicketByID(ctx, "3")
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	msg, err := f.svc.AddMessage(ctx, "3", dto.AddMessageRequest{
		Content:    "Mostly the monthly revenue report.",
		Sender:     "client",
		SenderName: "Michael Brown",
	})
	require.NoError(t, err)
	assert.Equal(t, "3", msg.TicketID)
	assert.NotNil(t, msg.Attachments)
	assert.Empty(t, msg.Attachments)

	after, err := f.svc.GetTicketByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, before.UnreadCount+1, after.UnreadCount)
	assert.Equal(t, f.clock.Now(), after.UpdatedAt)

	f.clock.Advance(time.Minute)
	_, err = f.svc.AddMessage(ctx, "3", dto.AddMessageRequest{
		Content:    "Customer is on the enterprise plan.",
		Sender:     "admin",
		SenderName: "Sarah Chen",
		IsInternal: true,
	})
	require.NoError(t, err)

	internal, err := f.svc.GetTicketByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, after.UnreadCount, internal.UnreadCount)
	assert.Equal(t, f.clock.Now(), internal.UpdatedAt)

	messages, err := f.svc.GetMessages(ctx, "3")
	require.NoError(t, err)
	seeded := len(f.seed.Messages["3"])
	require.Len(t, messages, seeded+2)
	assert.Equal(t, msg.ID, messages[seeded].ID)
	assert.True(t, messages[seeded+1].IsInternal)
}

func TestService_AddMessage_StartsThreadAndKeepsAttachments(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.svc.AddMessage(ctx, "4", dto.AddMessageRequest{
		Content:    "Here is the failing payload.",
		Sender:     "client",
		SenderName: "Lisa Wong",
		Attachments: []dto.AttachmentDTO{
			{ID: "att-9", Name: "payload.json", URL: "file:///tmp/payload.json", Type: "application/json", Size: 2048},
		},
	})
	require.NoError(t, err)

	messages, err := f.svc.GetMessages(ctx, "4")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Attachments, 1)
	assert.Equal(t, int64(2048), messages[0].Attachments[0].Size)
}

func TestService_AddMessage_UnknownTicket(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.svc.AddMessage(ctx, "ghost", dto.AddMessageRequest{
		Content:    "hello?",
		Sender:     "client",
		SenderName: "Nobody",
	})
	require.NoError(t, err)

	messages, err := f.svc.GetMessages(ctx, "ghost")
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	persisted, err := kvstore.Exists(ctx, f.store, models.TicketsKey)
	require.NoError(t, err)
	assert.False(t, persisted, "no ticket should have been written")
}

func TestService_AddMessage_InvalidSender(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.AddMessage(context.Background(), "1", dto.AddMessageRequest{Content: "x", Sender: "bot"})
	assert.True(t, errors.IsValidationError(err))
}

func TestService_GetMessages_Empty(t *testing.T) {
	f := newFixture(t, true)

	messages, err := f.svc.GetMessages(context.Background(), "4")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestService_GetConversation(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	all, err := f.svc.GetMessages(ctx, "1")
	require.NoError(t, err)

	client, err := f.svc.GetConversation(ctx, "1", "client")
	require.NoError(t, err)
	for _, m := range client {
		assert.False(t, m.IsInternal)
	}
	assert.Less(t, len(client), len(all))

	admin, err := f.svc.GetConversation(ctx, "1", "admin")
	require.NoError(t, err)
	assert.Equal(t, all, admin)

	_, err = f.svc.GetConversation(ctx, "1", "auditor")
	assert.True(t, errors.IsValidationError(err))
}

func TestService_InitMockData(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	result, err := f.svc.InitMockData(ctx)
	require.NoError(t, err)
	assert.True(t, result.TicketsSeeded)
	assert.True(t, result.MessagesSeeded)

	tickets, err := f.svc.ListAllTickets(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, len(f.seed.Tickets))

	// Writes between the two calls must survive the second call.
	created, err := f.svc.CreateTicket(ctx, loginBroken())
	require.NoError(t, err)
	_, err = f.svc.AddMessage(ctx, created.ID, dto.AddMessageRequest{Content: "hi", Sender: "client", SenderName: "Alice"})
	require.NoError(t, err)

	result, err = f.svc.InitMockData(ctx)
	require.NoError(t, err)
	assert.False(t, result.TicketsSeeded)
	assert.False(t, result.MessagesSeeded)

	tickets, err = f.svc.ListAllTickets(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, len(f.seed.Tickets)+1)

	messages, err := f.svc.GetMessages(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestService_InitMockData_KeepsEmptyCollections(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, models.TicketsKey, []models.TicketRecord{}))

	result, err := f.svc.InitMockData(ctx)
	require.NoError(t, err)
	assert.False(t, result.TicketsSeeded)
	assert.True(t, result.MessagesSeeded)

	tickets, err := f.svc.ListAllTickets(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestService_GetStats(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	now := f.clock.Now()

	resolvedToday := now.Add(-2 * time.Hour)
	yesterday := now.Add(-26 * time.Hour)
	records := []models.TicketRecord{
		{ID: "a", Status: "open", Priority: "low", Category: "general", CreatedAt: now, UpdatedAt: now},
		{ID: "b", Status: "open", Priority: "urgent", Category: "general", CreatedAt: now, UpdatedAt: now},
		{ID: "c", Status: "waiting_response", Priority: "normal", Category: "billing", CreatedAt: now, UpdatedAt: now, SLABreached: true},
		{ID: "d", Status: "resolved", Priority: "high", Category: "technical", CreatedAt: now, UpdatedAt: now, ResolvedAt: &resolvedToday},
		{ID: "e", Status: "closed", Priority: "normal", Category: "technical", CreatedAt: now, UpdatedAt: now, ResolvedAt: &yesterday},
	}
	require.NoError(t, f.store.Set(ctx, models.TicketsKey, records))

	stats, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.StatsDTO{
		OpenTickets:          2,
		UrgentTickets:        1,
		WaitingResponse:      1,
		AvgFirstResponseTime: f.seed.AvgFirstResponseTime,
		ResolvedToday:        1,
		SLABreached:          1,
	}, *stats)
}

func TestService_Dashboard(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	board, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)

	require.NotEmpty(t, board.NeedsAttention)
	assert.LessOrEqual(t, len(board.NeedsAttention), 5)
	for _, tk := range board.NeedsAttention {
		assert.True(t, tk.Priority == "urgent" || tk.SLABreached)
	}

	require.Len(t, board.RecentlyActive, 5)
	for i := 1; i < len(board.RecentlyActive); i++ {
		assert.False(t, board.RecentlyActive[i].UpdatedAt.After(board.RecentlyActive[i-1].UpdatedAt))
	}

	stats, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, *stats, board.Stats)
}

func TestService_Admins(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	admins := f.svc.GetAdmins(ctx)
	require.Len(t, admins, len(f.seed.Admins))

	admin, err := f.svc.GetAdminByID(ctx, admins[0].ID)
	require.NoError(t, err)
	assert.Equal(t, admins[0], *admin)

	_, err = f.svc.GetAdminByID(ctx, "admin-404")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestService_ExportTranscript(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	clientHTML, err := f.svc.ExportTranscript(ctx, "1", "client")
	require.NoError(t, err)
	assert.Contains(t, clientHTML, "TKT-001")
	assert.Contains(t, clientHTML, "John Smith")
	assert.NotContains(t, clientHTML, "internal note")
	assert.NotContains(t, clientHTML, "stale session token")

	adminHTML, err := f.svc.ExportTranscript(ctx, "1", "admin")
	require.NoError(t, err)
	assert.Contains(t, adminHTML, "internal note")
	assert.Contains(t, adminHTML, "<strong>all sessions</strong>")

	_, err = f.svc.AddMessage(ctx, "1", dto.AddMessageRequest{
		Content:    "<script>alert('x')</script>",
		Sender:     "client",
		SenderName: "John Smith",
	})
	require.NoError(t, err)
	exported, err := f.svc.ExportTranscript(ctx, "1", "client")
	require.NoError(t, err)
	assert.False(t, strings.Contains(exported, "<script>"))

	_, err = f.svc.ExportTranscript(ctx, "missing", "admin")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestService_ExportTranscript_Attachments(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.svc.AddMessage(ctx, "1", dto.AddMessageRequest{
		Content:    "Both captures attached.",
		Sender:     "client",
		SenderName: "John Smith",
		Attachments: []dto.AttachmentDTO{
			{ID: "att-1", Name: "payload.json", URL: "file:///tmp/payload.json", Type: "application/json", Size: 2048},
			{ID: "att-2", Name: "trace.har", URL: "https://files.example.com/trace.har", Type: "application/json", Size: 512},
		},
	})
	require.NoError(t, err)

	exported, err := f.svc.ExportTranscript(ctx, "1", "client")
	require.NoError(t, err)

	assert.Contains(t, exported, "<li>payload.json (application/json, 2048 bytes)</li>")
	assert.Contains(t, exported, `<a href="https://files.example.com/trace.har">trace.har</a>`)
	assert.NotContains(t, exported, "file://")
	assert.NotContains(t, exported, "ZgotmplZ")
}

func TestService_ConcurrentCreatesGetDistinctNumbers(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	var wg sync.WaitGroup
	numbers := make(chan string, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := f.svc.CreateTicket(ctx, loginBroken())
			if assert.NoError(t, err) {
				numbers <- created.TicketNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for n := range numbers {
		assert.False(t, seen[n], "duplicate number %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, 20)
}
