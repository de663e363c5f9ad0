package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

func TestTicketMapper_RecordToDomainAndBack(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	resolved := created.Add(2 * time.Hour)
	admin := "admin-1"

	record := models.TicketRecord{
		ID:              "1",
		TicketNumber:    "TKT-001",
		Subject:         "Cannot log in",
		Description:     "Login fails",
		Status:          "resolved",
		Priority:        "high",
		Category:        "technical",
		CompanyID:       "company-1",
		CompanyName:     "Acme",
		ClientID:        "client-1",
		ClientName:      "Jane",
		ClientEmail:     "jane@acme.test",
		AssignedAdminID: &admin,
		Tags:            []string{"login"},
		CreatedAt:       created,
		UpdatedAt:       resolved,
		ResolvedAt:      &resolved,
		UnreadCount:     2,
	}

	m := NewTicketMapper()
	tk, err := m.ToDomain(record)
	require.NoError(t, err)

	assert.Equal(t, "TKT-001", tk.Number())
	assert.Equal(t, vo.StatusResolved, tk.Status())
	assert.Equal(t, "Acme", tk.CompanyName())
	assert.Equal(t, 2, tk.UnreadCount())
	require.NotNil(t, tk.ResolvedAt())

	assert.Equal(t, record, m.ToRecord(tk))
}

func TestTicketMapper_ToDomain_InvalidEnum(t *testing.T) {
	m := NewTicketMapper()

	_, err := m.ToDomain(models.TicketRecord{ID: "1", Status: "bogus", Priority: "low", Category: "general"})
	assert.Error(t, err)

	_, err = m.MessageToDomain(models.MessageRecord{ID: "m1", TicketID: "1", Sender: "robot"})
	assert.Error(t, err)
}

func TestTicketMapper_Threads(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	msg, err := ticket.NewMessage("m1", "1", "hello", vo.SenderClient, "Jane", false,
		[]ticket.Attachment{{ID: "a1", Name: "log.txt", URL: "file:///tmp/log.txt", Type: "text/plain", Size: 12}}, now)
	require.NoError(t, err)

	m := NewTicketMapper()
	records := m.ThreadsToRecords(map[string][]*ticket.Message{"1": {msg}, "2": {}})

	require.Len(t, records["1"], 1)
	assert.Equal(t, "client", records["1"][0].Sender)
	assert.Len(t, records["1"][0].Attachments, 1)
	assert.NotNil(t, records["2"])

	threads, err := m.ThreadsToDomain(records)
	require.NoError(t, err)
	require.Len(t, threads["1"], 1)
	assert.Equal(t, msg.State(), threads["1"][0].State())
}
