package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/dto"
)

func sampleTicket() dto.TicketDTO {
	admin := "Sarah Chen"
	return dto.TicketDTO{
		ID:                "1",
		TicketNumber:      "TKT-001",
		Subject:           "Cannot log in",
		Description:       "Login fails after reset",
		Status:            "waiting_response",
		Priority:          "urgent",
		Category:          "feature_request",
		CompanyName:       "Acme Corp",
		AssignedAdminName: &admin,
		Tags:              []string{"login", "sso"},
		CreatedAt:         time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		UpdatedAt:         time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		SLABreached:       true,
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"open", "Open"},
		{"waiting_response", "Waiting Response"},
		{"in_progress", "In Progress"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.in))
		})
	}

	assert.Equal(t, "Bug Report", CategoryLabel("bug_report"))
	assert.Equal(t, "Mystery Box", CategoryLabel("mystery_box"))
}

func TestPrinter_TicketsTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, time.UTC)

	require.NoError(t, p.Tickets([]dto.TicketDTO{sampleTicket()}))

	out := buf.String()
	assert.Contains(t, out, "NUMBER")
	assert.Contains(t, out, "TKT-001")
	assert.Contains(t, out, "Waiting Response (SLA)")
	assert.Contains(t, out, "Feature Request")
	assert.Contains(t, out, "Sarah Chen")
	assert.Contains(t, out, "2024-01-15 10:00")
}

func TestPrinter_TicketsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false, nil).Tickets(nil))
	assert.Equal(t, "No tickets.\n", buf.String())
}

func TestPrinter_TimesUseLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	var buf bytes.Buffer

	tk := sampleTicket()
	require.NoError(t, NewPrinter(&buf, false, loc).Ticket(&tk))

	assert.Contains(t, buf.String(), "2024-01-15 18:00")
	assert.Contains(t, buf.String(), "login, sso")
	assert.Contains(t, buf.String(), "Login fails after reset")
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, nil)

	require.NoError(t, p.Tickets([]dto.TicketDTO{sampleTicket()}))

	var decoded []dto.TicketDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "TKT-001", decoded[0].TicketNumber)
	assert.True(t, decoded[0].SLABreached)
}

func TestPrinter_MessagesMarksInternalAndAI(t *testing.T) {
	ai := true
	messages := []dto.MessageDTO{
		{
			SenderName: "Jane",
			Sender:     "client",
			Content:    "Help",
			CreatedAt:  time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			SenderName:  "Assistant",
			Sender:      "ai",
			Content:     "Try clearing sessions",
			IsInternal:  true,
			AIGenerated: &ai,
			Attachments: []dto.AttachmentDTO{{Name: "log.txt", Type: "text/plain", Size: 12, URL: "file:///tmp/log.txt"}},
			CreatedAt:   time.Date(2024, 1, 15, 9, 5, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false, nil).Messages(messages))

	out := buf.String()
	assert.Contains(t, out, "--- Jane [client] 2024-01-15 09:00\nHelp\n")
	assert.Contains(t, out, "(internal, ai)")
	assert.Contains(t, out, "attachment: log.txt (text/plain, 12 bytes) file:///tmp/log.txt")
}

func TestPrinter_Stats(t *testing.T) {
	var buf bytes.Buffer
	s := &dto.StatsDTO{OpenTickets: 2, UrgentTickets: 1, AvgFirstResponseTime: "2.4h"}

	require.NoError(t, NewPrinter(&buf, false, nil).Stats(s))

	assert.Regexp(t, `Open:\s+2`, buf.String())
	assert.Regexp(t, `Avg first response:\s+2.4h`, buf.String())
}
