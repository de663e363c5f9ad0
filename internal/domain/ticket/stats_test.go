package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestComputeStats_Fixture(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	states := []TicketState{
		{ID: "1", Status: vo.StatusOpen, Priority: vo.PriorityUrgent},
		{ID: "2", Status: vo.StatusOpen, Priority: vo.PriorityNormal, SLABreached: true},
		{ID: "3", Status: vo.StatusWaitingResponse, Priority: vo.PriorityHigh},
		{ID: "4", Status: vo.StatusResolved, Priority: vo.PriorityLow, ResolvedAt: &now},
		{ID: "5", Status: vo.StatusClosed, Priority: vo.PriorityLow, ResolvedAt: &yesterday},
	}
	tickets := make([]*Ticket, 0, len(states))
	for _, s := range states {
		tk, err := ReconstructTicket(s)
		require.NoError(t, err)
		tickets = append(tickets, tk)
	}

	stats := ComputeStats(tickets, now, time.Local, "2.4h")

	assert.Equal(t, Stats{
		OpenTickets:          2,
		UrgentTickets:        1,
		WaitingResponse:      1,
		AvgFirstResponseTime: "2.4h",
		ResolvedToday:        1,
		SLABreached:          1,
	}, stats)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now(), time.UTC, "")
	assert.Equal(t, Stats{}, stats)
}
