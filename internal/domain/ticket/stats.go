package ticket

import (
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Stats is derived from the ticket collection on demand and never stored.
type Stats struct {
	OpenTickets          int
	UrgentTickets        int
	WaitingResponse      int
	AvgFirstResponseTime string
	ResolvedToday        int
	SLABreached          int
}

// ComputeStats counts by exact status and priority match. The average first
// response time is reported as supplied, not derived from timestamps.
func ComputeStats(tickets []*Ticket, now time.Time, loc *time.Location, avgFirstResponseTime string) Stats {
	stats := Stats{AvgFirstResponseTime: avgFirstResponseTime}

	for _, t := range tickets {
		if t.Status() == vo.StatusOpen {
			stats.OpenTickets++
		}
		if t.Status() == vo.StatusWaitingResponse {
			stats.WaitingResponse++
		}
		if t.Priority() == vo.PriorityUrgent {
			stats.UrgentTickets++
		}
		if t.SLABreached() {
			stats.SLABreached++
		}
		if t.ResolvedOn(now, loc) {
			stats.ResolvedToday++
		}
	}

	return stats
}
