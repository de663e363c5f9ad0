package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen            TicketStatus = "open"
	StatusInProgress      TicketStatus = "in_progress"
	StatusWaitingResponse TicketStatus = "waiting_response"
	StatusResolved        TicketStatus = "resolved"
	StatusClosed          TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:            true,
	StatusInProgress:      true,
	StatusWaitingResponse: true,
	StatusResolved:        true,
	StatusClosed:          true,
}

// AllStatuses lists the statuses in lifecycle order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{
		StatusOpen,
		StatusInProgress,
		StatusWaitingResponse,
		StatusResolved,
		StatusClosed,
	}
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsWaitingResponse() bool {
	return ts == StatusWaitingResponse
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
