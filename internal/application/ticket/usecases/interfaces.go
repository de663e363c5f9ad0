package usecases

import (
	"html/template"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

// Clock returns the current instant.
type Clock func() time.Time

// AdminDirectory lists the static support agents.
type AdminDirectory interface {
	AdminDirectory() []ticket.Admin
}

type MarkdownRenderer interface {
	Render(markdown string) (template.HTML, error)
}

// IDGenerator issues entity ids.
type IDGenerator func() (string, error)

func findTicket(tickets []*ticket.Ticket, id string) (int, *ticket.Ticket) {
	for i, t := range tickets {
		if t.ID() == id {
			return i, t
		}
	}
	return -1, nil
}

func parseStatus(s string) (vo.TicketStatus, error) {
	status, err := vo.NewTicketStatus(s)
	if err != nil {
		return "", errors.NewValidationError("invalid status", s)
	}
	return status, nil
}

func parsePriority(s string) (vo.Priority, error) {
	priority, err := vo.NewPriority(s)
	if err != nil {
		return "", errors.NewValidationError("invalid priority", s)
	}
	return priority, nil
}

func parseCategory(s string) (vo.Category, error) {
	category, err := vo.NewCategory(s)
	if err != nil {
		return "", errors.NewValidationError("invalid category", s)
	}
	return category, nil
}
