package ticket

import (
	"strings"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// TicketFilter narrows a ticket list. Zero values match everything.
type TicketFilter struct {
	CompanyID string
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	Category  *vo.Category
	// Search is matched case-insensitively against the ticket number,
	// subject and company name.
	Search string
}

func (f TicketFilter) Matches(t *Ticket) bool {
	if f.CompanyID != "" && t.CompanyID() != f.CompanyID {
		return false
	}
	if f.Status != nil && t.Status() != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority() != *f.Priority {
		return false
	}
	if f.Category != nil && t.Category() != *f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}

	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(t.Number()), q) ||
		strings.Contains(strings.ToLower(t.Subject()), q) ||
		strings.Contains(strings.ToLower(t.CompanyName()), q)
}

// Apply returns the matching tickets in their original order.
func (f TicketFilter) Apply(tickets []*Ticket) []*Ticket {
	result := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}
