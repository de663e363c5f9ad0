package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Requester identifies the company and client contact that opened a ticket.
type Requester struct {
	CompanyID   string
	CompanyName string
	ClientID    string
	ClientName  string
	ClientEmail string
}

type Ticket struct {
	id                string
	number            string
	subject           string
	description       string
	status            vo.TicketStatus
	priority          vo.Priority
	category          vo.Category
	requester         Requester
	assignedAdminID   *string
	assignedAdminName *string
	tags              []string
	createdAt         time.Time
	updatedAt         time.Time
	firstResponseAt   *time.Time
	resolvedAt        *time.Time
	slaBreached       bool
	unreadCount       int
}

// NewTicket builds a freshly opened ticket. Payload fields are taken as
// given; only the system-assigned id and number are required.
func NewTicket(
	id string,
	number string,
	subject string,
	description string,
	category vo.Category,
	priority vo.Priority,
	requester Requester,
	now time.Time,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}

	return &Ticket{
		id:          id,
		number:      number,
		subject:     subject,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		category:    category,
		requester:   requester,
		tags:        []string{},
		createdAt:   now,
		updatedAt:   now,
		slaBreached: false,
		unreadCount: 0,
	}, nil
}

// TicketState carries every persisted attribute of a ticket.
type TicketState struct {
	ID                string
	Number            string
	Subject           string
	Description       string
	Status            vo.TicketStatus
	Priority          vo.Priority
	Category          vo.Category
	Requester         Requester
	AssignedAdminID   *string
	AssignedAdminName *string
	Tags              []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	FirstResponseAt   *time.Time
	ResolvedAt        *time.Time
	SLABreached       bool
	UnreadCount       int
}

func ReconstructTicket(s TicketState) (*Ticket, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if s.UnreadCount < 0 {
		return nil, fmt.Errorf("unread count cannot be negative")
	}

	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:                s.ID,
		number:            s.Number,
		subject:           s.Subject,
		description:       s.Description,
		status:            s.Status,
		priority:          s.Priority,
		category:          s.Category,
		requester:         s.Requester,
		assignedAdminID:   s.AssignedAdminID,
		assignedAdminName: s.AssignedAdminName,
		tags:              tags,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		firstResponseAt:   s.FirstResponseAt,
		resolvedAt:        s.ResolvedAt,
		slaBreached:       s.SLABreached,
		unreadCount:       s.UnreadCount,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Requester() Requester {
	return t.requester
}

func (t *Ticket) CompanyID() string {
	return t.requester.CompanyID
}

func (t *Ticket) CompanyName() string {
	return t.requester.CompanyName
}

func (t *Ticket) AssignedAdminID() *string {
	return t.assignedAdminID
}

func (t *Ticket) AssignedAdminName() *string {
	return t.assignedAdminName
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) FirstResponseAt() *time.Time {
	return t.firstResponseAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) SLABreached() bool {
	return t.slaBreached
}

func (t *Ticket) UnreadCount() int {
	return t.unreadCount
}

// State returns a copy of the ticket's attributes for persistence.
func (t *Ticket) State() TicketState {
	return TicketState{
		ID:                t.id,
		Number:            t.number,
		Subject:           t.subject,
		Description:       t.description,
		Status:            t.status,
		Priority:          t.priority,
		Category:          t.category,
		Requester:         t.requester,
		AssignedAdminID:   t.assignedAdminID,
		AssignedAdminName: t.assignedAdminName,
		Tags:              t.Tags(),
		CreatedAt:         t.createdAt,
		UpdatedAt:         t.updatedAt,
		FirstResponseAt:   t.firstResponseAt,
		ResolvedAt:        t.resolvedAt,
		SLABreached:       t.slaBreached,
		UnreadCount:       t.unreadCount,
	}
}

// TicketUpdate is the set of fields an update may touch. Nil means "leave
// unchanged"; a non-nil empty Tags slice clears the tags, and an empty
// assignee string clears the assignment.
type TicketUpdate struct {
	Status            *vo.TicketStatus
	Priority          *vo.Priority
	AssignedAdminID   *string
	AssignedAdminName *string
	Tags              []string
}

// ApplyUpdate merges the provided fields and refreshes updatedAt.
func (t *Ticket) ApplyUpdate(u TicketUpdate, now time.Time) {
	if u.Status != nil {
		t.status = *u.Status
	}
	if u.Priority != nil {
		t.priority = *u.Priority
	}
	if u.AssignedAdminID != nil {
		t.assignedAdminID = optionalString(*u.AssignedAdminID)
	}
	if u.AssignedAdminName != nil {
		t.assignedAdminName = optionalString(*u.AssignedAdminName)
	}
	if u.Tags != nil {
		t.tags = make([]string, len(u.Tags))
		copy(t.tags, u.Tags)
	}
	t.touch(now)
}

// RecordMessage reflects a newly appended conversation entry. Internal
// notes never change the unread count.
func (t *Ticket) RecordMessage(isInternal bool, now time.Time) {
	t.touch(now)
	if !isInternal {
		t.unreadCount++
	}
}

// ResolvedOn reports whether the ticket was resolved on the calendar date
// of day, evaluated in loc.
func (t *Ticket) ResolvedOn(day time.Time, loc *time.Location) bool {
	if t.resolvedAt == nil {
		return false
	}
	ry, rm, rd := t.resolvedAt.In(loc).Date()
	dy, dm, dd := day.In(loc).Date()
	return ry == dy && rm == dm && rd == dd
}

// NeedsAttention marks urgent or SLA-breached tickets.
func (t *Ticket) NeedsAttention() bool {
	return t.priority.IsUrgent() || t.slaBreached
}

// updatedAt never moves backwards, even if the clock does.
func (t *Ticket) touch(now time.Time) {
	if now.After(t.updatedAt) {
		t.updatedAt = now
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
