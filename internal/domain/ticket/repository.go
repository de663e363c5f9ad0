package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// TicketRepository stores the whole ticket collection as one value; every
// write fully replaces the previous one.
type TicketRepository interface {
	// List returns the collection in insertion order, or the seed
	// collection when nothing has been persisted yet.
	List(ctx context.Context) ([]*Ticket, error)
	SaveAll(ctx context.Context, tickets []*Ticket) error
	IsPersisted(ctx context.Context) (bool, error)
}

// MessageRepository stores every ticket's thread in a single map keyed by
// ticket id.
type MessageRepository interface {
	ListAll(ctx context.Context) (map[string][]*Message, error)
	SaveAll(ctx context.Context, threads map[string][]*Message) error
	IsPersisted(ctx context.Context) (bool, error)
}

type SequenceRepository interface {
	// Next returns max(stored, floor)+1 and persists it.
	Next(ctx context.Context, floor int) (int, error)
}

// VisibilityPolicy decides whether a viewer may read a message audience.
type VisibilityPolicy interface {
	CanRead(role vo.ViewerRole, audience Audience) (bool, error)
}
