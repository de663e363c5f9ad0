package mappers

import (
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/mapper"
)

// TicketMapper converts between ticket domain entities and stored records.
type TicketMapper interface {
	ToRecord(t *ticket.Ticket) models.TicketRecord
	ToDomain(record models.TicketRecord) (*ticket.Ticket, error)
	ToRecords(tickets []*ticket.Ticket) []models.TicketRecord
	ToDomainList(records []models.TicketRecord) ([]*ticket.Ticket, error)

	MessageToRecord(m *ticket.Message) models.MessageRecord
	MessageToDomain(record models.MessageRecord) (*ticket.Message, error)
	ThreadsToRecords(threads map[string][]*ticket.Message) map[string][]models.MessageRecord
	ThreadsToDomain(records map[string][]models.MessageRecord) (map[string][]*ticket.Message, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToRecord(t *ticket.Ticket) models.TicketRecord {
	s := t.State()
	return models.TicketRecord{
		ID:                s.ID,
		TicketNumber:      s.Number,
		Subject:           s.Subject,
		Description:       s.Description,
		Status:            s.Status.String(),
		Priority:          s.Priority.String(),
		Category:          s.Category.String(),
		CompanyID:         s.Requester.CompanyID,
		CompanyName:       s.Requester.CompanyName,
		ClientID:          s.Requester.ClientID,
		ClientName:        s.Requester.ClientName,
		ClientEmail:       s.Requester.ClientEmail,
		AssignedAdminID:   s.AssignedAdminID,
		AssignedAdminName: s.AssignedAdminName,
		Tags:              s.Tags,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		FirstResponseAt:   s.FirstResponseAt,
		ResolvedAt:        s.ResolvedAt,
		SLABreached:       s.SLABreached,
		UnreadCount:       s.UnreadCount,
	}
}

func (m *TicketMapperImpl) ToDomain(record models.TicketRecord) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(record.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", record.ID, err)
	}
	priority, err := vo.NewPriority(record.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", record.ID, err)
	}
	category, err := vo.NewCategory(record.Category)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", record.ID, err)
	}

	return ticket.ReconstructTicket(ticket.TicketState{
		ID:          record.ID,
		Number:      record.TicketNumber,
		Subject:     record.Subject,
		Description: record.Description,
		Status:      status,
		Priority:    priority,
		Category:    category,
		Requester: ticket.Requester{
			CompanyID:   record.CompanyID,
			CompanyName: record.CompanyName,
			ClientID:    record.ClientID,
			ClientName:  record.ClientName,
			ClientEmail: record.ClientEmail,
		},
		AssignedAdminID:   record.AssignedAdminID,
		AssignedAdminName: record.AssignedAdminName,
		Tags:              record.Tags,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
		FirstResponseAt:   record.FirstResponseAt,
		ResolvedAt:        record.ResolvedAt,
		SLABreached:       record.SLABreached,
		UnreadCount:       record.UnreadCount,
	})
}

func (m *TicketMapperImpl) ToRecords(tickets []*ticket.Ticket) []models.TicketRecord {
	return mapper.MapSlice(tickets, m.ToRecord)
}

func (m *TicketMapperImpl) ToDomainList(records []models.TicketRecord) ([]*ticket.Ticket, error) {
	return mapper.MapSliceWithError(records, m.ToDomain)
}

func (m *TicketMapperImpl) MessageToRecord(msg *ticket.Message) models.MessageRecord {
	s := msg.State()
	attachments := mapper.MapSlice(s.Attachments, func(a ticket.Attachment) models.AttachmentRecord {
		return models.AttachmentRecord{ID: a.ID, Name: a.Name, URL: a.URL, Type: a.Type, Size: a.Size}
	})
	return models.MessageRecord{
		ID:           s.ID,
		TicketID:     s.TicketID,
		Content:      s.Content,
		Sender:       s.Sender.String(),
		SenderName:   s.SenderName,
		SenderAvatar: s.SenderAvatar,
		IsInternal:   s.IsInternal,
		CreatedAt:    s.CreatedAt,
		AIGenerated:  s.AIGenerated,
		Attachments:  attachments,
	}
}

func (m *TicketMapperImpl) MessageToDomain(record models.MessageRecord) (*ticket.Message, error) {
	sender, err := vo.NewMessageSender(record.Sender)
	if err != nil {
		return nil, fmt.Errorf("message %s: %w", record.ID, err)
	}

	attachments := mapper.MapSlice(record.Attachments, func(a models.AttachmentRecord) ticket.Attachment {
		return ticket.Attachment{ID: a.ID, Name: a.Name, URL: a.URL, Type: a.Type, Size: a.Size}
	})

	return ticket.ReconstructMessage(ticket.MessageState{
		ID:           record.ID,
		TicketID:     record.TicketID,
		Content:      record.Content,
		Sender:       sender,
		SenderName:   record.SenderName,
		SenderAvatar: record.SenderAvatar,
		IsInternal:   record.IsInternal,
		Attachments:  attachments,
		CreatedAt:    record.CreatedAt,
		AIGenerated:  record.AIGenerated,
	})
}

func (m *TicketMapperImpl) ThreadsToRecords(threads map[string][]*ticket.Message) map[string][]models.MessageRecord {
	return mapper.MapValues(threads, m.MessageToRecord)
}

func (m *TicketMapperImpl) ThreadsToDomain(records map[string][]models.MessageRecord) (map[string][]*ticket.Message, error) {
	return mapper.MapValuesWithError(records, m.MessageToDomain)
}
