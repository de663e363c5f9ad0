package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Attachment is an immutable file reference carried by a message.
type Attachment struct {
	ID   string
	Name string
	URL  string
	Type string
	Size int64
}

// Audience tells who may read a message.
type Audience string

const (
	AudiencePublic   Audience = "public"
	AudienceInternal Audience = "internal"
)

type Message struct {
	id           string
	ticketID     string
	content      string
	sender       vo.MessageSender
	senderName   string
	senderAvatar *string
	isInternal   bool
	attachments  []Attachment
	createdAt    time.Time
	aiGenerated  *bool
}

func NewMessage(
	id string,
	ticketID string,
	content string,
	sender vo.MessageSender,
	senderName string,
	isInternal bool,
	attachments []Attachment,
	now time.Time,
) (*Message, error) {
	if id == "" {
		return nil, fmt.Errorf("message ID is required")
	}
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:          id,
		ticketID:    ticketID,
		content:     content,
		sender:      sender,
		senderName:  senderName,
		isInternal:  isInternal,
		attachments: copyAttachments(attachments),
		createdAt:   now,
	}, nil
}

// MessageState carries every persisted attribute of a message.
type MessageState struct {
	ID           string
	TicketID     string
	Content      string
	Sender       vo.MessageSender
	SenderName   string
	SenderAvatar *string
	IsInternal   bool
	Attachments  []Attachment
	CreatedAt    time.Time
	AIGenerated  *bool
}

func ReconstructMessage(s MessageState) (*Message, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("message ID is required")
	}

	return &Message{
		id:           s.ID,
		ticketID:     s.TicketID,
		content:      s.Content,
		sender:       s.Sender,
		senderName:   s.SenderName,
		senderAvatar: s.SenderAvatar,
		isInternal:   s.IsInternal,
		attachments:  copyAttachments(s.Attachments),
		createdAt:    s.CreatedAt,
		aiGenerated:  s.AIGenerated,
	}, nil
}

func (m *Message) ID() string {
	return m.id
}

func (m *Message) TicketID() string {
	return m.ticketID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) Sender() vo.MessageSender {
	return m.sender
}

func (m *Message) SenderName() string {
	return m.senderName
}

func (m *Message) SenderAvatar() *string {
	return m.senderAvatar
}

func (m *Message) IsInternal() bool {
	return m.isInternal
}

func (m *Message) Attachments() []Attachment {
	return copyAttachments(m.attachments)
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) AIGenerated() bool {
	return m.aiGenerated != nil && *m.aiGenerated
}

func (m *Message) Audience() Audience {
	if m.isInternal {
		return AudienceInternal
	}
	return AudiencePublic
}

func (m *Message) State() MessageState {
	return MessageState{
		ID:           m.id,
		TicketID:     m.ticketID,
		Content:      m.content,
		Sender:       m.sender,
		SenderName:   m.senderName,
		SenderAvatar: m.senderAvatar,
		IsInternal:   m.isInternal,
		Attachments:  m.Attachments(),
		CreatedAt:    m.createdAt,
		AIGenerated:  m.aiGenerated,
	}
}

func copyAttachments(in []Attachment) []Attachment {
	out := make([]Attachment, len(in))
	copy(out, in)
	return out
}

// VisibleTo reports whether policy lets role read this message.
func (m *Message) VisibleTo(policy VisibilityPolicy, role vo.ViewerRole) (bool, error) {
	return policy.CanRead(role, m.Audience())
}
