package models

import "time"

// Storage keys of the helpdesk collections.
const (
	TicketsKey        = "support_tickets"
	MessagesKey       = "support_ticket_messages"
	TicketSequenceKey = "support_ticket_sequence"
)

// TicketRecord is the stored shape of a ticket inside the tickets array.
type TicketRecord struct {
	ID                string     `json:"id" yaml:"id"`
	TicketNumber      string     `json:"ticketNumber" yaml:"ticketNumber"`
	Subject           string     `json:"subject" yaml:"subject"`
	Description       string     `json:"description" yaml:"description"`
	Status            string     `json:"status" yaml:"status"`
	Priority          string     `json:"priority" yaml:"priority"`
	Category          string     `json:"category" yaml:"category"`
	CompanyID         string     `json:"companyId" yaml:"companyId"`
	CompanyName       string     `json:"companyName" yaml:"companyName"`
	ClientID          string     `json:"clientId" yaml:"clientId"`
	ClientName        string     `json:"clientName" yaml:"clientName"`
	ClientEmail       string     `json:"clientEmail" yaml:"clientEmail"`
	AssignedAdminID   *string    `json:"assignedAdminId,omitempty" yaml:"assignedAdminId,omitempty"`
	AssignedAdminName *string    `json:"assignedAdminName,omitempty" yaml:"assignedAdminName,omitempty"`
	Tags              []string   `json:"tags" yaml:"tags"`
	CreatedAt         time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt" yaml:"updatedAt"`
	FirstResponseAt   *time.Time `json:"firstResponseAt,omitempty" yaml:"firstResponseAt,omitempty"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty" yaml:"resolvedAt,omitempty"`
	SLABreached       bool       `json:"slaBreached" yaml:"slaBreached"`
	UnreadCount       int        `json:"unreadCount" yaml:"unreadCount"`
}

// MessageRecord is the stored shape of a message inside a ticket thread.
type MessageRecord struct {
	ID           string             `json:"id" yaml:"id"`
	TicketID     string             `json:"ticketId" yaml:"ticketId"`
	Content      string             `json:"content" yaml:"content"`
	Sender       string             `json:"sender" yaml:"sender"`
	SenderName   string             `json:"senderName" yaml:"senderName"`
	SenderAvatar *string            `json:"senderAvatar,omitempty" yaml:"senderAvatar,omitempty"`
	IsInternal   bool               `json:"isInternal" yaml:"isInternal"`
	Attachments  []AttachmentRecord `json:"attachments" yaml:"attachments"`
	CreatedAt    time.Time          `json:"createdAt" yaml:"createdAt"`
	AIGenerated  *bool              `json:"aiGenerated,omitempty" yaml:"aiGenerated,omitempty"`
}

type AttachmentRecord struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Type string `json:"type" yaml:"type"`
	Size int64  `json:"size" yaml:"size"`
}

// AdminRecord is a support agent of the static directory.
type AdminRecord struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Email       string  `json:"email" yaml:"email"`
	Avatar      *string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	TicketCount int     `json:"ticketCount" yaml:"ticketCount"`
}
