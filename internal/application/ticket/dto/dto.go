package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/mapper"
	"helpdesk/internal/shared/utils"
)

type TicketDTO struct {
	ID                string     `json:"id"`
	TicketNumber      string     `json:"ticketNumber"`
	Subject           string     `json:"subject"`
	Description       string     `json:"description"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	Category          string     `json:"category"`
	CompanyID         string     `json:"companyId"`
	CompanyName       string     `json:"companyName"`
	ClientID          string     `json:"clientId"`
	ClientName        string     `json:"clientName"`
	ClientEmail       string     `json:"clientEmail"`
	AssignedAdminID   *string    `json:"assignedAdminId,omitempty"`
	AssignedAdminName *string    `json:"assignedAdminName,omitempty"`
	Tags              []string   `json:"tags"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	FirstResponseAt   *time.Time `json:"firstResponseAt,omitempty"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	SLABreached       bool       `json:"slaBreached"`
	UnreadCount       int        `json:"unreadCount"`
}

type AttachmentDTO struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
	Type string `json:"type"`
	Size int64  `json:"size" validate:"gte=0"`
}

type MessageDTO struct {
	ID           string          `json:"id"`
	TicketID     string          `json:"ticketId"`
	Content      string          `json:"content"`
	Sender       string          `json:"sender"`
	SenderName   string          `json:"senderName"`
	SenderAvatar *string         `json:"senderAvatar,omitempty"`
	IsInternal   bool            `json:"isInternal"`
	Attachments  []AttachmentDTO `json:"attachments"`
	CreatedAt    time.Time       `json:"createdAt"`
	AIGenerated  *bool           `json:"aiGenerated,omitempty"`
}

type AdminDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Avatar      *string `json:"avatar,omitempty"`
	TicketCount int     `json:"ticketCount"`
}

type StatsDTO struct {
	OpenTickets          int    `json:"openTickets"`
	UrgentTickets        int    `json:"urgentTickets"`
	WaitingResponse      int    `json:"waitingResponse"`
	AvgFirstResponseTime string `json:"avgFirstResponseTime"`
	ResolvedToday        int    `json:"resolvedToday"`
	SLABreached          int    `json:"slaBreached"`
}

// DashboardDTO is the admin landing view.
type DashboardDTO struct {
	Stats          StatsDTO    `json:"stats"`
	NeedsAttention []TicketDTO `json:"needsAttention"`
	RecentlyActive []TicketDTO `json:"recentlyActive"`
}

// CreateTicketRequest carries what a client submits. Enum fields must name a
// known value; the remaining fields are only checked by Validate.
type CreateTicketRequest struct {
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
	Category    string `json:"category" validate:"required,oneof=technical billing general feature_request bug_report"`
	Priority    string `json:"priority" validate:"required,oneof=low normal high urgent"`
	CompanyID   string `json:"companyId" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	ClientID    string `json:"clientId" validate:"required"`
	ClientName  string `json:"clientName" validate:"required"`
	ClientEmail string `json:"clientEmail" validate:"required,email"`
}

// UpdateTicketRequest is a partial update; nil fields are left unchanged. An
// empty assignee string unassigns, and a non-nil empty Tags clears the tags.
type UpdateTicketRequest struct {
	Status            *string  `json:"status,omitempty" validate:"omitempty,oneof=open in_progress waiting_response resolved closed"`
	Priority          *string  `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	AssignedAdminID   *string  `json:"assignedAdminId,omitempty"`
	AssignedAdminName *string  `json:"assignedAdminName,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

type AddMessageRequest struct {
	Content     string          `json:"content" validate:"required"`
	Sender      string          `json:"sender" validate:"required,oneof=client admin ai system"`
	SenderName  string          `json:"senderName" validate:"required"`
	IsInternal  bool            `json:"isInternal"`
	Attachments []AttachmentDTO `json:"attachments,omitempty" validate:"dive"`
}

// FilterRequest narrows a ticket list. Empty fields match everything.
type FilterRequest struct {
	CompanyID string `json:"companyId,omitempty"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress waiting_response resolved closed"`
	Priority  string `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	Category  string `json:"category,omitempty" validate:"omitempty,oneof=technical billing general feature_request bug_report"`
	Search    string `json:"search,omitempty"`
}

// Validate applies the form rules of a request. The store itself accepts any
// payload; callers that collect input from users run this first.
func Validate(req interface{}) error {
	return utils.ValidateStruct(req)
}

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	s := t.State()
	return TicketDTO{
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

func ToTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	return mapper.MapSlice(tickets, ToTicketDTO)
}

func ToMessageDTO(m *ticket.Message) MessageDTO {
	s := m.State()
	attachments := mapper.MapSlice(s.Attachments, func(a ticket.Attachment) AttachmentDTO {
		return AttachmentDTO{ID: a.ID, Name: a.Name, URL: a.URL, Type: a.Type, Size: a.Size}
	})
	return MessageDTO{
		ID:           s.ID,
		TicketID:     s.TicketID,
		Content:      s.Content,
		Sender:       s.Sender.String(),
		SenderName:   s.SenderName,
		SenderAvatar: s.SenderAvatar,
		IsInternal:   s.IsInternal,
		Attachments:  attachments,
		CreatedAt:    s.CreatedAt,
		AIGenerated:  s.AIGenerated,
	}
}

func ToMessageDTOs(messages []*ticket.Message) []MessageDTO {
	return mapper.MapSlice(messages, ToMessageDTO)
}

func ToAdminDTO(a ticket.Admin) AdminDTO {
	return AdminDTO{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Avatar:      a.Avatar,
		TicketCount: a.TicketCount,
	}
}

func ToStatsDTO(s ticket.Stats) StatsDTO {
	return StatsDTO{
		OpenTickets:          s.OpenTickets,
		UrgentTickets:        s.UrgentTickets,
		WaitingResponse:      s.WaitingResponse,
		AvgFirstResponseTime: s.AvgFirstResponseTime,
		ResolvedToday:        s.ResolvedToday,
		SLABreached:          s.SLABreached,
	}
}

func (a AttachmentDTO) ToDomain() ticket.Attachment {
	return ticket.Attachment{
		ID:   a.ID,
		Name: a.Name,
		URL:  a.URL,
		Type: a.Type,
		Size: a.Size,
	}
}
