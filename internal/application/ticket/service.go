// Package ticket is the ticket store: every read and write of tickets,
// message threads, statistics and the admin directory goes through Service.
package ticket

import (
	"context"
	"sync"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

// Options tunes a Service. Zero values pick the defaults.
type Options struct {
	// Clock defaults to biztime.NowUTC.
	Clock usecases.Clock
	// Location decides calendar days for stats; defaults to biztime.Location().
	Location             *time.Location
	AvgFirstResponseTime string
	NewTicketID          usecases.IDGenerator
	NewMessageID         usecases.IDGenerator
}

type Service struct {
	logger logger.Interface

	// Serializes read-modify-write cycles within this process. Storage has
	// no transactions, so separate processes still race.
	writeMu sync.Mutex

	initMockData     *usecases.InitMockDataUseCase
	listTickets      *usecases.ListTicketsUseCase
	getTicket        *usecases.GetTicketUseCase
	createTicket     *usecases.CreateTicketUseCase
	updateTicket     *usecases.UpdateTicketUseCase
	addMessage       *usecases.AddMessageUseCase
	getMessages      *usecases.GetMessagesUseCase
	getStats         *usecases.GetStatsUseCase
	admins           *usecases.AdminsUseCase
	dashboard        *usecases.DashboardUseCase
	exportTranscript *usecases.ExportTranscriptUseCase
}

func NewService(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	numbers ticket.NumberGenerator,
	directory usecases.AdminDirectory,
	policy ticket.VisibilityPolicy,
	renderer usecases.MarkdownRenderer,
	opts Options,
	logger logger.Interface,
) *Service {
	if opts.Clock == nil {
		opts.Clock = biztime.NowUTC
	}
	if opts.Location == nil {
		opts.Location = biztime.Location()
	}
	if opts.NewTicketID == nil {
		opts.NewTicketID = id.NewTicketID
	}
	if opts.NewMessageID == nil {
		opts.NewMessageID = id.NewMessageID
	}

	getTicket := usecases.NewGetTicketUseCase(ticketRepo, logger)
	getMessages := usecases.NewGetMessagesUseCase(messageRepo, policy, logger)
	getStats := usecases.NewGetStatsUseCase(ticketRepo, opts.Clock, opts.Location, opts.AvgFirstResponseTime, logger)

	return &Service{
		logger: logger,

		initMockData:     usecases.NewInitMockDataUseCase(ticketRepo, messageRepo, logger),
		listTickets:      usecases.NewListTicketsUseCase(ticketRepo, logger),
		getTicket:        getTicket,
		createTicket:     usecases.NewCreateTicketUseCase(ticketRepo, numbers, opts.NewTicketID, opts.Clock, logger),
		updateTicket:     usecases.NewUpdateTicketUseCase(ticketRepo, opts.Clock, logger),
		addMessage:       usecases.NewAddMessageUseCase(ticketRepo, messageRepo, opts.NewMessageID, opts.Clock, logger),
		getMessages:      getMessages,
		getStats:         getStats,
		admins:           usecases.NewAdminsUseCase(directory),
		dashboard:        usecases.NewDashboardUseCase(ticketRepo, getStats, logger),
		exportTranscript: usecases.NewExportTranscriptUseCase(getTicket, getMessages, renderer, opts.Location, logger),
	}
}

// InitMockData seeds storage once; keys that already hold a value are left
// untouched.
func (s *Service) InitMockData(ctx context.Context) (*usecases.InitMockDataResult, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.initMockData.Execute(ctx)
}

func (s *Service) ListAllTickets(ctx context.Context) ([]dto.TicketDTO, error) {
	return s.listTickets.Execute(ctx)
}

func (s *Service) ListTicketsByCompany(ctx context.Context, companyID string) ([]dto.TicketDTO, error) {
	return s.listTickets.ExecuteByCompany(ctx, companyID)
}

func (s *Service) FilterTickets(ctx context.Context, req dto.FilterRequest) ([]dto.TicketDTO, error) {
	return s.listTickets.ExecuteFiltered(ctx, req)
}

// GetTicketByID returns a not-found AppError when no ticket has the id.
func (s *Service) GetTicketByID(ctx context.Context, ticketID string) (*dto.TicketDTO, error) {
	return s.getTicket.Execute(ctx, ticketID)
}

func (s *Service) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*dto.TicketDTO, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.createTicket.Execute(ctx, req)
}

// UpdateTicket returns a not-found AppError when no ticket has the id.
func (s *Service) UpdateTicket(ctx context.Context, ticketID string, req dto.UpdateTicketRequest) (*dto.TicketDTO, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.updateTicket.Execute(ctx, ticketID, req)
}

func (s *Service) GetMessages(ctx context.Context, ticketID string) ([]dto.MessageDTO, error) {
	return s.getMessages.Execute(ctx, ticketID)
}

// GetConversation returns the messages role may read; clients never see
// internal notes.
func (s *Service) GetConversation(ctx context.Context, ticketID string, role string) ([]dto.MessageDTO, error) {
	return s.getMessages.ExecuteForViewer(ctx, ticketID, role)
}

func (s *Service) AddMessage(ctx context.Context, ticketID string, req dto.AddMessageRequest) (*dto.MessageDTO, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.addMessage.Execute(ctx, ticketID, req)
}

func (s *Service) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	return s.getStats.Execute(ctx)
}

func (s *Service) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	return s.dashboard.Execute(ctx)
}

func (s *Service) GetAdmins(ctx context.Context) []dto.AdminDTO {
	return s.admins.List(ctx)
}

// GetAdminByID returns a not-found AppError when no admin has the id.
func (s *Service) GetAdminByID(ctx context.Context, adminID string) (*dto.AdminDTO, error) {
	return s.admins.GetByID(ctx, adminID)
}

func (s *Service) ExportTranscript(ctx context.Context, ticketID string, role string) (string, error) {
	return s.exportTranscript.Execute(ctx, ticketID, role)
}
