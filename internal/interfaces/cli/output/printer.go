// Package output renders DTOs for the terminal, either as aligned tables or
// as indented JSON when --json is set.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"helpdesk/internal/application/ticket/dto"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

const timeLayout = "2006-01-02 15:04"

type Printer struct {
	w    io.Writer
	json bool
	loc  *time.Location
}

// NewPrinter writes to w. Times are shown in loc; nil means UTC.
func NewPrinter(w io.Writer, asJSON bool, loc *time.Location) *Printer {
	if loc == nil {
		loc = time.UTC
	}
	return &Printer{w: w, json: asJSON, loc: loc}
}

func (p *Printer) JSON(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) Tickets(tickets []dto.TicketDTO) error {
	if p.json {
		return p.JSON(tickets)
	}
	if len(tickets) == 0 {
		_, err := fmt.Fprintln(p.w, "No tickets.")
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tSTATUS\tPRIORITY\tCATEGORY\tCOMPANY\tASSIGNEE\tUPDATED\tSUBJECT")
	for _, t := range tickets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.TicketNumber,
			statusCell(t),
			Label(t.Priority),
			CategoryLabel(t.Category),
			t.CompanyName,
			deref(t.AssignedAdminName, "-"),
			p.formatTime(t.UpdatedAt),
			t.Subject,
		)
	}
	return tw.Flush()
}

func (p *Printer) Ticket(t *dto.TicketDTO) error {
	if p.json {
		return p.JSON(t)
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Ticket:\t%s (%s)\n", t.TicketNumber, t.ID)
	fmt.Fprintf(tw, "Subject:\t%s\n", t.Subject)
	fmt.Fprintf(tw, "Status:\t%s\n", statusCell(*t))
	fmt.Fprintf(tw, "Priority:\t%s\n", Label(t.Priority))
	fmt.Fprintf(tw, "Category:\t%s\n", CategoryLabel(t.Category))
	fmt.Fprintf(tw, "Company:\t%s (%s)\n", t.CompanyName, t.CompanyID)
	fmt.Fprintf(tw, "Client:\t%s <%s>\n", t.ClientName, t.ClientEmail)
	fmt.Fprintf(tw, "Assignee:\t%s\n", deref(t.AssignedAdminName, "unassigned"))
	if len(t.Tags) > 0 {
		fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(t.Tags, ", "))
	}
	fmt.Fprintf(tw, "Created:\t%s\n", p.formatTime(t.CreatedAt))
	fmt.Fprintf(tw, "Updated:\t%s\n", p.formatTime(t.UpdatedAt))
	if t.FirstResponseAt != nil {
		fmt.Fprintf(tw, "First response:\t%s\n", p.formatTime(*t.FirstResponseAt))
	}
	if t.ResolvedAt != nil {
		fmt.Fprintf(tw, "Resolved:\t%s\n", p.formatTime(*t.ResolvedAt))
	}
	if t.UnreadCount > 0 {
		fmt.Fprintf(tw, "Unread:\t%d\n", t.UnreadCount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.w, "\n%s\n", t.Description)
	return err
}

// Conversation prints a ticket followed by its thread.
func (p *Printer) Conversation(t *dto.TicketDTO, messages []dto.MessageDTO) error {
	if p.json {
		return p.JSON(struct {
			Ticket   *dto.TicketDTO   `json:"ticket"`
			Messages []dto.MessageDTO `json:"messages"`
		}{t, messages})
	}

	if err := p.Ticket(t); err != nil {
		return err
	}
	fmt.Fprintln(p.w)
	return p.Messages(messages)
}

func (p *Printer) Messages(messages []dto.MessageDTO) error {
	if p.json {
		return p.JSON(messages)
	}
	if len(messages) == 0 {
		_, err := fmt.Fprintln(p.w, "No messages.")
		return err
	}

	for i, m := range messages {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		if err := p.message(m); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) Message(m *dto.MessageDTO) error {
	if p.json {
		return p.JSON(m)
	}
	return p.message(*m)
}

func (p *Printer) message(m dto.MessageDTO) error {
	var flags []string
	if m.IsInternal {
		flags = append(flags, "internal")
	}
	if m.AIGenerated != nil && *m.AIGenerated {
		flags = append(flags, "ai")
	}

	header := fmt.Sprintf("--- %s [%s] %s", m.SenderName, m.Sender, p.formatTime(m.CreatedAt))
	if len(flags) > 0 {
		header += " (" + strings.Join(flags, ", ") + ")"
	}
	fmt.Fprintln(p.w, header)
	fmt.Fprintln(p.w, m.Content)
	for _, a := range m.Attachments {
		fmt.Fprintf(p.w, "  attachment: %s (%s, %d bytes) %s\n", a.Name, a.Type, a.Size, a.URL)
	}
	return nil
}

func (p *Printer) Stats(s *dto.StatsDTO) error {
	if p.json {
		return p.JSON(s)
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Open:\t%d\n", s.OpenTickets)
	fmt.Fprintf(tw, "Urgent:\t%d\n", s.UrgentTickets)
	fmt.Fprintf(tw, "Waiting response:\t%d\n", s.WaitingResponse)
	fmt.Fprintf(tw, "Resolved today:\t%d\n", s.ResolvedToday)
	fmt.Fprintf(tw, "SLA breached:\t%d\n", s.SLABreached)
	fmt.Fprintf(tw, "Avg first response:\t%s\n", s.AvgFirstResponseTime)
	return tw.Flush()
}

func (p *Printer) Dashboard(d *dto.DashboardDTO) error {
	if p.json {
		return p.JSON(d)
	}

	if err := p.Stats(&d.Stats); err != nil {
		return err
	}
	fmt.Fprintln(p.w, "\nNeeds attention")
	if err := p.Tickets(d.NeedsAttention); err != nil {
		return err
	}
	fmt.Fprintln(p.w, "\nRecently active")
	return p.Tickets(d.RecentlyActive)
}

func (p *Printer) Admins(admins []dto.AdminDTO) error {
	if p.json {
		return p.JSON(admins)
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tTICKETS")
	for _, a := range admins {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", a.ID, a.Name, a.Email, a.TicketCount)
	}
	return tw.Flush()
}

func (p *Printer) Admin(a *dto.AdminDTO) error {
	if p.json {
		return p.JSON(a)
	}
	return p.Admins([]dto.AdminDTO{*a})
}

// Label turns an enum value such as "waiting_response" into "Waiting Response".
func Label(value string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(value, "_", " "))
}

// CategoryLabel uses the display label of known categories and falls back to
// Label for anything else.
func CategoryLabel(value string) string {
	if c, err := vo.NewCategory(value); err == nil {
		return c.Label()
	}
	return Label(value)
}

func statusCell(t dto.TicketDTO) string {
	s := Label(t.Status)
	if t.SLABreached {
		s += " (SLA)"
	}
	return s
}

func (p *Printer) formatTime(t time.Time) string {
	return t.In(p.loc).Format(timeLayout)
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
