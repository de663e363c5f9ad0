package usecases

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"helpdesk/internal/application/ticket/dto"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

var transcriptTemplate = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Ticket.TicketNumber}} {{.Ticket.Subject}}</title>
</head>
<body>
<header>
<h1>{{.Ticket.TicketNumber}}: {{.Ticket.Subject}}</h1>
<p class="meta">{{.Category}} &middot; {{.Ticket.Priority}} &middot; {{.Ticket.Status}} &middot; {{.Ticket.CompanyName}}</p>
<p class="meta">Opened by {{.Ticket.ClientName}} &lt;{{.Ticket.ClientEmail}}&gt; on {{.Opened}}</p>
</header>
<main>
{{- range .Messages}}
<article class="message sender-{{.Sender}}{{if .Internal}} internal{{end}}">
<h2>{{.SenderName}}{{if .Internal}} (internal note){{end}}{{if .AIGenerated}} (AI suggestion){{end}}</h2>
<time datetime="{{.ISOTime}}">{{.Time}}</time>
<div class="content">{{.Body}}</div>
{{- if .Attachments}}
<ul class="attachments">
{{- range .Attachments}}
<li>{{if .Link}}<a href="{{.Link}}">{{.Name}}</a>{{else}}{{.Name}}{{end}} ({{.Type}}, {{.Size}} bytes)</li>
{{- end}}
</ul>
{{- end}}
</article>
{{- else}}
<p>No messages.</p>
{{- end}}
</main>
</body>
</html>
`))

type transcriptMessage struct {
	Sender      string
	SenderName  string
	Internal    bool
	AIGenerated bool
	ISOTime     string
	Time        string
	Body        template.HTML
	Attachments []transcriptAttachment
}

// transcriptAttachment links only to web URLs; local file:// paths mean
// nothing to a reader of the exported document.
type transcriptAttachment struct {
	Name string
	Type string
	Size int64
	Link string
}

func toTranscriptAttachment(a dto.AttachmentDTO) transcriptAttachment {
	out := transcriptAttachment{Name: a.Name, Type: a.Type, Size: a.Size}
	if u, err := url.Parse(a.URL); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		out.Link = a.URL
	}
	return out
}

type transcriptView struct {
	Ticket   dto.TicketDTO
	Category string
	Opened   string
	Messages []transcriptMessage
}

// ExportTranscriptUseCase renders a ticket's conversation, as a given role
// sees it, into a standalone HTML document.
type ExportTranscriptUseCase struct {
	getTicket   *GetTicketUseCase
	getMessages *GetMessagesUseCase
	renderer    MarkdownRenderer
	location    *time.Location
	logger      logger.Interface
}

func NewExportTranscriptUseCase(
	getTicket *GetTicketUseCase,
	getMessages *GetMessagesUseCase,
	renderer MarkdownRenderer,
	location *time.Location,
	logger logger.Interface,
) *ExportTranscriptUseCase {
	return &ExportTranscriptUseCase{
		getTicket:   getTicket,
		getMessages: getMessages,
		renderer:    renderer,
		location:    location,
		logger:      logger,
	}
}

func (uc *ExportTranscriptUseCase) Execute(ctx context.Context, ticketID string, role string) (string, error) {
	t, err := uc.getTicket.Execute(ctx, ticketID)
	if err != nil {
		return "", err
	}
	messages, err := uc.getMessages.ExecuteForViewer(ctx, ticketID, role)
	if err != nil {
		return "", err
	}

	view := transcriptView{
		Ticket:   *t,
		Category: vo.Category(t.Category).Label(),
		Opened:   uc.format(t.CreatedAt),
		Messages: make([]transcriptMessage, 0, len(messages)),
	}
	for _, m := range messages {
		body, err := uc.renderer.Render(m.Content)
		if err != nil {
			uc.logger.Errorw("failed to render message", "error", err, "message_id", m.ID)
			return "", err
		}
		view.Messages = append(view.Messages, transcriptMessage{
			Sender:      m.Sender,
			SenderName:  m.SenderName,
			Internal:    m.IsInternal,
			AIGenerated: m.AIGenerated != nil && *m.AIGenerated,
			ISOTime:     m.CreatedAt.UTC().Format(time.RFC3339),
			Time:        uc.format(m.CreatedAt),
			Body:        body,
			Attachments: mapper.MapSlice(m.Attachments, toTranscriptAttachment),
		})
	}

	var buf bytes.Buffer
	if err := transcriptTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render transcript: %w", err)
	}

	uc.logger.Infow("transcript exported", "ticket_id", ticketID, "role", role, "messages", len(messages))
	return buf.String(), nil
}

func (uc *ExportTranscriptUseCase) format(t time.Time) string {
	return t.In(uc.location).Format("2006-01-02 15:04 MST")
}
