package ticket

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
)

type replyOptions struct {
	sender   string
	name     string
	admin    string
	internal bool
	attach   []string
}

func newReplyCommand(flags *bootstrap.Flags) *cobra.Command {
	var opts replyOptions

	cmd := &cobra.Command{
		Use:   "reply <ticket-id> <message>",
		Short: "Append a message or internal note to a ticket",
		Long: `Append a message to a ticket's conversation. Every message refreshes the
ticket's update time and all but internal notes raise its unread count.
Internal notes are only visible to admins.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.AddMessageRequest{
				Content:    strings.Join(args[1:], " "),
				Sender:     opts.sender,
				SenderName: opts.name,
				IsInternal: opts.internal,
			}
			for _, path := range opts.attach {
				a, err := attachmentFromFile(path)
				if err != nil {
					return err
				}
				req.Attachments = append(req.Attachments, a)
			}

			return run(cmd, flags, func(ctx context.Context, app *bootstrap.App, p *output.Printer) error {
				if opts.admin != "" {
					admin, err := app.Service.GetAdminByID(ctx, opts.admin)
					if err != nil {
						return err
					}
					req.SenderName = admin.Name
				}
				if err := dto.Validate(req); err != nil {
					return err
				}

				// Replies to a ticket that does not exist would be stored
				// under an orphan thread, so the CLI refuses them.
				if _, err := app.Service.GetTicketByID(ctx, args[0]); err != nil {
					return err
				}

				m, err := app.Service.AddMessage(ctx, args[0], req)
				if err != nil {
					return err
				}
				return p.Message(m)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.sender, "sender", "admin", "Who is writing: client, admin, ai or system")
	f.StringVar(&opts.name, "name", "", "Display name of the sender")
	f.StringVar(&opts.admin, "admin", "", "Write as the admin with this id (sets --name)")
	f.BoolVar(&opts.internal, "internal", false, "Post as an internal note hidden from the client")
	f.StringArrayVar(&opts.attach, "attach", nil, "Attach a local file (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("name", "admin")

	return cmd
}

// attachmentFromFile describes a local file as an attachment. The file is
// referenced by a file:// URL; its bytes are not copied anywhere.
func attachmentFromFile(path string) (dto.AttachmentDTO, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return dto.AttachmentDTO{}, fmt.Errorf("failed to resolve attachment path %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return dto.AttachmentDTO{}, fmt.Errorf("failed to read attachment: %w", err)
	}
	if info.IsDir() {
		return dto.AttachmentDTO{}, fmt.Errorf("attachment %s is a directory", path)
	}

	mtype, err := mimetype.DetectFile(abs)
	if err != nil {
		return dto.AttachmentDTO{}, fmt.Errorf("failed to detect attachment type: %w", err)
	}

	return dto.AttachmentDTO{
		ID:   "att_" + uuid.NewString(),
		Name: filepath.Base(abs),
		URL:  (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		Type: mtype.String(),
		Size: info.Size(),
	}, nil
}
