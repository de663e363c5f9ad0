package ticket

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/dto"
)

func TestAttachmentFromFile(t *testing.T) {
	dir := t.TempDir()

	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	pngPath := filepath.Join(dir, "screenshot.png")
	require.NoError(t, os.WriteFile(pngPath, pngHeader, 0o644))

	a, err := attachmentFromFile(pngPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.ID, "att_"))
	assert.Equal(t, "screenshot.png", a.Name)
	assert.Equal(t, "image/png", a.Type)
	assert.Equal(t, int64(len(pngHeader)), a.Size)
	assert.True(t, strings.HasPrefix(a.URL, "file://"), a.URL)
	assert.True(t, strings.HasSuffix(a.URL, "/screenshot.png"), a.URL)

	txtPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("plain words\n"), 0o644))

	b, err := attachmentFromFile(txtPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.Type, "text/plain"), b.Type)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAttachmentFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := attachmentFromFile(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)

	_, err = attachmentFromFile(dir)
	assert.ErrorContains(t, err, "is a directory")
}

func TestUpdateOptions_Request(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, req dto.UpdateTicketRequest, err error)
	}{
		{
			name: "nothing set",
			check: func(t *testing.T, _ dto.UpdateTicketRequest, err error) {
				assert.ErrorContains(t, err, "nothing to update")
			},
		},
		{
			name: "status and priority",
			args: []string{"--status", "resolved", "--priority", "low"},
			check: func(t *testing.T, req dto.UpdateTicketRequest, err error) {
				require.NoError(t, err)
				require.NotNil(t, req.Status)
				require.NotNil(t, req.Priority)
				assert.Equal(t, "resolved", *req.Status)
				assert.Equal(t, "low", *req.Priority)
				assert.Nil(t, req.Tags)
				assert.Nil(t, req.AssignedAdminID)
			},
		},
		{
			name: "assign is resolved later",
			args: []string{"--assign", "admin-1"},
			check: func(t *testing.T, req dto.UpdateTicketRequest, err error) {
				require.NoError(t, err)
				assert.Nil(t, req.AssignedAdminID)
			},
		},
		{
			name: "unassign sends empty strings",
			args: []string{"--unassign"},
			check: func(t *testing.T, req dto.UpdateTicketRequest, err error) {
				require.NoError(t, err)
				require.NotNil(t, req.AssignedAdminID)
				assert.Empty(t, *req.AssignedAdminID)
				assert.Empty(t, *req.AssignedAdminName)
			},
		},
		{
			name: "tags replace",
			args: []string{"--tags", "vip,login"},
			check: func(t *testing.T, req dto.UpdateTicketRequest, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"vip", "login"}, req.Tags)
			},
		},
		{
			name: "clear tags is non-nil and empty",
			args: []string{"--clear-tags"},
			check: func(t *testing.T, req dto.UpdateTicketRequest, err error) {
				require.NoError(t, err)
				assert.NotNil(t, req.Tags)
				assert.Empty(t, req.Tags)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts updateOptions
			cmd := &cobra.Command{Use: "update"}
			opts.bind(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			req, err := opts.request(cmd)
			tt.check(t, req, err)
		})
	}
}
