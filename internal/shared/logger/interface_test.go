package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamed(t *testing.T) {
	tests := []struct {
		name  string
		build func(Interface) Interface
		want  string
	}{
		{name: "single", build: func(l Interface) Interface { return l.Named("cli") }, want: "cli"},
		{name: "nested", build: func(l Interface) Interface { return l.Named("cli").Named("ticket") }, want: "cli.ticket"},
		{name: "with between names", build: func(l Interface) Interface {
			return l.Named("cli").With("driver", "file").Named("kvstore")
		}, want: "cli.kvstore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, nil)))

			tt.build(base).Info("ready")

			line := strings.TrimSpace(buf.String())
			assert.Equal(t, 1, strings.Count(line, `"logger":`), line)

			var record map[string]any
			require.NoError(t, json.Unmarshal([]byte(line), &record))
			assert.Equal(t, tt.want, record["logger"])
			assert.NotContains(t, record, "component")
		})
	}
}

func TestWith_KeepsNameAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, nil))).
		Named("ticket").
		With("ticket_id", "1")

	l.Infow("message added", "internal", false)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ticket", record["logger"])
	assert.Equal(t, "1", record["ticket_id"])
	assert.Equal(t, false, record["internal"])
}
