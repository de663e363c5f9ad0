// Package seed provides the static dataset the store falls back to before
// anything is persisted, and the admin directory.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
)

//go:embed data.yaml
var embedded []byte

// Dataset is the parsed seed document. Callers must treat it as read-only;
// the accessors hand out copies.
type Dataset struct {
	AvgFirstResponseTime string                            `yaml:"avgFirstResponseTime"`
	Admins               []models.AdminRecord              `yaml:"admins"`
	Tickets              []models.TicketRecord             `yaml:"tickets"`
	Messages             map[string][]models.MessageRecord `yaml:"messages"`
}

var (
	defaultOnce    sync.Once
	defaultDataset *Dataset
	defaultErr     error
)

// Default returns the embedded dataset, parsed once per process.
func Default() (*Dataset, error) {
	defaultOnce.Do(func() {
		defaultDataset, defaultErr = Parse(embedded)
	})
	return defaultDataset, defaultErr
}

// Load returns the dataset at path, or the embedded one when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML seed document and checks that every record maps to a
// valid domain entity.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if ds.Messages == nil {
		ds.Messages = map[string][]models.MessageRecord{}
	}
	for i := range ds.Tickets {
		if ds.Tickets[i].Tags == nil {
			ds.Tickets[i].Tags = []string{}
		}
	}
	for id, thread := range ds.Messages {
		for i := range thread {
			if thread[i].Attachments == nil {
				thread[i].Attachments = []models.AttachmentRecord{}
			}
		}
		ds.Messages[id] = thread
	}

	mapper := mappers.NewTicketMapper()
	if _, err := mapper.ToDomainList(ds.Tickets); err != nil {
		return nil, fmt.Errorf("invalid seed ticket: %w", err)
	}
	if _, err := mapper.ThreadsToDomain(ds.Messages); err != nil {
		return nil, fmt.Errorf("invalid seed message: %w", err)
	}
	return &ds, nil
}

// TicketRecords returns a copy of the seed ticket collection.
func (d *Dataset) TicketRecords() []models.TicketRecord {
	out := make([]models.TicketRecord, len(d.Tickets))
	for i, r := range d.Tickets {
		r.Tags = append([]string{}, r.Tags...)
		out[i] = r
	}
	return out
}

// MessageRecords returns a copy of the seed thread map.
func (d *Dataset) MessageRecords() map[string][]models.MessageRecord {
	out := make(map[string][]models.MessageRecord, len(d.Messages))
	for id, thread := range d.Messages {
		list := make([]models.MessageRecord, len(thread))
		for i, r := range thread {
			r.Attachments = append([]models.AttachmentRecord{}, r.Attachments...)
			list[i] = r
		}
		out[id] = list
	}
	return out
}

func (d *Dataset) AdminDirectory() []ticket.Admin {
	admins := make([]ticket.Admin, 0, len(d.Admins))
	for _, a := range d.Admins {
		admins = append(admins, ticket.Admin{
			ID:          a.ID,
			Name:        a.Name,
			Email:       a.Email,
			Avatar:      a.Avatar,
			TicketCount: a.TicketCount,
		})
	}
	return admins
}
