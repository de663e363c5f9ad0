package models

import (
	"time"
)

// KVEntryModel is one key of the key-value store. The value column holds the
// JSON document verbatim as text; sqlite must keep text affinity so a numeric
// document such as the ticket sequence is never coerced to an integer.
type KVEntryModel struct {
	Key       string    `gorm:"column:key;primaryKey;size:191"`
	Value     string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (KVEntryModel) TableName() string {
	return "kv_entries"
}
