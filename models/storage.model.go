package models

import "time"

// StorageEntry is one row of the durable key-value table.
type StorageEntry struct {
	Key       string    `gorm:"column:storage_key;primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
