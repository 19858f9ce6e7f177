package models

import "time"

// KeyValue is a database row of the persistence store.
// Values are serialized JSON documents.
type KeyValue struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (KeyValue) TableName() string {
	return "kv"
}
