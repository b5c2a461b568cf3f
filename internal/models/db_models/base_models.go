package db_models

import (
	"time"
)

type BaseModel struct {
	ID        string    `json:"id" gorm:"type:text;primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz"`
}

// Stamp assigns the id and both timestamps of a new record.
func (b *BaseModel) Stamp(id string, now time.Time) {
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Touch refreshes updated_at; created_at is never changed after Stamp.
func (b *BaseModel) Touch(now time.Time) {
	b.UpdatedAt = now
}
