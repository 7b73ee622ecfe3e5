package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is an append-only submission from the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null"`
	Subject   string    `gorm:"column:subject;not null"`
	Message   string    `gorm:"column:message;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
}
