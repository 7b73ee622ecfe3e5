package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck records an uptime probe from a monitoring client.
type StatusCheck struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ClientName string    `gorm:"column:client_name;not null"`
	Timestamp  time.Time `gorm:"column:timestamp;not null"`
}
