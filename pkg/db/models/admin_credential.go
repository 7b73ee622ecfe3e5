package models

import "time"

// AdminCredential stores the argon2id hash of the single shared admin
// password. Version increments on every password change so outstanding
// session tokens can be rejected.
type AdminCredential struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Version      int64     `gorm:"column:version;not null;default:1"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// AdminCredentialID is the fixed primary key of the singleton row.
const AdminCredentialID int64 = 1
