// Package model contains the GORM persistence models mirroring the
// database tables. Mapping to and from domain entities happens in the
// repositories so the domain stays persistence-free.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Username and RFID tag carry unique
// constraints; the cumulative stat columns are only ever incremented.
type UserModel struct {
	ID            uint   `gorm:"primaryKey"`
	FullName      string `gorm:"type:varchar(100);not null"`
	Username      string `gorm:"type:varchar(64);unique;not null"`
	PasswordHash  string `gorm:"type:varchar(255);not null"`
	RFIDTag       string `gorm:"column:rfid_tag;type:varchar(64);unique;not null"`
	Role          string `gorm:"type:varchar(16);not null;default:user"`
	Points        int    `gorm:"not null;default:0"`
	RecycledItems int    `gorm:"not null;default:0"`
	CarbonGrams   int    `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
