package model

import (
	"time"
)

// BinModel mirrors the 'bins' table.
type BinModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Location  string `gorm:"type:varchar(255)"`
	FillLevel int    `gorm:"not null;default:0"`
	Capacity  int    `gorm:"not null"`
	Status    string `gorm:"type:varchar(16);not null;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BinModel) TableName() string {
	return "bins"
}
