package model

import (
	"time"

	"github.com/google/uuid"
)

// DisposalLogModel mirrors the 'disposal_logs' table. Rows are append-only.
type DisposalLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	BinID     uint      `gorm:"not null;index"`
	WasteType string    `gorm:"type:varchar(64);not null"`
	ItemCount int       `gorm:"not null"`
	Points    int       `gorm:"not null"`
	ImageURL  string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"index"`

	User UserModel `gorm:"foreignKey:UserID"`
	Bin  BinModel  `gorm:"foreignKey:BinID"`
}

// TableName explicitly sets the table name for GORM.
func (DisposalLogModel) TableName() string {
	return "disposal_logs"
}
