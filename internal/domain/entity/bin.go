package entity

import "time"

// BinStatus is the operational state of a smart bin.
type BinStatus string

const (
	BinStatusActive      BinStatus = "active"
	BinStatusFull        BinStatus = "full"
	BinStatusMaintenance BinStatus = "maintenance"
)

// Bin is one physical smart bin. FillLevel counts detected items since the
// last administrative reset and is monotonically non-decreasing between
// resets; the status flips to "full" once FillLevel reaches Capacity.
type Bin struct {
	ID        uint
	Name      string
	Location  string
	FillLevel int
	Capacity  int
	Status    BinStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFull reports whether the fill level has reached the configured capacity.
func (b *Bin) IsFull() bool {
	return b.Capacity > 0 && b.FillLevel >= b.Capacity
}

// FillPercent returns the fill level as a percentage of capacity, capped at 100.
func (b *Bin) FillPercent() int {
	if b.Capacity <= 0 {
		return 0
	}

	percent := b.FillLevel * 100 / b.Capacity
	if percent > 100 {
		percent = 100
	}

	return percent
}
