// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is an account identified either by login credentials (dashboard)
// or by an RFID tag (bin kiosk). Its cumulative stats are a materialized
// aggregate over the user's disposal logs and are mutated only by the
// disposal transaction and by registration.
type User struct {
	ID            uint      // Primary identifier.
	FullName      string    // Display name; the first word is used in voice confirmations.
	Username      string    // Unique login name.
	PasswordHash  string    // bcrypt hash of the login password.
	RFIDTag       string    // Unique tag presented at the bin kiosk.
	Role          Role      // "user" or "admin".
	Points        int       // Current gamification point balance.
	RecycledItems int       // Total number of detected items across all disposals.
	CarbonGrams   int       // Cumulative estimated carbon saved, in grams.
	CreatedAt     time.Time // Timestamp of account creation.
	UpdatedAt     time.Time // Timestamp of the last stats mutation.
}

// FirstName returns the leading word of the full name for voice messages.
func (u *User) FirstName() string {
	fields := strings.Fields(u.FullName)
	if len(fields) == 0 {
		return u.Username
	}

	return fields[0]
}
