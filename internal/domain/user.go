// internal/domain/user.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a member of the shared ledger.
// The settlement core never mutates users; it only reads them.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`           // Display name
	Initials  string    `db:"initials" json:"initials"`   // Short label shown in the UI
	Color     string    `db:"color" json:"color"`         // Display color, e.g. "#e8590c"
	Active    bool      `db:"active" json:"active"`       // Inactive users keep their ledger history
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewUser creates a new User instance. Initials default to the first letters
// of the name's words when not provided.
func NewUser(name, initials, color string) *User {
	if initials == "" {
		initials = deriveInitials(name)
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Initials:  initials,
		Color:     color,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func deriveInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteRune(r[0])
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}
