package entity

import (
	"time"

	"github.com/google/uuid"
)

// Meeting represents a scheduled meeting (meetings table)
type Meeting struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	StartTime   time.Time  `db:"start_time" json:"start_time"`
	EndTime     time.Time  `db:"end_time" json:"end_time"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`

	// Participants in insertion order, loaded separately
	Participants []Participant `db:"-" json:"participants,omitempty"`
}

// HasParticipant reports whether the meeting contains a participant with
// the given email. Emails are compared exactly as stored.
func (m *Meeting) HasParticipant(email string) bool {
	for _, p := range m.Participants {
		if p.Email == email {
			return true
		}
	}
	return false
}

// Participant represents a meeting attendee (participants table). A row is
// owned by exactly one meeting; the same email across meetings is a
// separate row per meeting.
type Participant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MeetingID uuid.UUID `db:"meeting_id" json:"meeting_id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
