package service

import (
	"strings"
	"testing"
	"time"

	"meeting-scheduler-api/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportLines(t *testing.T, meeting *entity.Meeting) []string {
	t.Helper()
	data, err := ExportICS(meeting)
	require.NoError(t, err)
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
}

func testMeeting() *entity.Meeting {
	desc := "Weekly sync"
	return &entity.Meeting{
		ID:          uuid.MustParse("b5e7c6a0-1111-4222-8333-444455556666"),
		Title:       "Team Sync",
		Description: &desc,
		StartTime:   time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC),
	}
}

func TestExportICS(t *testing.T) {
	t.Run("calendar envelope", func(t *testing.T) {
		lines := exportLines(t, testMeeting())

		assert.Contains(t, lines, "BEGIN:VCALENDAR")
		assert.Contains(t, lines, "END:VCALENDAR")
		assert.Contains(t, lines, "BEGIN:VEVENT")
		assert.Contains(t, lines, "END:VEVENT")
		assert.Contains(t, lines, "VERSION:2.0")
		assert.Contains(t, lines, "PRODID:-//Meeting Scheduler//Meeting Scheduler API//EN")
		assert.Contains(t, lines, "CALSCALE:GREGORIAN")
		assert.Contains(t, lines, "METHOD:PUBLISH")
	})

	t.Run("event fields", func(t *testing.T) {
		lines := exportLines(t, testMeeting())

		assert.Contains(t, lines, "UID:b5e7c6a0-1111-4222-8333-444455556666")
		assert.Contains(t, lines, "SUMMARY:Team Sync")
		assert.Contains(t, lines, "DESCRIPTION:Weekly sync")
		assert.Contains(t, lines, "DTSTART:20251201T090000Z")
		assert.Contains(t, lines, "DTEND:20251201T100000Z")
		assert.Contains(t, lines, "CREATED:20251101T080000Z")
		assert.Contains(t, lines, "LAST-MODIFIED:20251102T080000Z")
	})

	t.Run("times converted to UTC", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		m := testMeeting()
		m.StartTime = time.Date(2025, 12, 1, 9, 0, 0, 0, est)
		m.EndTime = time.Date(2025, 12, 1, 10, 0, 0, 0, est)

		lines := exportLines(t, m)

		assert.Contains(t, lines, "DTSTART:20251201T140000Z")
		assert.Contains(t, lines, "DTEND:20251201T150000Z")
	})

	t.Run("text escaping", func(t *testing.T) {
		desc := "Agenda; roadmap, budget"
		m := testMeeting()
		m.Title = "Q1, Planning"
		m.Description = &desc

		lines := exportLines(t, m)

		assert.Contains(t, lines, `SUMMARY:Q1\, Planning`)
		assert.Contains(t, lines, `DESCRIPTION:Agenda\; roadmap\, budget`)
	})

	t.Run("no description property when empty", func(t *testing.T) {
		m := testMeeting()
		m.Description = nil

		data, err := ExportICS(m)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "DESCRIPTION")
	})

	t.Run("attendees with parameters", func(t *testing.T) {
		m := testMeeting()
		m.Participants = []entity.Participant{
			{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"},
			{ID: uuid.New(), Email: "bob@example.com", Name: "Bob"},
		}

		data, err := ExportICS(m)
		require.NoError(t, err)
		text := string(data)

		aliceIdx := strings.Index(text, "alice@example.com")
		bobIdx := strings.Index(text, "bob@example.com")
		require.Greater(t, aliceIdx, -1)
		require.Greater(t, bobIdx, -1)
		assert.Less(t, aliceIdx, bobIdx, "attendees keep insertion order")

		assert.Contains(t, text, "CN=Alice")
		assert.Contains(t, text, "ROLE=REQ-PARTICIPANT")
		assert.Contains(t, text, "RSVP=TRUE")
		assert.Contains(t, text, "mailto:alice@example.com")
	})

	t.Run("no attendees still valid", func(t *testing.T) {
		data, err := ExportICS(testMeeting())
		require.NoError(t, err)
		assert.NotContains(t, string(data), "ATTENDEE")
	})

	t.Run("repeated export identical apart from DTSTAMP", func(t *testing.T) {
		m := testMeeting()

		first, err := ExportICS(m)
		require.NoError(t, err)
		second, err := ExportICS(m)
		require.NoError(t, err)

		assert.Equal(t, stripDTSTAMP(string(first)), stripDTSTAMP(string(second)))
	})
}

func stripDTSTAMP(doc string) string {
	lines := strings.Split(doc, "\r\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "DTSTAMP") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\r\n")
}

func TestICSFilename(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Team Sync", "Team_Sync.ics"},
		{"Q1: Planning / Budget!", "Q1_Planning_Budget.ics"},
		{"weekly---review", "weekly_review.ics"},
		{"___", "meeting.ics"},
		{"", "meeting.ics"},
		{"Réunion générale", "R_union_g_n_rale.ics"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, ICSFilename(tt.title))
		})
	}
}
