package service

import (
	"sort"
	"time"

	"meeting-scheduler-api/modules/meeting/dto"
	"meeting-scheduler-api/modules/meeting/entity"

	"github.com/google/uuid"
)

// ConflictOptions narrows the meeting set considered for conflict detection.
// ExcludeMeetingID drops one meeting from the corpus before pairing; the date
// bounds are inclusive on meeting start time.
type ConflictOptions struct {
	ExcludeMeetingID *uuid.UUID
	StartDate        *time.Time
	EndDate          *time.Time
}

// Overlaps reports whether two meetings occupy overlapping time ranges.
// Boundaries are exclusive: a meeting ending at 10:00 does not overlap one
// starting at 10:00. Comparison is on the instants, timezone-independent.
func Overlaps(a, b *entity.Meeting) bool {
	return a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime)
}

// ConflictsForParticipant builds the participant-centric conflict report for
// the given meetings, all of which are expected to involve the participant.
// Each meeting with at least one overlap appears once, paired with every
// meeting it overlaps; both the outer and inner lists are ordered by
// (start_time, id).
func ConflictsForParticipant(email string, meetings []entity.Meeting, opts ConflictOptions) dto.ParticipantConflictReport {
	report := dto.ParticipantConflictReport{
		ParticipantEmail: email,
		Conflicts:        []dto.MeetingConflict{},
	}

	filtered := filterMeetings(meetings, opts)
	sortByStartThenID(filtered)

	// Sweep over the sorted slice: once meetings are ordered by start time,
	// meeting i can only overlap a later meeting j while j starts before i
	// ends. Appending in sweep order keeps every conflict list sorted.
	overlapping := make([][]int, len(filtered))
	for i := range filtered {
		for j := i + 1; j < len(filtered); j++ {
			if !filtered[j].StartTime.Before(filtered[i].EndTime) {
				break
			}
			overlapping[i] = append(overlapping[i], j)
			overlapping[j] = append(overlapping[j], i)
		}
	}

	for i := range filtered {
		if len(overlapping[i]) == 0 {
			continue
		}
		conflict := dto.MeetingConflict{
			Meeting:         *dto.ToMeetingResponse(&filtered[i]),
			ConflictingWith: make([]dto.MeetingResponse, 0, len(overlapping[i])),
		}
		for _, j := range overlapping[i] {
			conflict.ConflictingWith = append(conflict.ConflictingWith, *dto.ToMeetingResponse(&filtered[j]))
		}
		report.Conflicts = append(report.Conflicts, conflict)
	}

	report.HasConflicts = len(report.Conflicts) > 0
	return report
}

// ConflictsForMeeting builds the meeting-centric conflict report: for every
// participant of the target meeting, the other meetings in the corpus that
// the participant also attends and that overlap the target. Participants
// without any conflicting meeting are left out of the map.
func ConflictsForMeeting(target *entity.Meeting, corpus []entity.Meeting) dto.MeetingConflictReport {
	report := dto.MeetingConflictReport{
		Conflicts: map[string][]dto.MeetingSummary{},
	}

	tgt := *target
	tgt.StartTime = tgt.StartTime.UTC()
	tgt.EndTime = tgt.EndTime.UTC()

	others := make([]entity.Meeting, 0, len(corpus))
	for i := range corpus {
		if corpus[i].ID == tgt.ID {
			continue
		}
		m := corpus[i]
		m.StartTime = m.StartTime.UTC()
		m.EndTime = m.EndTime.UTC()
		others = append(others, m)
	}
	sortByStartThenID(others)

	for _, p := range tgt.Participants {
		for i := range others {
			if !others[i].HasParticipant(p.Email) || !Overlaps(&tgt, &others[i]) {
				continue
			}
			report.Conflicts[p.Email] = append(report.Conflicts[p.Email], dto.ToMeetingSummary(&others[i]))
		}
	}

	report.HasConflicts = len(report.Conflicts) > 0
	return report
}

func filterMeetings(meetings []entity.Meeting, opts ConflictOptions) []entity.Meeting {
	filtered := make([]entity.Meeting, 0, len(meetings))
	for i := range meetings {
		m := meetings[i]
		if opts.ExcludeMeetingID != nil && m.ID == *opts.ExcludeMeetingID {
			continue
		}
		if opts.StartDate != nil && m.StartTime.Before(*opts.StartDate) {
			continue
		}
		if opts.EndDate != nil && m.StartTime.After(*opts.EndDate) {
			continue
		}
		m.StartTime = m.StartTime.UTC()
		m.EndTime = m.EndTime.UTC()
		filtered = append(filtered, m)
	}
	return filtered
}

func sortByStartThenID(meetings []entity.Meeting) {
	sort.Slice(meetings, func(i, j int) bool {
		if !meetings[i].StartTime.Equal(meetings[j].StartTime) {
			return meetings[i].StartTime.Before(meetings[j].StartTime)
		}
		return meetings[i].ID.String() < meetings[j].ID.String()
	})
}
