package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"meeting-scheduler-api/core/errors"
	"meeting-scheduler-api/core/params"
	"meeting-scheduler-api/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory MeetingRepositoryInterface limited to what the
// participant service touches
type fakeRepo struct {
	meetings     map[uuid.UUID]entity.Meeting
	participants map[uuid.UUID][]entity.Participant
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		meetings:     map[uuid.UUID]entity.Meeting{},
		participants: map[uuid.UUID][]entity.Participant{},
	}
}

func (f *fakeRepo) addMeeting(title string, start, end time.Time, emails ...string) entity.Meeting {
	m := entity.Meeting{ID: uuid.New(), Title: title, StartTime: start, EndTime: end}
	f.meetings[m.ID] = m
	for _, email := range emails {
		f.participants[m.ID] = append(f.participants[m.ID], entity.Participant{
			ID: uuid.New(), MeetingID: m.ID, Email: email, Name: email,
		})
	}
	return m
}

func (f *fakeRepo) CreateMeeting(_ context.Context, m *entity.Meeting) (*entity.Meeting, error) {
	f.meetings[m.ID] = *m
	return m, nil
}

func (f *fakeRepo) GetMeetingByID(_ context.Context, id uuid.UUID) (*entity.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeRepo) ListMeetings(_ context.Context, _ params.DateRange) ([]entity.Meeting, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateMeeting(_ context.Context, _ *entity.Meeting) error { return nil }

func (f *fakeRepo) DeleteMeeting(_ context.Context, _ uuid.UUID) (bool, error) { return false, nil }

func (f *fakeRepo) AddParticipant(_ context.Context, p *entity.Participant) (*entity.Participant, error) {
	f.participants[p.MeetingID] = append(f.participants[p.MeetingID], *p)
	return p, nil
}

func (f *fakeRepo) GetParticipantsByMeetingID(_ context.Context, meetingID uuid.UUID) ([]entity.Participant, error) {
	return append([]entity.Participant{}, f.participants[meetingID]...), nil
}

func (f *fakeRepo) RemoveParticipant(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, nil
}

func (f *fakeRepo) GetMeetingsByParticipantEmail(_ context.Context, email string, dateRange params.DateRange) ([]entity.Meeting, error) {
	var out []entity.Meeting
	for id, list := range f.participants {
		for _, p := range list {
			if p.Email != email {
				continue
			}
			m := f.meetings[id]
			if dateRange.StartDate != nil && m.StartTime.Before(*dateRange.StartDate) {
				continue
			}
			if dateRange.EndDate != nil && m.StartTime.After(*dateRange.EndDate) {
				continue
			}
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (f *fakeRepo) GetMeetingsSharingParticipants(_ context.Context, _ uuid.UUID) ([]entity.Meeting, error) {
	return nil, nil
}

func at(hour, min int) time.Time {
	return time.Date(2025, 12, 1, hour, min, 0, 0, time.UTC)
}

func TestGetMeetings(t *testing.T) {
	repo := newFakeRepo()
	svc := NewParticipantService(repo, nil)

	standup := repo.addMeeting("Standup", at(9, 0), at(9, 30), "alice@example.com", "bob@example.com")
	repo.addMeeting("Bob only", at(10, 0), at(11, 0), "bob@example.com")
	lunch := repo.addMeeting("Lunch", at(12, 0), at(13, 0), "alice@example.com")

	t.Run("returns participant meetings in start order", func(t *testing.T) {
		result, appErr := svc.GetMeetings(context.Background(), "alice@example.com", params.DateRange{})

		require.Nil(t, appErr)
		require.Len(t, result, 2)
		assert.Equal(t, standup.ID.String(), result[0].ID)
		assert.Equal(t, lunch.ID.String(), result[1].ID)
		require.Len(t, result[0].Participants, 2)
	})

	t.Run("date range bounds on start time", func(t *testing.T) {
		lower := at(10, 0)
		result, appErr := svc.GetMeetings(context.Background(), "alice@example.com", params.DateRange{StartDate: &lower})

		require.Nil(t, appErr)
		require.Len(t, result, 1)
		assert.Equal(t, lunch.ID.String(), result[0].ID)
	})

	t.Run("unknown participant yields empty list", func(t *testing.T) {
		result, appErr := svc.GetMeetings(context.Background(), "ghost@example.com", params.DateRange{})

		require.Nil(t, appErr)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		_, appErr := svc.GetMeetings(context.Background(), "not-an-email", params.DateRange{})

		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})
}

func TestGetConflicts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewParticipantService(repo, nil)

	planning := repo.addMeeting("Planning", at(9, 0), at(10, 0), "alice@example.com")
	review := repo.addMeeting("Review", at(9, 30), at(10, 30), "alice@example.com")
	repo.addMeeting("Lunch", at(12, 0), at(13, 0), "alice@example.com")

	t.Run("reports overlapping pair", func(t *testing.T) {
		report, appErr := svc.GetConflicts(context.Background(), "alice@example.com", params.DateRange{}, "")

		require.Nil(t, appErr)
		require.True(t, report.HasConflicts)
		require.Len(t, report.Conflicts, 2)
		assert.Equal(t, planning.ID.String(), report.Conflicts[0].Meeting.ID)
		assert.Equal(t, review.ID.String(), report.Conflicts[1].Meeting.ID)
	})

	t.Run("exclusion removes the counterpart", func(t *testing.T) {
		report, appErr := svc.GetConflicts(context.Background(), "alice@example.com", params.DateRange{}, review.ID.String())

		require.Nil(t, appErr)
		assert.False(t, report.HasConflicts)
		assert.Empty(t, report.Conflicts)
	})

	t.Run("invalid exclude id rejected", func(t *testing.T) {
		_, appErr := svc.GetConflicts(context.Background(), "alice@example.com", params.DateRange{}, "not-a-uuid")

		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("bounds applied before pairing", func(t *testing.T) {
		lower := at(9, 15)
		report, appErr := svc.GetConflicts(context.Background(), "alice@example.com", params.DateRange{StartDate: &lower}, "")

		require.Nil(t, appErr)
		assert.False(t, report.HasConflicts)
	})
}
