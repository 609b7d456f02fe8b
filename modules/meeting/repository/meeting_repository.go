package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"meeting-scheduler-api/core/database"
	"meeting-scheduler-api/core/logger"
	"meeting-scheduler-api/core/params"
	"meeting-scheduler-api/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateParticipant is returned when an email is already present in a
// meeting's participant set.
var ErrDuplicateParticipant = errors.New("participant already added to this meeting")

const meetingColumns = "id, title, description, start_time, end_time, created_at, updated_at"

// MeetingRepository handles meeting and participant database operations
type MeetingRepository struct {
	DB database.IDatabase
}

// NewMeetingRepository creates a new repository instance
func NewMeetingRepository(db database.IDatabase) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

// MeetingRepositoryInterface defines the repository contract
type MeetingRepositoryInterface interface {
	// Meeting CRUD (meetings table)
	CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error)
	GetMeetingByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	ListMeetings(ctx context.Context, dateRange params.DateRange) ([]entity.Meeting, error)
	UpdateMeeting(ctx context.Context, meeting *entity.Meeting) error
	DeleteMeeting(ctx context.Context, id uuid.UUID) (bool, error)

	// Participants (participants table)
	AddParticipant(ctx context.Context, participant *entity.Participant) (*entity.Participant, error)
	GetParticipantsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entity.Participant, error)
	RemoveParticipant(ctx context.Context, meetingID uuid.UUID, email string) (bool, error)

	// Conflict corpora
	GetMeetingsByParticipantEmail(ctx context.Context, email string, dateRange params.DateRange) ([]entity.Meeting, error)
	GetMeetingsSharingParticipants(ctx context.Context, meetingID uuid.UUID) ([]entity.Meeting, error)
}

// ===================== Meeting CRUD =====================

func (r *MeetingRepository) CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	query := `
		INSERT INTO meetings (id, title, description, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + meetingColumns

	var created entity.Meeting
	err := r.DB.GetContext(ctx, &created, query,
		meeting.ID, meeting.Title, meeting.Description, meeting.StartTime, meeting.EndTime)

	if err != nil {
		logger.Error("MeetingRepository:CreateMeeting", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *MeetingRepository) GetMeetingByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

	var meeting entity.Meeting
	err := r.DB.GetContext(ctx, &meeting, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetMeetingByID", "error", err)
		return nil, err
	}

	return &meeting, nil
}

func (r *MeetingRepository) ListMeetings(ctx context.Context, dateRange params.DateRange) ([]entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings`
	conds, args := dateRangeConds("start_time", dateRange, nil)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_time, id"

	var meetings []entity.Meeting
	err := r.DB.SelectContext(ctx, &meetings, query, args...)
	if err != nil {
		logger.Error("MeetingRepository:ListMeetings", "error", err)
		return nil, err
	}

	return meetings, nil
}

func (r *MeetingRepository) UpdateMeeting(ctx context.Context, meeting *entity.Meeting) error {
	query := `
		UPDATE meetings
		SET title = $2, description = $3, start_time = $4, end_time = $5, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		meeting.ID, meeting.Title, meeting.Description, meeting.StartTime, meeting.EndTime)
	if err != nil {
		logger.Error("MeetingRepository:UpdateMeeting", "error", err)
		return err
	}

	return nil
}

func (r *MeetingRepository) DeleteMeeting(ctx context.Context, id uuid.UUID) (bool, error) {
	// Participant rows go with the meeting (ON DELETE CASCADE)
	query := `DELETE FROM meetings WHERE id = $1 RETURNING id`

	var deleted uuid.UUID
	err := r.DB.GetContext(ctx, &deleted, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("MeetingRepository:DeleteMeeting", "error", err)
		return false, err
	}

	return true, nil
}

// ===================== Participants =====================

func (r *MeetingRepository) AddParticipant(ctx context.Context, participant *entity.Participant) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (id, meeting_id, email, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, meeting_id, email, name, created_at
	`

	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, query,
		participant.ID, participant.MeetingID, participant.Email, participant.Name)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateParticipant
		}
		logger.Error("MeetingRepository:AddParticipant", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *MeetingRepository) GetParticipantsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entity.Participant, error) {
	// created_at order is the insertion order the exporter relies on
	query := `
		SELECT id, meeting_id, email, name, created_at
		FROM participants
		WHERE meeting_id = $1
		ORDER BY created_at, id
	`

	var participants []entity.Participant
	err := r.DB.SelectContext(ctx, &participants, query, meetingID)
	if err != nil {
		logger.Error("MeetingRepository:GetParticipantsByMeetingID", "error", err)
		return nil, err
	}

	return participants, nil
}

func (r *MeetingRepository) RemoveParticipant(ctx context.Context, meetingID uuid.UUID, email string) (bool, error) {
	query := `DELETE FROM participants WHERE meeting_id = $1 AND email = $2 RETURNING id`

	var deleted uuid.UUID
	err := r.DB.GetContext(ctx, &deleted, query, meetingID, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("MeetingRepository:RemoveParticipant", "error", err)
		return false, err
	}

	return true, nil
}

// ===================== Conflict corpora =====================

func (r *MeetingRepository) GetMeetingsByParticipantEmail(ctx context.Context, email string, dateRange params.DateRange) ([]entity.Meeting, error) {
	query := `
		SELECT m.id, m.title, m.description, m.start_time, m.end_time, m.created_at, m.updated_at
		FROM meetings m
		JOIN participants p ON p.meeting_id = m.id
		WHERE p.email = $1
	`
	conds, args := dateRangeConds("m.start_time", dateRange, []any{email})
	if len(conds) > 0 {
		query += " AND " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY m.start_time, m.id"

	var meetings []entity.Meeting
	err := r.DB.SelectContext(ctx, &meetings, query, args...)
	if err != nil {
		logger.Error("MeetingRepository:GetMeetingsByParticipantEmail", "error", err)
		return nil, err
	}

	return meetings, nil
}

// GetMeetingsSharingParticipants returns every other meeting that has at
// least one participant email in common with the given meeting.
func (r *MeetingRepository) GetMeetingsSharingParticipants(ctx context.Context, meetingID uuid.UUID) ([]entity.Meeting, error) {
	query := `
		SELECT DISTINCT m.id, m.title, m.description, m.start_time, m.end_time, m.created_at, m.updated_at
		FROM meetings m
		JOIN participants p ON p.meeting_id = m.id
		JOIN participants t ON t.email = p.email
		WHERE t.meeting_id = $1 AND m.id <> $1
		ORDER BY m.start_time, m.id
	`

	var meetings []entity.Meeting
	err := r.DB.SelectContext(ctx, &meetings, query, meetingID)
	if err != nil {
		logger.Error("MeetingRepository:GetMeetingsSharingParticipants", "error", err)
		return nil, err
	}

	return meetings, nil
}

func dateRangeConds(column string, dateRange params.DateRange, baseArgs []any) ([]string, []any) {
	conds := []string{}
	args := baseArgs
	if dateRange.StartDate != nil {
		args = append(args, dateRange.StartDate.UTC())
		conds = append(conds, fmt.Sprintf("%s >= $%d", column, len(args)))
	}
	if dateRange.EndDate != nil {
		args = append(args, dateRange.EndDate.UTC())
		conds = append(conds, fmt.Sprintf("%s <= $%d", column, len(args)))
	}
	return conds, args
}
