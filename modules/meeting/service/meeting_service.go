package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"meeting-scheduler-api/core/cache"
	"meeting-scheduler-api/core/constants"
	"meeting-scheduler-api/core/errors"
	"meeting-scheduler-api/core/logger"
	"meeting-scheduler-api/core/params"
	"meeting-scheduler-api/modules/meeting/dto"
	"meeting-scheduler-api/modules/meeting/entity"
	"meeting-scheduler-api/modules/meeting/repository"

	"github.com/google/uuid"
)

// MeetingService implements meeting business logic
type MeetingService struct {
	Repo  repository.MeetingRepositoryInterface
	Cache *cache.Cache
}

// NewMeetingService creates a new service instance
func NewMeetingService(repo repository.MeetingRepositoryInterface, c *cache.Cache) *MeetingService {
	return &MeetingService{Repo: repo, Cache: c}
}

// MeetingServiceInterface defines the service contract
type MeetingServiceInterface interface {
	CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	GetMeetingByID(ctx context.Context, id string) (*dto.MeetingResponse, *errors.AppError)
	ListMeetings(ctx context.Context, dateRange params.DateRange) ([]dto.MeetingResponse, *errors.AppError)
	UpdateMeeting(ctx context.Context, id string, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	DeleteMeeting(ctx context.Context, id string) *errors.AppError

	AddParticipant(ctx context.Context, meetingID string, req *dto.AddParticipantRequest) (*dto.ParticipantResponse, *errors.AppError)
	RemoveParticipant(ctx context.Context, meetingID string, email string) *errors.AppError

	CheckConflicts(ctx context.Context, meetingID string) (*dto.MeetingConflictReport, *errors.AppError)
	ExportMeeting(ctx context.Context, meetingID string) ([]byte, string, *errors.AppError)
}

// ===================== Meeting CRUD =====================

func (s *MeetingService) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	start, end, appErr := parseTimeRange(req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}

	meeting := &entity.Meeting{
		ID:        uuid.New(),
		Title:     req.Title,
		StartTime: start,
		EndTime:   end,
	}
	if req.Description != "" {
		meeting.Description = &req.Description
	}

	created, err := s.Repo.CreateMeeting(ctx, meeting)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create meeting", err)
	}

	s.bumpVersion(ctx)
	created.Participants = []entity.Participant{}
	return dto.ToMeetingResponse(created), nil
}

func (s *MeetingService) GetMeetingByID(ctx context.Context, id string) (*dto.MeetingResponse, *errors.AppError) {
	meeting, appErr := s.loadMeeting(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToMeetingResponse(meeting), nil
}

func (s *MeetingService) ListMeetings(ctx context.Context, dateRange params.DateRange) ([]dto.MeetingResponse, *errors.AppError) {
	meetings, err := s.Repo.ListMeetings(ctx, dateRange)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list meetings", err)
	}

	responses := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		participants, err := s.Repo.GetParticipantsByMeetingID(ctx, meetings[i].ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load participants", err)
		}
		meetings[i].Participants = participants
		responses = append(responses, *dto.ToMeetingResponse(&meetings[i]))
	}

	return responses, nil
}

func (s *MeetingService) UpdateMeeting(ctx context.Context, id string, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	meeting, appErr := s.loadMeeting(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != "" {
		meeting.Title = req.Title
	}
	if req.Description != nil {
		meeting.Description = req.Description
	}
	if req.StartTime != "" {
		t, err := parseTimestamp(req.StartTime, "start_time")
		if err != nil {
			return nil, err
		}
		meeting.StartTime = t
	}
	if req.EndTime != "" {
		t, err := parseTimestamp(req.EndTime, "end_time")
		if err != nil {
			return nil, err
		}
		meeting.EndTime = t
	}

	if !meeting.StartTime.Before(meeting.EndTime) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end_time must be after start_time", nil)
	}

	if err := s.Repo.UpdateMeeting(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update meeting", err)
	}

	s.bumpVersion(ctx)

	updated, appErr := s.loadMeeting(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToMeetingResponse(updated), nil
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, id string) *errors.AppError {
	meetingID, appErr := parseMeetingID(id)
	if appErr != nil {
		return appErr
	}

	deleted, err := s.Repo.DeleteMeeting(ctx, meetingID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete meeting", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "meeting not found", nil)
	}

	s.bumpVersion(ctx)
	return nil
}

// ===================== Participants =====================

func (s *MeetingService) AddParticipant(ctx context.Context, meetingID string, req *dto.AddParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	meeting, appErr := s.loadMeetingRow(ctx, meetingID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := validateEmail(req.Email); appErr != nil {
		return nil, appErr
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}

	participant := &entity.Participant{
		ID:        uuid.New(),
		MeetingID: meeting.ID,
		Email:     req.Email,
		Name:      req.Name,
	}

	created, err := s.Repo.AddParticipant(ctx, participant)
	if err != nil {
		if err == repository.ErrDuplicateParticipant {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "participant with this email already exists in the meeting", err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to add participant", err)
	}

	s.bumpVersion(ctx)
	return dto.ToParticipantResponse(created), nil
}

func (s *MeetingService) RemoveParticipant(ctx context.Context, meetingID string, email string) *errors.AppError {
	meeting, appErr := s.loadMeetingRow(ctx, meetingID)
	if appErr != nil {
		return appErr
	}

	removed, err := s.Repo.RemoveParticipant(ctx, meeting.ID, email)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to remove participant", err)
	}
	if !removed {
		return errors.NewAppError(errors.ErrNotFound, "participant not found in this meeting", nil)
	}

	s.bumpVersion(ctx)
	return nil
}

// ===================== Conflicts and export =====================

func (s *MeetingService) CheckConflicts(ctx context.Context, meetingID string) (*dto.MeetingConflictReport, *errors.AppError) {
	meeting, appErr := s.loadMeeting(ctx, meetingID)
	if appErr != nil {
		return nil, appErr
	}

	cacheKey := s.conflictCacheKey(ctx, meeting.ID)
	if cacheKey != "" {
		if raw, ok := s.Cache.Get(ctx, cacheKey); ok {
			var cached dto.MeetingConflictReport
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	corpus, err := s.Repo.GetMeetingsSharingParticipants(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load overlapping meetings", err)
	}
	for i := range corpus {
		participants, err := s.Repo.GetParticipantsByMeetingID(ctx, corpus[i].ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load participants", err)
		}
		corpus[i].Participants = participants
	}

	report := ConflictsForMeeting(meeting, corpus)

	if cacheKey != "" {
		if raw, err := json.Marshal(report); err == nil {
			s.Cache.Set(ctx, cacheKey, raw, constants.ConflictCacheTTL*time.Second)
		}
	}

	return &report, nil
}

func (s *MeetingService) ExportMeeting(ctx context.Context, meetingID string) ([]byte, string, *errors.AppError) {
	meeting, appErr := s.loadMeeting(ctx, meetingID)
	if appErr != nil {
		return nil, "", appErr
	}

	data, err := ExportICS(meeting)
	if err != nil {
		logger.Error("MeetingService:ExportMeeting", "error", err)
		return nil, "", errors.NewAppError(errors.ErrInternalServer, "failed to export meeting", err)
	}

	return data, ICSFilename(meeting.Title), nil
}

// ===================== Helpers =====================

// loadMeeting fetches a meeting with its participants loaded
func (s *MeetingService) loadMeeting(ctx context.Context, id string) (*entity.Meeting, *errors.AppError) {
	meeting, appErr := s.loadMeetingRow(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	participants, err := s.Repo.GetParticipantsByMeetingID(ctx, meeting.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load participants", err)
	}
	meeting.Participants = participants

	return meeting, nil
}

// loadMeetingRow fetches the meeting row only
func (s *MeetingService) loadMeetingRow(ctx context.Context, id string) (*entity.Meeting, *errors.AppError) {
	meetingID, appErr := parseMeetingID(id)
	if appErr != nil {
		return nil, appErr
	}

	meeting, err := s.Repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "meeting not found", nil)
	}

	return meeting, nil
}

func (s *MeetingService) conflictCacheKey(ctx context.Context, meetingID uuid.UUID) string {
	if s.Cache == nil || !s.Cache.Enabled() {
		return ""
	}
	return fmt.Sprintf("conflicts:v%d:meeting:%s", s.Cache.Version(ctx), meetingID)
}

func (s *MeetingService) bumpVersion(ctx context.Context) {
	if s.Cache != nil && s.Cache.Enabled() {
		s.Cache.BumpVersion(ctx)
	}
}

func parseMeetingID(id string) (uuid.UUID, *errors.AppError) {
	meetingID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrInvalidInput, "invalid meeting id", err)
	}
	return meetingID, nil
}

func parseTimeRange(startStr, endStr string) (time.Time, time.Time, *errors.AppError) {
	start, appErr := parseTimestamp(startStr, "start_time")
	if appErr != nil {
		return time.Time{}, time.Time{}, appErr
	}
	end, appErr := parseTimestamp(endStr, "end_time")
	if appErr != nil {
		return time.Time{}, time.Time{}, appErr
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "end_time must be after start_time", nil)
	}
	return start, end, nil
}

func parseTimestamp(value, field string) (time.Time, *errors.AppError) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		msg := fmt.Sprintf("invalid %s, expected RFC3339 timestamp with offset (e.g. 2025-12-01T10:00:00+00:00)", field)
		return time.Time{}, errors.NewAppError(errors.ErrInvalidInput, msg, err)
	}
	return t.UTC(), nil
}

func validateEmail(email string) *errors.AppError {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid email address", nil)
	}
	return nil
}
