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
	"meeting-scheduler-api/core/params"
	"meeting-scheduler-api/modules/meeting/dto"
	"meeting-scheduler-api/modules/meeting/repository"
	meetingService "meeting-scheduler-api/modules/meeting/service"

	"github.com/google/uuid"
)

// ParticipantService implements participant-centric queries over the shared
// meeting tables
type ParticipantService struct {
	Repo  repository.MeetingRepositoryInterface
	Cache *cache.Cache
}

// NewParticipantService creates a new service instance
func NewParticipantService(repo repository.MeetingRepositoryInterface, c *cache.Cache) *ParticipantService {
	return &ParticipantService{Repo: repo, Cache: c}
}

// ParticipantServiceInterface defines the service contract
type ParticipantServiceInterface interface {
	GetMeetings(ctx context.Context, email string, dateRange params.DateRange) ([]dto.MeetingResponse, *errors.AppError)
	GetConflicts(ctx context.Context, email string, dateRange params.DateRange, excludeMeetingID string) (*dto.ParticipantConflictReport, *errors.AppError)
}

// GetMeetings returns every meeting the participant attends, ordered by
// start time, optionally bounded by the date range.
func (s *ParticipantService) GetMeetings(ctx context.Context, email string, dateRange params.DateRange) ([]dto.MeetingResponse, *errors.AppError) {
	if appErr := validateEmail(email); appErr != nil {
		return nil, appErr
	}

	meetings, err := s.Repo.GetMeetingsByParticipantEmail(ctx, email, dateRange)
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

// GetConflicts returns the participant's overlapping meetings. The date
// bounds and exclusion are applied before pairing, so a meeting outside the
// range never appears, not even as a counterpart.
func (s *ParticipantService) GetConflicts(ctx context.Context, email string, dateRange params.DateRange, excludeMeetingID string) (*dto.ParticipantConflictReport, *errors.AppError) {
	if appErr := validateEmail(email); appErr != nil {
		return nil, appErr
	}

	opts := meetingService.ConflictOptions{
		StartDate: dateRange.StartDate,
		EndDate:   dateRange.EndDate,
	}
	if excludeMeetingID != "" {
		id, err := uuid.Parse(excludeMeetingID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid exclude_meeting_id", err)
		}
		opts.ExcludeMeetingID = &id
	}

	cacheKey := s.conflictCacheKey(ctx, email, dateRange, excludeMeetingID)
	if cacheKey != "" {
		if raw, ok := s.Cache.Get(ctx, cacheKey); ok {
			var cached dto.ParticipantConflictReport
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	meetings, err := s.Repo.GetMeetingsByParticipantEmail(ctx, email, params.DateRange{})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list meetings", err)
	}
	for i := range meetings {
		participants, err := s.Repo.GetParticipantsByMeetingID(ctx, meetings[i].ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load participants", err)
		}
		meetings[i].Participants = participants
	}

	report := meetingService.ConflictsForParticipant(email, meetings, opts)

	if cacheKey != "" {
		if raw, err := json.Marshal(report); err == nil {
			s.Cache.Set(ctx, cacheKey, raw, constants.ConflictCacheTTL*time.Second)
		}
	}

	return &report, nil
}

func (s *ParticipantService) conflictCacheKey(ctx context.Context, email string, dateRange params.DateRange, excludeMeetingID string) string {
	if s.Cache == nil || !s.Cache.Enabled() {
		return ""
	}
	start, end := "", ""
	if dateRange.StartDate != nil {
		start = dateRange.StartDate.UTC().Format(time.RFC3339)
	}
	if dateRange.EndDate != nil {
		end = dateRange.EndDate.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("conflicts:v%d:participant:%s:%s:%s:%s",
		s.Cache.Version(ctx), email, start, end, excludeMeetingID)
}

func validateEmail(email string) *errors.AppError {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid email address", nil)
	}
	return nil
}
