package dto

import (
	"time"

	"meeting-scheduler-api/modules/meeting/entity"
)

// ===================== Request DTOs =====================

// CreateMeetingRequest for creating a new meeting
type CreateMeetingRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"` // RFC3339 with offset
	EndTime     string `json:"end_time" validate:"required"`   // RFC3339 with offset
}

// UpdateMeetingRequest for updating meeting details; empty fields are left
// unchanged
type UpdateMeetingRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartTime   string  `json:"start_time"` // RFC3339 with offset
	EndTime     string  `json:"end_time"`   // RFC3339 with offset
}

// AddParticipantRequest for adding a participant to a meeting
type AddParticipantRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

// ===================== Response DTOs =====================

// MeetingResponse for meeting details
type MeetingResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	StartTime    time.Time             `json:"start_time"`
	EndTime      time.Time             `json:"end_time"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Participants []ParticipantResponse `json:"participants"`
}

// ParticipantResponse for a single participant
type ParticipantResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MeetingSummary is the reduced meeting shape used in meeting-centric
// conflict reports
type MeetingSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// MeetingConflict pairs a meeting with the meetings it overlaps
type MeetingConflict struct {
	Meeting         MeetingResponse   `json:"meeting"`
	ConflictingWith []MeetingResponse `json:"conflicting_with"`
}

// ParticipantConflictReport is the participant-centric conflict report.
// Meetings without conflicts are omitted from Conflicts entirely.
type ParticipantConflictReport struct {
	ParticipantEmail string            `json:"participant_email"`
	HasConflicts     bool              `json:"has_conflicts"`
	Conflicts        []MeetingConflict `json:"conflicts"`
}

// MeetingConflictReport is the meeting-centric conflict report: participant
// email to the meetings elsewhere in the corpus that overlap the target.
// Only participants with at least one conflict appear.
type MeetingConflictReport struct {
	HasConflicts bool                        `json:"has_conflicts"`
	Conflicts    map[string][]MeetingSummary `json:"conflicts"`
}

// ===================== Mapper Functions =====================

// ToMeetingResponse maps entity to DTO
func ToMeetingResponse(m *entity.Meeting) *MeetingResponse {
	resp := &MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Participants: make([]ParticipantResponse, 0, len(m.Participants)),
	}

	if m.Description != nil {
		resp.Description = *m.Description
	}

	for _, p := range m.Participants {
		resp.Participants = append(resp.Participants, *ToParticipantResponse(&p))
	}

	return resp
}

// ToParticipantResponse maps entity to DTO
func ToParticipantResponse(p *entity.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:        p.ID.String(),
		Email:     p.Email,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// ToMeetingSummary maps entity to the conflict-report summary shape
func ToMeetingSummary(m *entity.Meeting) MeetingSummary {
	s := MeetingSummary{
		ID:        m.ID.String(),
		Title:     m.Title,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
	}
	if m.Description != nil {
		s.Description = *m.Description
	}
	return s
}
