package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meeting-scheduler-api/core/errors"
	"meeting-scheduler-api/core/params"
	"meeting-scheduler-api/modules/meeting/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMeetingService returns canned responses for controller tests
type stubMeetingService struct {
	meeting   *dto.MeetingResponse
	conflicts *dto.MeetingConflictReport
	icsData   []byte
	icsName   string
	err       *errors.AppError
}

func (s *stubMeetingService) CreateMeeting(_ context.Context, _ *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	return s.meeting, s.err
}

func (s *stubMeetingService) GetMeetingByID(_ context.Context, _ string) (*dto.MeetingResponse, *errors.AppError) {
	return s.meeting, s.err
}

func (s *stubMeetingService) ListMeetings(_ context.Context, _ params.DateRange) ([]dto.MeetingResponse, *errors.AppError) {
	if s.err != nil {
		return nil, s.err
	}
	return []dto.MeetingResponse{*s.meeting}, nil
}

func (s *stubMeetingService) UpdateMeeting(_ context.Context, _ string, _ *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	return s.meeting, s.err
}

func (s *stubMeetingService) DeleteMeeting(_ context.Context, _ string) *errors.AppError {
	return s.err
}

func (s *stubMeetingService) AddParticipant(_ context.Context, _ string, _ *dto.AddParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ParticipantResponse{Email: "alice@example.com", Name: "Alice"}, nil
}

func (s *stubMeetingService) RemoveParticipant(_ context.Context, _ string, _ string) *errors.AppError {
	return s.err
}

func (s *stubMeetingService) CheckConflicts(_ context.Context, _ string) (*dto.MeetingConflictReport, *errors.AppError) {
	return s.conflicts, s.err
}

func (s *stubMeetingService) ExportMeeting(_ context.Context, _ string) ([]byte, string, *errors.AppError) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.icsData, s.icsName, nil
}

func performRequest(svc *stubMeetingService, method, target, body string, handler func(*MeetingController, echo.Context) error, pathParams map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	for name, value := range pathParams {
		ctx.SetParamNames(name)
		ctx.SetParamValues(value)
	}

	ctrl := NewMeetingController(svc)
	err := handler(ctrl, ctx)
	if err != nil {
		e.HTTPErrorHandler(err, ctx)
	}
	return rec
}

func TestExportMeetingHeaders(t *testing.T) {
	svc := &stubMeetingService{
		icsData: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
		icsName: "Team_Sync.ics",
	}

	rec := performRequest(svc, http.MethodGet, "/api/v1/meetings/x/export", "",
		(*MeetingController).ExportMeeting, map[string]string{"id": "x"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="Team_Sync.ics"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, string(svc.icsData), rec.Body.String())
}

func TestCheckConflictsEnvelope(t *testing.T) {
	svc := &stubMeetingService{
		conflicts: &dto.MeetingConflictReport{
			HasConflicts: true,
			Conflicts: map[string][]dto.MeetingSummary{
				"alice@example.com": {{ID: "m2", Title: "Review"}},
			},
		},
	}

	rec := performRequest(svc, http.MethodGet, "/api/v1/meetings/x/conflicts", "",
		(*MeetingController).CheckConflicts, map[string]string{"id": "x"})

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data dto.MeetingConflictReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.HasConflicts)
	require.Len(t, envelope.Data.Conflicts["alice@example.com"], 1)
	assert.Equal(t, "Review", envelope.Data.Conflicts["alice@example.com"][0].Title)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *errors.AppError
		expected int
	}{
		{"not found", errors.NewAppError(errors.ErrNotFound, "meeting not found", nil), http.StatusNotFound},
		{"invalid input", errors.NewAppError(errors.ErrInvalidInput, "invalid meeting id", nil), http.StatusBadRequest},
		{"duplicate", errors.NewAppError(errors.ErrAlreadyExists, "already exists", nil), http.StatusConflict},
		{"internal", errors.NewAppError(errors.ErrInternalServer, "boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubMeetingService{err: tt.appErr}

			rec := performRequest(svc, http.MethodGet, "/api/v1/meetings/x", "",
				(*MeetingController).GetMeeting, map[string]string{"id": "x"})

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestDeleteMeetingNoContent(t *testing.T) {
	rec := performRequest(&stubMeetingService{}, http.MethodDelete, "/api/v1/meetings/x", "",
		(*MeetingController).DeleteMeeting, map[string]string{"id": "x"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestListMeetingsRejectsBadDateRange(t *testing.T) {
	svc := &stubMeetingService{meeting: &dto.MeetingResponse{ID: "m1"}}

	rec := performRequest(svc, http.MethodGet, "/api/v1/meetings?start_date=yesterday", "",
		(*MeetingController).ListMeetings, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
