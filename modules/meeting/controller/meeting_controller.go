package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"meeting-scheduler-api/core/controller"
	"meeting-scheduler-api/core/errors"
	"meeting-scheduler-api/core/params"
	"meeting-scheduler-api/modules/meeting/dto"
	"meeting-scheduler-api/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

// MeetingController handles meeting HTTP requests
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

// NewMeetingController creates a new controller
func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

// CreateMeeting handles POST /meetings
// @Summary Create a meeting
// @Description Create a new meeting with a title, optional description and a time range
// @Tags Meeting
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Meeting details"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /meetings [post]
func (c *MeetingController) CreateMeeting(ctx echo.Context) error {
	var req dto.CreateMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.CreateMeeting(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting created successfully")
}

// GetMeeting handles GET /meetings/:id
// @Summary Get a meeting
// @Description Get a meeting with its participants by ID
// @Tags Meeting
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{id} [get]
func (c *MeetingController) GetMeeting(ctx echo.Context) error {
	result, appErr := c.MeetingService.GetMeetingByID(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListMeetings handles GET /meetings
// @Summary List meetings
// @Description List all meetings, optionally bounded by start_date and end_date (inclusive, on meeting start time)
// @Tags Meeting
// @Produce json
// @Param start_date query string false "RFC3339 lower bound"
// @Param end_date query string false "RFC3339 upper bound"
// @Success 200 {array} dto.MeetingResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /meetings [get]
func (c *MeetingController) ListMeetings(ctx echo.Context) error {
	dateRange, err := params.ParseDateRange(ctx.QueryParam("start_date"), ctx.QueryParam("end_date"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.MeetingService.ListMeetings(ctx.Request().Context(), dateRange)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateMeeting handles PUT /meetings/:id
// @Summary Update a meeting
// @Description Update meeting details; omitted fields are left unchanged
// @Tags Meeting
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body dto.UpdateMeetingRequest true "Fields to update"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{id} [put]
func (c *MeetingController) UpdateMeeting(ctx echo.Context) error {
	var req dto.UpdateMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.UpdateMeeting(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting updated successfully")
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary Delete a meeting
// @Description Delete a meeting and all of its participants
// @Tags Meeting
// @Param id path string true "Meeting ID"
// @Success 204
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{id} [delete]
func (c *MeetingController) DeleteMeeting(ctx echo.Context) error {
	if appErr := c.MeetingService.DeleteMeeting(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.NoContentResponse(ctx)
}

// AddParticipant handles POST /meetings/:id/participants
// @Summary Add a participant
// @Description Add a participant to a meeting; emails are unique per meeting
// @Tags Meeting
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body dto.AddParticipantRequest true "Participant details"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /meetings/{id}/participants [post]
func (c *MeetingController) AddParticipant(ctx echo.Context) error {
	var req dto.AddParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.AddParticipant(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Participant added successfully")
}

// RemoveParticipant handles DELETE /meetings/:id/participants/:email
// @Summary Remove a participant
// @Description Remove a participant from a meeting by email
// @Tags Meeting
// @Param id path string true "Meeting ID"
// @Param email path string true "Participant email"
// @Success 204
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{id}/participants/{email} [delete]
func (c *MeetingController) RemoveParticipant(ctx echo.Context) error {
	email, err := url.PathUnescape(ctx.Param("email"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid email parameter")
	}

	if appErr := c.MeetingService.RemoveParticipant(ctx.Request().Context(), ctx.Param("id"), email); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.NoContentResponse(ctx)
}

// CheckConflicts handles GET /meetings/:id/conflicts
// @Summary Check meeting conflicts
// @Description For each participant of the meeting, list their other meetings that overlap it
// @Tags Meeting
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingConflictReport
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{id}/conflicts [get]
func (c *MeetingController) CheckConflicts(ctx echo.Context) error {
	result, appErr := c.MeetingService.CheckConflicts(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ExportMeeting handles GET /meetings/:id/export
// @Summary Export a meeting as iCalendar
// @Description Download the meeting as an RFC 5545 .ics file
// @Tags Meeting
// @Produce text/calendar
// @Param id path string true "Meeting ID"
// @Success 200 {string} string "iCalendar document"
// @Failure 404 {object} controller.ErrorResponse
// @Router /meetings/{id}/export [get]
func (c *MeetingController) ExportMeeting(ctx echo.Context) error {
	data, filename, appErr := c.MeetingService.ExportMeeting(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", data)
}
