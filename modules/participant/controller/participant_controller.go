package controller

import (
	"net/url"

	"meeting-scheduler-api/core/controller"
	"meeting-scheduler-api/core/errors"
	"meeting-scheduler-api/core/params"
	"meeting-scheduler-api/modules/participant/service"

	"github.com/labstack/echo/v4"
)

// ParticipantController handles participant HTTP requests
type ParticipantController struct {
	controller.BaseController
	ParticipantService service.ParticipantServiceInterface
}

// NewParticipantController creates a new controller
func NewParticipantController(svc service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		BaseController:     controller.NewBaseController(),
		ParticipantService: svc,
	}
}

// GetMeetings handles GET /participants/:email/meetings
// @Summary List a participant's meetings
// @Description List every meeting a participant attends, optionally bounded by start_date and end_date
// @Tags Participant
// @Produce json
// @Param email path string true "Participant email"
// @Param start_date query string false "RFC3339 lower bound"
// @Param end_date query string false "RFC3339 upper bound"
// @Success 200 {array} dto.MeetingResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /participants/{email}/meetings [get]
func (c *ParticipantController) GetMeetings(ctx echo.Context) error {
	email, err := url.PathUnescape(ctx.Param("email"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid email parameter")
	}

	dateRange, err := params.ParseDateRange(ctx.QueryParam("start_date"), ctx.QueryParam("end_date"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.ParticipantService.GetMeetings(ctx.Request().Context(), email, dateRange)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetConflicts handles GET /participants/:email/conflicts
// @Summary Check a participant's conflicts
// @Description List the participant's overlapping meetings, optionally bounded by start_date and end_date and excluding one meeting
// @Tags Participant
// @Produce json
// @Param email path string true "Participant email"
// @Param start_date query string false "RFC3339 lower bound"
// @Param end_date query string false "RFC3339 upper bound"
// @Param exclude_meeting_id query string false "Meeting ID to leave out"
// @Success 200 {object} dto.ParticipantConflictReport
// @Failure 400 {object} controller.ErrorResponse
// @Router /participants/{email}/conflicts [get]
func (c *ParticipantController) GetConflicts(ctx echo.Context) error {
	email, err := url.PathUnescape(ctx.Param("email"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid email parameter")
	}

	dateRange, err := params.ParseDateRange(ctx.QueryParam("start_date"), ctx.QueryParam("end_date"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.ParticipantService.GetConflicts(ctx.Request().Context(), email, dateRange, ctx.QueryParam("exclude_meeting_id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
