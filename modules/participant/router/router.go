package router

import (
	"meeting-scheduler-api/core/middleware"
	"meeting-scheduler-api/modules/participant/controller"

	"github.com/labstack/echo/v4"
)

// ParticipantRouter handles participant routes
type ParticipantRouter struct {
	ParticipantController *controller.ParticipantController
}

// NewParticipantRouter creates a new router
func NewParticipantRouter(participantController *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{
		ParticipantController: participantController,
	}
}

// Setup registers participant routes
func (r *ParticipantRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	participantRoutes := v1.Group("/participants")

	participantRoutes.GET("/:email/meetings", r.ParticipantController.GetMeetings)
	participantRoutes.GET("/:email/conflicts", r.ParticipantController.GetConflicts)
}
