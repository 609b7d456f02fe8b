package participant

import (
	"meeting-scheduler-api/core/cache"
	"meeting-scheduler-api/core/database"
	"meeting-scheduler-api/core/middleware"
	"meeting-scheduler-api/modules/meeting/repository"
	"meeting-scheduler-api/modules/participant/controller"
	"meeting-scheduler-api/modules/participant/router"
	"meeting-scheduler-api/modules/participant/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the participant module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c *cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewMeetingRepository(db)
	svc := service.NewParticipantService(repo, c)
	ctrl := controller.NewParticipantController(svc)
	rtr := router.NewParticipantRouter(ctrl)

	rtr.Setup(e, mw)
}
