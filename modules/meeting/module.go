package meeting

import (
	"meeting-scheduler-api/core/cache"
	"meeting-scheduler-api/core/database"
	"meeting-scheduler-api/core/middleware"
	"meeting-scheduler-api/modules/meeting/controller"
	"meeting-scheduler-api/modules/meeting/repository"
	"meeting-scheduler-api/modules/meeting/router"
	"meeting-scheduler-api/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the meeting module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c *cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewMeetingRepository(db)
	svc := service.NewMeetingService(repo, c)
	ctrl := controller.NewMeetingController(svc)
	rtr := router.NewMeetingRouter(ctrl)

	rtr.Setup(e, mw)
}
