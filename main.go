package main

import (
	"meeting-scheduler-api/core/logger"
	"meeting-scheduler-api/core/server"

	_ "meeting-scheduler-api/docs" // Swagger docs
)

// @title Meeting Scheduler API
// @version 1.0
// @description REST API for scheduling meetings, managing participants, detecting scheduling conflicts and exporting meetings as iCalendar files.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
