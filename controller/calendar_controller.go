package controller

import (
	"net/http"

	"finboard/model"
	"finboard/service"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	calendarService service.CalendarService
}

func NewCalendarController(cs service.CalendarService) *CalendarController {
	return &CalendarController{
		calendarService: cs,
	}
}

// RegisterRoutes sets up the economic calendar endpoint.
func (ctrl *CalendarController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/calendar", ctrl.GetCalendar)
}

// GetCalendar lists the sample economic calendar.
// @Summary      Get Economic Calendar
// @Description  Returns the seeded schedule of upcoming economic releases in date order.
// @Tags         Calendar
// @Produce      json
// @Success      200  {object}  model.Response{data=[]model.CalendarEventDto}
// @Router       /calendar [get]
func (ctrl *CalendarController) GetCalendar(c *gin.Context) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: "Fetch Success",
		Data:    ctrl.calendarService.GetUpcomingEvents(),
	})
}
