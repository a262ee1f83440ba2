package controller

import (
	"errors"
	"net/http"

	"finboard/customerrors"
	"finboard/model"
	"finboard/service"
	"finboard/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(ds service.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: ds,
	}
}

// RegisterRoutes sets up the dashboard data endpoint.
func (ctrl *DashboardController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", ctrl.GetDashboard)
}

// GetDashboard handles one ticker submission.
// @Summary      Get Ticker Dashboard
// @Description  Fetches the quote snapshot and price history for a ticker and returns the chart series plus the three formatted summary tables.
// @Tags         Dashboard
// @Produce      json
// @Param        ticker  query     string  true   "Stock ticker (e.g. AAPL)"
// @Param        range   query     string  false  "Time frame label (1D, 5D, 1M, 6M, YTD, 1Y, 5Y); unknown labels fall back to 1M"
// @Success      200     {object}  model.Response{data=model.DashboardData}
// @Failure      400     {object}  model.Response
// @Failure      502     {object}  model.Response
// @Router       /dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	var req model.DashboardQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Please provide a valid stock ticker.",
		})
		return
	}

	if issues := zog.Struct(validator.TickerShape).Validate(&req); issues != nil {
		log.Warn().Interface("issues", issues).Msg("Dashboard query failed validation")
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Please provide a valid stock ticker.",
		})
		return
	}

	data, err := ctrl.dashboardService.BuildDashboard(c.Request.Context(), req.Ticker, model.RangeLabel(req.Range))
	if err != nil {
		if errors.Is(err, customerrors.ErrEmptyTicker) {
			c.JSON(http.StatusBadRequest, model.Response{
				Success: false,
				Message: "Please provide a valid stock ticker.",
			})
			return
		}
		ctrl.handleError(c, "Failed to build dashboard", err)
		return
	}

	ctrl.handleSuccess(c, "Fetch Success", data)
}

func (ctrl *DashboardController) handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// handleError reports an upstream provider failure.
func (ctrl *DashboardController) handleError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadGateway, model.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
