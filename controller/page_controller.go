package controller

import (
	"net/http"

	"finboard/model"

	"github.com/gin-gonic/gin"
)

type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

// RegisterRoutes sets up the dashboard page at the site root.
func (ctrl *PageController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", ctrl.Index)
}

// Index renders the single-page dashboard shell. All data on it loads
// through the JSON API.
func (ctrl *PageController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"DefaultTicker": "AAPL",
		"DefaultRange":  model.DefaultRange,
		"RangeLabels":   model.RangeLabels(),
	})
}
