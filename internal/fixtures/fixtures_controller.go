package fixtures

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/pkg/utils"
)

// FixturesController handles fixture search requests
type FixturesController struct {
	client *Client
}

// NewFixturesController creates a new fixtures controller
func NewFixturesController(client *Client) *FixturesController {
	return &FixturesController{client: client}
}

// Search godoc
// @Summary Search fixtures worldwide by date and city
// @Description One-shot upstream lookup, filtered by substring match against venue city or team names. No retry; upstream failures surface as one message.
// @Tags fixtures
// @Produce json
// @Param date query string true "Match date (YYYY-MM-DD)"
// @Param city query string true "City or team substring"
// @Success 200 {array} MatchSearchResult
// @Failure 400 {object} utils.ErrorResponse "Missing parameters"
// @Failure 502 {object} utils.ErrorResponse "Upstream failure"
// @Router /fixtures/search [get]
// @Security Bearer
func (c *FixturesController) Search(ctx *gin.Context) {
	date := ctx.Query("date")
	city := ctx.Query("city")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "date parameter is required"})
		return
	}
	if city == "" {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "city parameter is required"})
		return
	}

	results, err := c.client.Search(ctx.Request.Context(), date, city)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, utils.ErrorResponse{Error: err.Error()})
		return
	}
	if len(results) == 0 {
		ctx.JSON(http.StatusOK, []MatchSearchResult{})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
