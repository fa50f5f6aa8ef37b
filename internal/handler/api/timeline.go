package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "equiplend/internal/handler/dto/response"
	"equiplend/internal/handler/httperr"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TimelineHandler struct {
	timelineQueries queries.TimelineQueries
}

func NewTimelineHandler(timelineQueries queries.TimelineQueries) *TimelineHandler {
	return &TimelineHandler{timelineQueries: timelineQueries}
}

// @Summary Get yearly timeline
// @Description Month-by-month stripe layout of every booking in the year
// @Tags timeline
// @Produce json
// @Param year path int true "Calendar year"
// @Success 200 {array} resdto.MonthResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /timeline/{year} [get]
func (h *TimelineHandler) GetYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err == nil && (year < 1970 || year > 9999) {
		err = errs.Newf("year %d out of range", year)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid year", nil)
		return
	}

	months, err := h.timelineQueries.GetYear(c.Request.Context(), year)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTimelineUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking listing unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMonthViews(months))
}
