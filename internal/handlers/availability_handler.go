package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/httpresp"
	"github.com/kirienkoandrew/HairCut-1/internal/middleware"
	ucScheduling "github.com/kirienkoandrew/HairCut-1/internal/usecase/scheduling"
)

type AvailabilityHandler struct {
	monthGrid   *ucScheduling.MonthGrid
	daySchedule *ucScheduling.DaySchedule
}

func NewAvailabilityHandler(
	monthGrid *ucScheduling.MonthGrid,
	daySchedule *ucScheduling.DaySchedule,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		monthGrid:   monthGrid,
		daySchedule: daySchedule,
	}
}

// ======================================================
// MONTH GRID
// ======================================================

func (h *AvailabilityHandler) Month(c *gin.Context) {
	masterID := c.MustGet(middleware.ContextMasterID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	weeks, err := h.monthGrid.Execute(c.Request.Context(), masterID, year, month)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_build_month_grid", "Could not build the calendar.")
		return
	}

	c.JSON(200, gin.H{
		"year":  year,
		"month": month,
		"weeks": weeks,
	})
}

// ======================================================
// DAY SLOTS
// ======================================================

func (h *AvailabilityHandler) Day(c *gin.Context) {
	masterID := c.MustGet(middleware.ContextMasterID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	slots, err := h.daySchedule.Execute(c.Request.Context(), masterID, dateStr)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Could not list day slots.")
		return
	}

	httpresp.List(c, slots)
}
