package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/httpresp"
	"github.com/kirienkoandrew/HairCut-1/internal/middleware"
	ucScheduling "github.com/kirienkoandrew/HairCut-1/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createBooking *ucScheduling.CreateBooking
	listBookings  *ucScheduling.ListBookings
}

func NewAppointmentHandler(
	createBooking *ucScheduling.CreateBooking,
	listBookings *ucScheduling.ListBookings,
) *AppointmentHandler {
	return &AppointmentHandler{
		createBooking: createBooking,
		listBookings:  listBookings,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required,max=150"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceDate string `json:"service_date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	DurationMin int    `json:"duration_minutes" binding:"required,min=15,max=600"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	masterID := c.MustGet(middleware.ContextMasterID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ap, err := h.createBooking.Execute(c.Request.Context(), ucScheduling.CreateBookingInput{
		MasterID:    masterID,
		CreatedBy:   userID,
		RequestID:   c.GetString(middleware.ContextRequestID),
		ServiceDate: req.ServiceDate,
		StartTime:   req.StartTime,
		DurationMin: req.DurationMin,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Notes:       req.Notes,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	masterID := c.MustGet(middleware.ContextMasterID).(uint)

	bookings, err := h.listBookings.Execute(
		c.Request.Context(),
		masterID,
		c.Query("date"),
	)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}
