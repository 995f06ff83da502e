package handler

import (
	bookingapp "github.com/celebratech/backend/internal/application/booking"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking API endpoints
type BookingHandler struct {
	BaseHandler
	bookingService *bookingapp.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *bookingapp.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// RegisterRoutes registers booking routes
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.GetByID)
		bookings.PUT("/:id", h.Update)
		bookings.POST("/:id/complete", h.Complete)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.GET("/:id/cancellation", h.GetCancellation)
	}
}

// GetByID retrieves a booking visible to the caller
func (h *BookingHandler) GetByID(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	response, err := h.bookingService.GetByID(c.Request.Context(), caller, bookingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List lists bookings scoped to the caller's role
func (h *BookingHandler) List(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter bookingapp.BookingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.bookingService.List(c.Request.Context(), caller, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// Update changes non-financial booking metadata
func (h *BookingHandler) Update(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	var req bookingapp.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.bookingService.Update(c.Request.Context(), caller, bookingID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Complete marks a booking delivered once the event date has passed
func (h *BookingHandler) Complete(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	var req bookingapp.CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.bookingService.Complete(c.Request.Context(), caller, bookingID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Cancel cancels a booking under the tiered refund policy
func (h *BookingHandler) Cancel(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	var req bookingapp.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.bookingService.Cancel(c.Request.Context(), caller, bookingID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// GetCancellation retrieves the cancellation record of a cancelled booking
func (h *BookingHandler) GetCancellation(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	response, err := h.bookingService.GetCancellation(c.Request.Context(), caller, bookingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}
