package handler

import (
	bookingapp "github.com/celebratech/backend/internal/application/booking"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *bookingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *bookingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes registers payment routes. The gateway confirmation callback
// lives under /callbacks, outside JWT authentication.
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Record)
		payments.GET("/:id", h.GetByID)
	}
	rg.GET("/bookings/:id/payments", h.ListByBooking)
	rg.POST("/callbacks/payments/:id", h.Process)
}

// Record records a pending payment against a booking
func (h *PaymentHandler) Record(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req bookingapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.paymentService.Record(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// GetByID retrieves a payment visible to the caller
func (h *PaymentHandler) GetByID(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	paymentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	response, err := h.paymentService.GetByID(c.Request.Context(), caller, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// ListByBooking lists the payments recorded against a booking
func (h *PaymentHandler) ListByBooking(c *gin.Context) {
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

	responses, err := h.paymentService.ListByBooking(c.Request.Context(), caller, bookingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// Process handles the gateway confirmation callback. Replayed notifications
// for an already settled transaction return the settled payment unchanged.
func (h *PaymentHandler) Process(c *gin.Context) {
	paymentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req bookingapp.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.paymentService.Process(c.Request.Context(), paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}
