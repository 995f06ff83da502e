package handler

import (
	bookingapp "github.com/celebratech/backend/internal/application/booking"
	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote API endpoints
type QuoteHandler struct {
	BaseHandler
	quoteService *bookingapp.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *bookingapp.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// RegisterRoutes registers quote routes
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.Create)
		quotes.GET("/:id", h.GetByID)
		quotes.POST("/:id/send", h.Send)
		quotes.POST("/:id/view", h.View)
		quotes.POST("/:id/accept", h.Accept)
		quotes.POST("/:id/reject", h.Reject)
	}
	rg.GET("/requests/:id/quotes", h.ListByRequest)
}

// Create creates a draft quote against a pending booking request. A repeat
// create on the same request produces the next revision.
func (h *QuoteHandler) Create(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req bookingapp.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.quoteService.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// GetByID retrieves a quote visible to the caller
func (h *QuoteHandler) GetByID(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	quoteID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	response, err := h.quoteService.GetByID(c.Request.Context(), caller, quoteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// ListByRequest lists all quote revisions for a booking request
func (h *QuoteHandler) ListByRequest(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	responses, err := h.quoteService.ListByRequest(c.Request.Context(), caller, requestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// Send delivers a draft quote to the organizer
func (h *QuoteHandler) Send(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	quoteID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	response, err := h.quoteService.Send(c.Request.Context(), caller, quoteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// View records the first time the organizer opens a sent quote
func (h *QuoteHandler) View(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	quoteID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	response, err := h.quoteService.View(c.Request.Context(), caller, quoteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Accept accepts a quote and returns the binding booking created from it
func (h *QuoteHandler) Accept(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	quoteID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	response, err := h.quoteService.Accept(c.Request.Context(), caller, quoteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Reject rejects a quote with a reason
func (h *QuoteHandler) Reject(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	quoteID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	var req bookingapp.RejectQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.quoteService.Reject(c.Request.Context(), caller, quoteID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}
