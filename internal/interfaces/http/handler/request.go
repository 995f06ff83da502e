package handler

import (
	bookingapp "github.com/celebratech/backend/internal/application/booking"
	"github.com/gin-gonic/gin"
)

// RequestHandler handles booking request API endpoints
type RequestHandler struct {
	BaseHandler
	requestService *bookingapp.RequestService
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requestService *bookingapp.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// RegisterRoutes registers booking request routes
func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	{
		requests.POST("", h.Create)
		requests.GET("", h.List)
		requests.GET("/:id", h.GetByID)
		requests.PUT("/:id", h.Update)
		requests.POST("/:id/view", h.MarkViewed)
	}
}

// Create creates a new booking request. Organizers submit it to the vendor
// immediately unless the draft flag is set.
func (h *RequestHandler) Create(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req bookingapp.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.requestService.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// GetByID retrieves a booking request visible to the caller
func (h *RequestHandler) GetByID(c *gin.Context) {
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

	response, err := h.requestService.GetByID(c.Request.Context(), caller, requestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List lists booking requests scoped to the caller's role
func (h *RequestHandler) List(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter bookingapp.RequestListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.requestService.List(c.Request.Context(), caller, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// Update updates a draft or pending booking request
func (h *RequestHandler) Update(c *gin.Context) {
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

	var req bookingapp.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.requestService.Update(c.Request.Context(), caller, requestID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// MarkViewed records the first time the vendor opens a request
func (h *RequestHandler) MarkViewed(c *gin.Context) {
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

	response, err := h.requestService.MarkViewed(c.Request.Context(), caller, requestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}
