package booking

import (
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Booking Request DTOs ====================

// CreateRequestRequest represents a request to create a booking request
type CreateRequestRequest struct {
	EventID             uuid.UUID        `json:"event_id" binding:"required"`
	VendorID            uuid.UUID        `json:"vendor_id" binding:"required"`
	Title               string           `json:"title" binding:"required,min=1,max=200"`
	Description         string           `json:"description" binding:"max=2000"`
	ServiceCategory     string           `json:"service_category" binding:"required,min=1,max=100"`
	VenueName           string           `json:"venue_name" binding:"max=200"`
	VenueAddress        string           `json:"venue_address" binding:"max=500"`
	GuestCount          int              `json:"guest_count" binding:"min=0"`
	SpecialRequirements string           `json:"special_requirements" binding:"max=2000"`
	BudgetMin           *decimal.Decimal `json:"budget_min"`
	BudgetMax           *decimal.Decimal `json:"budget_max"`
	PreferredContact    string           `json:"preferred_contact" binding:"max=50"`
	ResponseDeadline    *time.Time       `json:"response_deadline"`
	Draft               bool             `json:"draft"`
}

// UpdateRequestRequest represents a request to update a booking request
type UpdateRequestRequest struct {
	Title               string           `json:"title" binding:"required,min=1,max=200"`
	Description         string           `json:"description" binding:"max=2000"`
	VenueName           string           `json:"venue_name" binding:"max=200"`
	VenueAddress        string           `json:"venue_address" binding:"max=500"`
	GuestCount          int              `json:"guest_count" binding:"min=0"`
	SpecialRequirements string           `json:"special_requirements" binding:"max=2000"`
	BudgetMin           *decimal.Decimal `json:"budget_min"`
	BudgetMax           *decimal.Decimal `json:"budget_max"`
	PreferredContact    string           `json:"preferred_contact" binding:"max=50"`
	ResponseDeadline    *time.Time       `json:"response_deadline"`
}

// RequestListFilter represents filter options for booking request lists
type RequestListFilter struct {
	EventID  *uuid.UUID             `form:"event_id"`
	VendorID *uuid.UUID             `form:"vendor_id"`
	Status   *booking.RequestStatus `form:"status"`
	Page     int                    `form:"page" binding:"min=0"`
	PageSize int                    `form:"page_size" binding:"min=0,max=100"`
	OrderBy  string                 `form:"order_by"`
	OrderDir string                 `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// RequestResponse represents a booking request in API responses
type RequestResponse struct {
	ID                  uuid.UUID             `json:"id"`
	EventID             uuid.UUID             `json:"event_id"`
	OrganizerID         uuid.UUID             `json:"organizer_id"`
	VendorID            uuid.UUID             `json:"vendor_id"`
	Title               string                `json:"title"`
	Description         string                `json:"description,omitempty"`
	ServiceCategory     string                `json:"service_category"`
	EventDate           time.Time             `json:"event_date"`
	GuestCount          int                   `json:"guest_count"`
	VenueName           string                `json:"venue_name,omitempty"`
	VenueAddress        string                `json:"venue_address,omitempty"`
	SpecialRequirements string                `json:"special_requirements,omitempty"`
	BudgetMin           *decimal.Decimal      `json:"budget_min,omitempty"`
	BudgetMax           *decimal.Decimal      `json:"budget_max,omitempty"`
	PreferredContact    string                `json:"preferred_contact,omitempty"`
	ResponseDeadline    *time.Time            `json:"response_deadline,omitempty"`
	Status              booking.RequestStatus `json:"status"`
	ExpiresAt           time.Time             `json:"expires_at"`
	VendorViewedAt      *time.Time            `json:"vendor_viewed_at,omitempty"`
	RespondedAt         *time.Time            `json:"responded_at,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

// ToRequestResponse maps a booking request to its API representation
func ToRequestResponse(r *booking.BookingRequest) RequestResponse {
	return RequestResponse{
		ID:                  r.ID,
		EventID:             r.EventID,
		OrganizerID:         r.OrganizerID,
		VendorID:            r.VendorID,
		Title:               r.Title,
		Description:         r.Description,
		ServiceCategory:     r.ServiceCategory,
		EventDate:           r.EventDate,
		GuestCount:          r.GuestCount,
		VenueName:           r.VenueName,
		VenueAddress:        r.VenueAddress,
		SpecialRequirements: r.SpecialRequirements,
		BudgetMin:           r.BudgetMin,
		BudgetMax:           r.BudgetMax,
		PreferredContact:    r.PreferredContact,
		ResponseDeadline:    r.ResponseDeadline,
		Status:              r.Status,
		ExpiresAt:           r.ExpiresAt,
		VendorViewedAt:      r.VendorViewedAt,
		RespondedAt:         r.RespondedAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ToRequestResponses maps a slice of booking requests
func ToRequestResponses(requests []booking.BookingRequest) []RequestResponse {
	responses := make([]RequestResponse, len(requests))
	for i := range requests {
		responses[i] = ToRequestResponse(&requests[i])
	}
	return responses
}

// ==================== Quote DTOs ====================

// CreateQuoteItemInput represents one line item in a create quote request
type CreateQuoteItemInput struct {
	Name               string          `json:"name" binding:"required,min=1,max=200"`
	Description        string          `json:"description" binding:"max=1000"`
	Category           string          `json:"category" binding:"max=100"`
	Quantity           decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice          decimal.Decimal `json:"unit_price" binding:"required"`
	UnitLabel          string          `json:"unit_label" binding:"max=50"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsOptional         bool            `json:"is_optional"`
	IsCustomizable     bool            `json:"is_customizable"`
}

// CreateQuoteRequest represents a request to create a quote for a booking request
type CreateQuoteRequest struct {
	RequestID          uuid.UUID              `json:"request_id" binding:"required"`
	Description        string                 `json:"description" binding:"max=2000"`
	PaymentTerms       string                 `json:"payment_terms" binding:"max=1000"`
	CancellationPolicy string                 `json:"cancellation_policy" binding:"max=1000"`
	Items              []CreateQuoteItemInput `json:"items" binding:"required,min=1"`
	TaxRate            decimal.Decimal        `json:"tax_rate"`
	DiscountAmount     decimal.Decimal        `json:"discount_amount"`
	DiscountReason     string                 `json:"discount_reason" binding:"max=500"`
	DepositPercentage  *decimal.Decimal       `json:"deposit_percentage"`
	ValidDays          int                    `json:"valid_days" binding:"min=0,max=365"`
}

// RejectQuoteRequest represents a request to reject a quote
type RejectQuoteRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// QuoteItemResponse represents a quote line item in API responses
type QuoteItemResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	Category           string          `json:"category,omitempty"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	UnitLabel          string          `json:"unit_label,omitempty"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	Total              decimal.Decimal `json:"total"`
	OrderIndex         int             `json:"order_index"`
	IsOptional         bool            `json:"is_optional"`
	IsCustomizable     bool            `json:"is_customizable"`
}

// QuoteResponse represents a quote in API responses
type QuoteResponse struct {
	ID                 uuid.UUID           `json:"id"`
	QuoteNumber        string              `json:"quote_number"`
	RequestID          uuid.UUID           `json:"request_id"`
	VendorID           uuid.UUID           `json:"vendor_id"`
	OrganizerID        uuid.UUID           `json:"organizer_id"`
	Revision           int                 `json:"revision"`
	Description        string              `json:"description,omitempty"`
	PaymentTerms       string              `json:"payment_terms,omitempty"`
	CancellationPolicy string              `json:"cancellation_policy,omitempty"`
	Items              []QuoteItemResponse `json:"items"`
	Subtotal           decimal.Decimal     `json:"subtotal"`
	TaxRate            decimal.Decimal     `json:"tax_rate"`
	TaxAmount          decimal.Decimal     `json:"tax_amount"`
	DiscountAmount     decimal.Decimal     `json:"discount_amount"`
	DiscountReason     string              `json:"discount_reason,omitempty"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	DepositPercentage  decimal.Decimal     `json:"deposit_percentage"`
	DepositAmount      decimal.Decimal     `json:"deposit_amount"`
	Currency           string              `json:"currency"`
	ValidUntil         time.Time           `json:"valid_until"`
	Status             booking.QuoteStatus `json:"status"`
	RejectionReason    string              `json:"rejection_reason,omitempty"`
	SentAt             *time.Time          `json:"sent_at,omitempty"`
	ViewedAt           *time.Time          `json:"viewed_at,omitempty"`
	AcceptedAt         *time.Time          `json:"accepted_at,omitempty"`
	RejectedAt         *time.Time          `json:"rejected_at,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// ToQuoteResponse maps a quote to its API representation
func ToQuoteResponse(q *booking.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, len(q.Items))
	for i, item := range q.Items {
		items[i] = QuoteItemResponse{
			ID:                 item.ID,
			Name:               item.Name,
			Description:        item.Description,
			Category:           item.Category,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			UnitLabel:          item.UnitLabel,
			DiscountPercentage: item.DiscountPercentage,
			Subtotal:           item.Subtotal,
			DiscountAmount:     item.DiscountAmount,
			Total:              item.Total,
			OrderIndex:         item.OrderIndex,
			IsOptional:         item.IsOptional,
			IsCustomizable:     item.IsCustomizable,
		}
	}
	return QuoteResponse{
		ID:                 q.ID,
		QuoteNumber:        q.QuoteNumber,
		RequestID:          q.RequestID,
		VendorID:           q.VendorID,
		OrganizerID:        q.OrganizerID,
		Revision:           q.Revision,
		Description:        q.Description,
		PaymentTerms:       q.PaymentTerms,
		CancellationPolicy: q.CancellationPolicy,
		Items:              items,
		Subtotal:           q.Subtotal,
		TaxRate:            q.TaxRate,
		TaxAmount:          q.TaxAmount,
		DiscountAmount:     q.DiscountAmount,
		DiscountReason:     q.DiscountReason,
		TotalAmount:        q.TotalAmount,
		DepositPercentage:  q.DepositPercentage,
		DepositAmount:      q.DepositAmount,
		Currency:           string(q.Currency),
		ValidUntil:         q.ValidUntil,
		Status:             q.Status,
		RejectionReason:    q.RejectionReason,
		SentAt:             q.SentAt,
		ViewedAt:           q.ViewedAt,
		AcceptedAt:         q.AcceptedAt,
		RejectedAt:         q.RejectedAt,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

// ToQuoteResponses maps a slice of quotes
func ToQuoteResponses(quotes []booking.Quote) []QuoteResponse {
	responses := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		responses[i] = ToQuoteResponse(&quotes[i])
	}
	return responses
}

// ==================== Booking DTOs ====================

// BookingListFilter represents filter options for booking lists
type BookingListFilter struct {
	EventID     *uuid.UUID             `form:"event_id"`
	VendorID    *uuid.UUID             `form:"vendor_id"`
	OrganizerID *uuid.UUID             `form:"organizer_id"`
	Status      *booking.BookingStatus `form:"status"`
	Page        int                    `form:"page" binding:"min=0"`
	PageSize    int                    `form:"page_size" binding:"min=0,max=100"`
	OrderBy     string                 `form:"order_by"`
	OrderDir    string                 `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UpdateBookingRequest represents a request to update booking metadata.
// Financial fields are never updatable through this path.
type UpdateBookingRequest struct {
	VenueName    *string `json:"venue_name" binding:"omitempty,max=200"`
	VenueAddress *string `json:"venue_address" binding:"omitempty,max=500"`
	GuestCount   *int    `json:"guest_count" binding:"omitempty,min=0"`
}

// CompleteBookingRequest represents a request to mark a booking delivered
type CompleteBookingRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// CancelBookingRequest represents a request to cancel a booking
type CancelBookingRequest struct {
	Reason         string `json:"reason" binding:"required,min=1,max=500"`
	ReasonCategory string `json:"reason_category" binding:"max=100"`
	Notes          string `json:"notes" binding:"max=2000"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID               uuid.UUID             `json:"id"`
	BookingNumber    string                `json:"booking_number"`
	QuoteID          uuid.UUID             `json:"quote_id"`
	RequestID        uuid.UUID             `json:"request_id"`
	EventID          uuid.UUID             `json:"event_id"`
	OrganizerID      uuid.UUID             `json:"organizer_id"`
	VendorID         uuid.UUID             `json:"vendor_id"`
	Title            string                `json:"title"`
	ServiceCategory  string                `json:"service_category"`
	VenueName        string                `json:"venue_name,omitempty"`
	VenueAddress     string                `json:"venue_address,omitempty"`
	EventDate        time.Time             `json:"event_date"`
	GuestCount       int                   `json:"guest_count"`
	TotalAmount      decimal.Decimal       `json:"total_amount"`
	DepositAmount    decimal.Decimal       `json:"deposit_amount"`
	CommissionRate   decimal.Decimal       `json:"commission_rate"`
	CommissionAmount decimal.Decimal       `json:"commission_amount"`
	AmountPaid       decimal.Decimal       `json:"amount_paid"`
	AmountDue        decimal.Decimal       `json:"amount_due"`
	Currency         string                `json:"currency"`
	PaymentStatus    booking.PaymentStatus `json:"payment_status"`
	Status           booking.BookingStatus `json:"status"`
	CompletionNotes  string                `json:"completion_notes,omitempty"`
	CompletedAt      *time.Time            `json:"completed_at,omitempty"`
	CancelledAt      *time.Time            `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// ToBookingResponse maps a booking to its API representation
func ToBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		BookingNumber:    b.BookingNumber,
		QuoteID:          b.QuoteID,
		RequestID:        b.RequestID,
		EventID:          b.EventID,
		OrganizerID:      b.OrganizerID,
		VendorID:         b.VendorID,
		Title:            b.Title,
		ServiceCategory:  b.ServiceCategory,
		VenueName:        b.VenueName,
		VenueAddress:     b.VenueAddress,
		EventDate:        b.EventDate,
		GuestCount:       b.GuestCount,
		TotalAmount:      b.TotalAmount,
		DepositAmount:    b.DepositAmount,
		CommissionRate:   b.CommissionRate,
		CommissionAmount: b.CommissionAmount,
		AmountPaid:       b.AmountPaid,
		AmountDue:        b.AmountDue,
		Currency:         string(b.Currency),
		PaymentStatus:    b.PaymentStatus,
		Status:           b.Status,
		CompletionNotes:  b.CompletionNotes,
		CompletedAt:      b.CompletedAt,
		CancelledAt:      b.CancelledAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// ToBookingResponses maps a slice of bookings
func ToBookingResponses(bookings []booking.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = ToBookingResponse(&bookings[i])
	}
	return responses
}

// ==================== Payment DTOs ====================

// RecordPaymentRequest represents a request to record a pending payment
type RecordPaymentRequest struct {
	BookingID     uuid.UUID       `json:"booking_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	IsDeposit     bool            `json:"is_deposit"`
	PaymentMethod string          `json:"payment_method" binding:"max=50"`
}

// ProcessPaymentRequest represents a gateway confirmation callback
type ProcessPaymentRequest struct {
	GatewayName          string `json:"gateway_name" binding:"required,min=1,max=100"`
	GatewayTransactionID string `json:"gateway_transaction_id" binding:"required,min=1,max=200"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID                   uuid.UUID                    `json:"id"`
	PaymentNumber        string                       `json:"payment_number"`
	BookingID            uuid.UUID                    `json:"booking_id"`
	Amount               decimal.Decimal              `json:"amount"`
	Currency             string                       `json:"currency"`
	IsDeposit            bool                         `json:"is_deposit"`
	PaymentMethod        string                       `json:"payment_method,omitempty"`
	GatewayName          string                       `json:"gateway_name,omitempty"`
	GatewayTransactionID string                       `json:"gateway_transaction_id,omitempty"`
	Status               booking.BookingPaymentStatus `json:"status"`
	PaidAt               *time.Time                   `json:"paid_at,omitempty"`
	CreatedAt            time.Time                    `json:"created_at"`
}

// ToPaymentResponse maps a payment to its API representation
func ToPaymentResponse(p *booking.BookingPayment) PaymentResponse {
	return PaymentResponse{
		ID:                   p.ID,
		PaymentNumber:        p.PaymentNumber,
		BookingID:            p.BookingID,
		Amount:               p.Amount,
		Currency:             string(p.Currency),
		IsDeposit:            p.IsDeposit,
		PaymentMethod:        p.PaymentMethod,
		GatewayName:          p.GatewayName,
		GatewayTransactionID: p.GatewayTransactionID,
		Status:               p.Status,
		PaidAt:               p.PaidAt,
		CreatedAt:            p.CreatedAt,
	}
}

// ToPaymentResponses maps a slice of payments
func ToPaymentResponses(payments []booking.BookingPayment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}

// ==================== Cancellation DTOs ====================

// CancellationResponse represents a cancellation record in API responses
type CancellationResponse struct {
	ID               uuid.UUID                     `json:"id"`
	BookingID        uuid.UUID                     `json:"booking_id"`
	CancelledBy      uuid.UUID                     `json:"cancelled_by"`
	Initiator        booking.CancellationInitiator `json:"initiator"`
	Reason           string                        `json:"reason"`
	ReasonCategory   string                        `json:"reason_category,omitempty"`
	DaysBeforeEvent  int                           `json:"days_before_event"`
	RefundPercentage decimal.Decimal               `json:"refund_percentage"`
	RefundAmount     decimal.Decimal               `json:"refund_amount"`
	PenaltyAmount    decimal.Decimal               `json:"penalty_amount"`
	OrganizerNotes   string                        `json:"organizer_notes,omitempty"`
	VendorNotes      string                        `json:"vendor_notes,omitempty"`
	CreatedAt        time.Time                     `json:"created_at"`
}

// ToCancellationResponse maps a cancellation record to its API representation
func ToCancellationResponse(c *booking.BookingCancellation) CancellationResponse {
	return CancellationResponse{
		ID:               c.ID,
		BookingID:        c.BookingID,
		CancelledBy:      c.CancelledBy,
		Initiator:        c.Initiator,
		Reason:           c.Reason,
		ReasonCategory:   c.ReasonCategory,
		DaysBeforeEvent:  c.DaysBeforeEvent,
		RefundPercentage: c.RefundPercentage,
		RefundAmount:     c.RefundAmount,
		PenaltyAmount:    c.PenaltyAmount,
		OrganizerNotes:   c.OrganizerNotes,
		VendorNotes:      c.VendorNotes,
		CreatedAt:        c.CreatedAt,
	}
}
