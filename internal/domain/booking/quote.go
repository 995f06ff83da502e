package booking

import (
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/celebratech/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteStatus represents the status of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusViewed   QuoteStatus = "VIEWED"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
)

// IsValid checks if the status is a valid QuoteStatus
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed, QuoteStatusAccepted, QuoteStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of QuoteStatus
func (s QuoteStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft:
		return target == QuoteStatusSent
	case QuoteStatusSent:
		return target == QuoteStatusViewed || target == QuoteStatusAccepted || target == QuoteStatusRejected
	case QuoteStatusViewed:
		return target == QuoteStatusAccepted || target == QuoteStatusRejected
	case QuoteStatusAccepted, QuoteStatusRejected:
		return false // Terminal states
	}
	return false
}

// DefaultQuoteValidityDays is how long a quote stays acceptable after creation
const DefaultQuoteValidityDays = 14

// QuoteItem represents a priced line item in a quote
type QuoteItem struct {
	ID                 uuid.UUID
	QuoteID            uuid.UUID
	Name               string
	Description        string
	Category           string
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	UnitLabel          string
	DiscountPercentage decimal.Decimal
	Subtotal           decimal.Decimal
	DiscountAmount     decimal.Decimal
	Total              decimal.Decimal
	OrderIndex         int
	IsOptional         bool
	IsCustomizable     bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewQuoteItem creates a new quote item with its amounts computed
func NewQuoteItem(quoteID uuid.UUID, name, unitLabel string, quantity, unitPrice, discountPercentage decimal.Decimal, orderIndex int) (*QuoteItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item name cannot be empty")
	}
	pricing, err := CalculateItemPricing(quantity, unitPrice, discountPercentage)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &QuoteItem{
		ID:                 uuid.New(),
		QuoteID:            quoteID,
		Name:               name,
		Quantity:           quantity,
		UnitPrice:          unitPrice,
		UnitLabel:          unitLabel,
		DiscountPercentage: discountPercentage,
		Subtotal:           pricing.Subtotal,
		DiscountAmount:     pricing.DiscountAmount,
		Total:              pricing.Total,
		OrderIndex:         orderIndex,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// Quote is a vendor's priced offer against a booking request. A request may
// carry several quote revisions but at most one may ever be accepted.
type Quote struct {
	shared.BaseAggregateRoot
	QuoteNumber        string
	RequestID          uuid.UUID
	VendorID           uuid.UUID
	OrganizerID        uuid.UUID
	Revision           int // re-quote counter per request, starts at 1
	Description        string
	PaymentTerms       string
	CancellationPolicy string
	Items              []QuoteItem
	Subtotal           decimal.Decimal
	TaxRate            decimal.Decimal
	TaxAmount          decimal.Decimal
	DiscountAmount     decimal.Decimal
	DiscountReason     string
	TotalAmount        decimal.Decimal
	DepositPercentage  decimal.Decimal
	DepositAmount      decimal.Decimal
	Currency           valueobject.Currency
	ValidUntil         time.Time
	Status             QuoteStatus
	RejectionReason    string
	SentAt             *time.Time
	ViewedAt           *time.Time
	AcceptedAt         *time.Time
	RejectedAt         *time.Time
}

// NewQuote creates a new quote in DRAFT status with empty items.
// Amounts are recomputed as items are added.
func NewQuote(quoteNumber string, requestID, vendorID, organizerID uuid.UUID, revision int, taxRate, discountAmount, depositPercentage decimal.Decimal, validDays int) (*Quote, error) {
	if quoteNumber == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quote number cannot be empty")
	}
	if requestID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Request ID cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Vendor ID cannot be empty")
	}
	if organizerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Organizer ID cannot be empty")
	}
	if revision < 1 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Revision must be at least 1")
	}
	if validDays <= 0 {
		validDays = DefaultQuoteValidityDays
	}
	// Validate rate and discount bounds up front against an empty quote
	if _, err := CalculateQuotePricing(nil, taxRate, decimal.Zero, depositPercentage); err != nil {
		return nil, err
	}
	if discountAmount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Discount amount cannot be negative")
	}

	quote := &Quote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		QuoteNumber:       quoteNumber,
		RequestID:         requestID,
		VendorID:          vendorID,
		OrganizerID:       organizerID,
		Revision:          revision,
		Items:             make([]QuoteItem, 0),
		Subtotal:          decimal.Zero,
		TaxRate:           taxRate,
		TaxAmount:         decimal.Zero,
		DiscountAmount:    discountAmount,
		TotalAmount:       decimal.Zero,
		DepositPercentage: depositPercentage,
		DepositAmount:     decimal.Zero,
		Currency:          valueobject.DefaultCurrency,
		ValidUntil:        time.Now().AddDate(0, 0, validDays),
		Status:            QuoteStatusDraft,
	}

	quote.AddDomainEvent(NewQuoteCreatedEvent(quote))
	return quote, nil
}

// AddItem adds a line item to the quote and recalculates totals.
// Only allowed while the quote is in DRAFT status.
func (q *Quote) AddItem(name, unitLabel string, quantity, unitPrice, discountPercentage decimal.Decimal) (*QuoteItem, error) {
	if q.Status != QuoteStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", "Items can only be added to a draft quote")
	}
	item, err := NewQuoteItem(q.ID, name, unitLabel, quantity, unitPrice, discountPercentage, len(q.Items))
	if err != nil {
		return nil, err
	}
	q.Items = append(q.Items, *item)
	if err := q.recalculateTotals(); err != nil {
		q.Items = q.Items[:len(q.Items)-1]
		return nil, err
	}
	q.UpdatedAt = time.Now()
	return item, nil
}

// RemoveItem removes a line item by ID and recalculates totals.
// Only allowed while the quote is in DRAFT status.
func (q *Quote) RemoveItem(itemID uuid.UUID) error {
	if q.Status != QuoteStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Items can only be removed from a draft quote")
	}
	for i, item := range q.Items {
		if item.ID == itemID {
			q.Items = append(q.Items[:i], q.Items[i+1:]...)
			for j := range q.Items {
				q.Items[j].OrderIndex = j
			}
			if err := q.recalculateTotals(); err != nil {
				return err
			}
			q.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Quote item not found")
}

// recalculateTotals recomputes the quote amounts from its items
func (q *Quote) recalculateTotals() error {
	itemTotals := make([]decimal.Decimal, len(q.Items))
	for i, item := range q.Items {
		itemTotals[i] = item.Total
	}
	pricing, err := CalculateQuotePricing(itemTotals, q.TaxRate, q.DiscountAmount, q.DepositPercentage)
	if err != nil {
		return err
	}
	q.Subtotal = pricing.Subtotal
	q.TaxAmount = pricing.TaxAmount
	q.TotalAmount = pricing.Total
	q.DepositAmount = pricing.DepositAmount
	return nil
}

// Send delivers the quote to the organizer. Items become immutable.
func (q *Quote) Send() error {
	if !q.Status.CanTransitionTo(QuoteStatusSent) {
		return shared.NewDomainError("INVALID_STATE", "Only draft quotes can be sent")
	}
	if len(q.Items) == 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Quote must have at least one item")
	}
	now := time.Now()
	q.Status = QuoteStatusSent
	q.SentAt = &now
	q.UpdatedAt = now
	q.AddDomainEvent(NewQuoteSentEvent(q))
	return nil
}

// MarkViewed records that the organizer opened the quote. Idempotent:
// a quote already viewed (or past VIEWED) is left untouched.
func (q *Quote) MarkViewed() error {
	switch q.Status {
	case QuoteStatusSent:
		now := time.Now()
		q.Status = QuoteStatusViewed
		q.ViewedAt = &now
		q.UpdatedAt = now
		q.AddDomainEvent(NewQuoteViewedEvent(q))
		return nil
	case QuoteStatusViewed, QuoteStatusAccepted, QuoteStatusRejected:
		return nil
	}
	return shared.NewDomainError("INVALID_STATE", "Only sent quotes can be viewed")
}

// Accept marks the quote as accepted. Legal only from SENT or VIEWED and
// before ValidUntil. The caller persists it atomically with the request
// transition and the booking creation.
func (q *Quote) Accept(now time.Time) error {
	if !q.Status.CanTransitionTo(QuoteStatusAccepted) {
		return shared.NewDomainError("INVALID_STATE", "Quote cannot be accepted in status "+q.Status.String())
	}
	if q.IsExpired(now) {
		return shared.NewDomainError("EXPIRED", "Quote validity period has passed")
	}
	q.Status = QuoteStatusAccepted
	q.AcceptedAt = &now
	q.UpdatedAt = now
	q.AddDomainEvent(NewQuoteAcceptedEvent(q))
	return nil
}

// Reject marks the quote as rejected with the organizer's reason.
// The request stays open so the vendor may send a new revision.
func (q *Quote) Reject(reason string) error {
	if !q.Status.CanTransitionTo(QuoteStatusRejected) {
		return shared.NewDomainError("INVALID_STATE", "Quote cannot be rejected in status "+q.Status.String())
	}
	now := time.Now()
	q.Status = QuoteStatusRejected
	q.RejectionReason = reason
	q.RejectedAt = &now
	q.UpdatedAt = now
	q.AddDomainEvent(NewQuoteRejectedEvent(q))
	return nil
}

// IsExpired reports whether the quote's validity period has passed
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.ValidUntil)
}
