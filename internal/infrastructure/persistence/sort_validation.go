package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// BookingRequestSortFields contains allowed sort fields for booking requests
var BookingRequestSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"title":             true,
	"service_category":  true,
	"event_date":        true,
	"guest_count":       true,
	"status":            true,
	"expires_at":        true,
	"response_deadline": true,
	"responded_at":      true,
}

// QuoteSortFields contains allowed sort fields for quotes
var QuoteSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"quote_number": true,
	"revision":     true,
	"status":       true,
	"total_amount": true,
	"valid_until":  true,
	"sent_at":      true,
	"accepted_at":  true,
}

// BookingSortFields contains allowed sort fields for bookings
var BookingSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"booking_number": true,
	"title":          true,
	"event_date":     true,
	"status":         true,
	"payment_status": true,
	"total_amount":   true,
	"amount_due":     true,
	"completed_at":   true,
	"cancelled_at":   true,
}

// BookingPaymentSortFields contains allowed sort fields for payments
var BookingPaymentSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"payment_number": true,
	"amount":         true,
	"status":         true,
	"paid_at":        true,
}
