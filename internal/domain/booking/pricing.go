package booking

import (
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ItemPricing holds the computed amounts for a single quote line item.
// All amounts are rounded to 2 decimal places.
type ItemPricing struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

// CalculateItemPricing computes the line amounts for one item:
// subtotal = quantity * unitPrice, discount = subtotal * discountPercentage / 100,
// total = subtotal - discount.
func CalculateItemPricing(quantity, unitPrice, discountPercentage decimal.Decimal) (ItemPricing, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ItemPricing{}, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return ItemPricing{}, shared.NewDomainError("VALIDATION_ERROR", "Unit price cannot be negative")
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(oneHundred) {
		return ItemPricing{}, shared.NewDomainError("VALIDATION_ERROR", "Discount percentage must be between 0 and 100")
	}

	subtotal := quantity.Mul(unitPrice)
	discount := subtotal.Mul(discountPercentage).Div(oneHundred)
	total := subtotal.Sub(discount)

	return ItemPricing{
		Subtotal:       subtotal.Round(2),
		DiscountAmount: discount.Round(2),
		Total:          total.Round(2),
	}, nil
}

// QuotePricing holds the computed amounts for a whole quote.
// All amounts are rounded to 2 decimal places.
type QuotePricing struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
	DepositAmount  decimal.Decimal
}

// CalculateQuotePricing computes the quote amounts from per-item totals
// (already net of item-level discounts):
// subtotal = sum of item totals, tax = subtotal * taxRate / 100,
// total = subtotal + tax - discountAmount, deposit = total * depositPercentage / 100.
// The flat discountAmount may not exceed subtotal + tax.
func CalculateQuotePricing(itemTotals []decimal.Decimal, taxRate, discountAmount, depositPercentage decimal.Decimal) (QuotePricing, error) {
	if taxRate.IsNegative() {
		return QuotePricing{}, shared.NewDomainError("VALIDATION_ERROR", "Tax rate cannot be negative")
	}
	if discountAmount.IsNegative() {
		return QuotePricing{}, shared.NewDomainError("VALIDATION_ERROR", "Discount amount cannot be negative")
	}
	if depositPercentage.IsNegative() || depositPercentage.GreaterThan(oneHundred) {
		return QuotePricing{}, shared.NewDomainError("VALIDATION_ERROR", "Deposit percentage must be between 0 and 100")
	}

	subtotal := decimal.Zero
	for _, t := range itemTotals {
		subtotal = subtotal.Add(t)
	}
	tax := subtotal.Mul(taxRate).Div(oneHundred)
	if discountAmount.GreaterThan(subtotal.Add(tax)) {
		return QuotePricing{}, shared.NewDomainError("VALIDATION_ERROR", "Discount amount cannot exceed subtotal plus tax")
	}
	total := subtotal.Add(tax).Sub(discountAmount)
	deposit := total.Mul(depositPercentage).Div(oneHundred)

	return QuotePricing{
		Subtotal:       subtotal.Round(2),
		TaxAmount:      tax.Round(2),
		DiscountAmount: discountAmount.Round(2),
		Total:          total.Round(2),
		DepositAmount:  deposit.Round(2),
	}, nil
}
