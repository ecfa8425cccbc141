package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentItem is an application of a payment to an invoice.
type PaymentItem struct {
	InvoiceID   string
	PaymentID   string
	Amount      decimal.Decimal
	DateCreated time.Time
	DatePosted  time.Time
}

// Payment is a single payment made by a customer against one of its invoices.
type Payment struct {
	CustomerID    string
	PaymentID     string
	PaymentAmount decimal.Decimal
	PaymentMethod string
	BaseCurr      string
	CurrencyCode  string
	DateCreated   time.Time
	DateReceived  time.Time
	DatePosted    time.Time
	ReferenceID   string
	PaymentItems  []PaymentItem
}

// TotalRemaining returns the amount of this payment still un-applied. A fully
// allocated payment returns zero.
func (p Payment) TotalRemaining() decimal.Decimal {
	applied := decimal.Zero
	for _, item := range p.PaymentItems {
		applied = applied.Add(item.Amount)
	}
	return p.PaymentAmount.Sub(applied)
}
