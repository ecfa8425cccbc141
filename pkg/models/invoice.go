package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a single billed line on an invoice.
type LineItem struct {
	Amount       decimal.Decimal // The amount of the line item
	InvoiceID    string
	InvoiceLine  int    // 1-based position within the invoice
	AccountLabel string // The AR account label to post this item against
	LocationID   string // Optional location to associate the line item
	ItemID       string
	Memo         string // A memo pertaining to the line item entry
}

// Invoice is a customer invoice in the generated dataset.
type Invoice struct {
	InvoiceID string

	// CustomerID must match a customer from the generated dataset.
	CustomerID string

	DateCreated time.Time // Equal to DatePosted
	DatePosted  time.Time
	DateDue     time.Time // DatePosted + 30 days

	BaseCurr     string
	CurrencyCode string

	// Contact-name snapshots taken at creation time, not live references.
	BillToContactName string
	ShipToContactName string

	TermName string
	PONumber string

	InvoiceItems []LineItem
}

// Total returns the sum of the invoice's line item amounts.
func (i Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.InvoiceItems {
		total = total.Add(item.Amount)
	}
	return total
}

// InvoiceSummary is an immutable projection of an Invoice carrying only the
// fields payment generation needs, so the full line-item graph never has to
// be re-serialized downstream.
type InvoiceSummary struct {
	InvoiceID   string
	CustomerID  string
	DateCreated time.Time
	DatePosted  time.Time
	DateDue     time.Time
	TotalAmount decimal.Decimal
}

// Summary derives the invoice's summary projection.
func (i Invoice) Summary() InvoiceSummary {
	return InvoiceSummary{
		InvoiceID:   i.InvoiceID,
		CustomerID:  i.CustomerID,
		DateCreated: i.DateCreated,
		DatePosted:  i.DatePosted,
		DateDue:     i.DateDue,
		TotalAmount: i.Total(),
	}
}
