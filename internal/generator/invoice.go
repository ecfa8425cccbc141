package generator

import (
	"math/rand/v2"
	"strconv"

	"github.com/shopspring/decimal"

	"erpgen/internal/calendar"
	"erpgen/internal/fake"
	"erpgen/pkg/models"
)

// invoiceTermDays is the payment term applied to every generated invoice
// (N30: due 30 days after posting).
const invoiceTermDays = 30

// NewInvoice creates one invoice for the given company with a posting date
// sampled uniformly within the period. The invoice carries exactly one line
// item holding the full invoice amount.
func NewInvoice(p fake.Provider, company CompanyRef, invoiceID int, amount decimal.Decimal, period calendar.Period) models.Invoice {
	id := strconv.Itoa(invoiceID)
	posted := p.DateBetween(period.Start, period.End)

	return models.Invoice{
		InvoiceID:         id,
		CustomerID:        company.CustomerID,
		DateCreated:       posted,
		DatePosted:        posted,
		DateDue:           posted.AddDate(0, 0, invoiceTermDays),
		BaseCurr:          "USD",
		CurrencyCode:      "USD",
		BillToContactName: company.ContactName,
		ShipToContactName: company.ContactName,
		TermName:          "N30",
		InvoiceItems: []models.LineItem{
			{
				Amount:       amount,
				InvoiceID:    id,
				InvoiceLine:  1,
				AccountLabel: "4000",
			},
		},
	}
}

// InvoiceBatch creates one period's worth of invoices from a pre-sliced id
// pool and the companies active in that period.
//
// The id slice is shuffled in place, so callers must not rely on its order
// afterwards. Amounts are drawn uniformly from [low, high] and rounded to 2
// decimals. Companies are cycled from a fixed start, so when invoices
// outnumber companies each company receives several; the id-to-company
// pairing is the product of the shuffled ids against the deterministic
// cycle, which is randomized enough for test data.
func InvoiceBatch(p fake.Provider, rng *rand.Rand, period calendar.Period, invoiceIDs []int, companies []CompanyRef, low, high float64) ([]models.Invoice, error) {
	if len(invoiceIDs) == 0 {
		return nil, WrapGenerationError("InvoiceBatch", ErrEmptyBatch, periodLabel(period))
	}
	if len(companies) == 0 {
		return nil, WrapGenerationError("InvoiceBatch", ErrNoActiveCompanies, periodLabel(period))
	}
	if low <= 0 || high < low {
		return nil, WrapGenerationError("InvoiceBatch", ErrInvalidAmountBounds, "")
	}

	rng.Shuffle(len(invoiceIDs), func(i, j int) {
		invoiceIDs[i], invoiceIDs[j] = invoiceIDs[j], invoiceIDs[i]
	})

	invoices := make([]models.Invoice, len(invoiceIDs))
	for i, id := range invoiceIDs {
		amount := decimal.NewFromFloat(low + (high-low)*rng.Float64()).Round(2)
		company := companies[i%len(companies)]
		invoices[i] = NewInvoice(p, company, id, amount, period)
	}
	return invoices, nil
}

// SampleActive draws the subset of companies considered active in one
// period: floor(len*pct) distinct companies, at least one, sampled without
// replacement. Each period samples independently, so a company may be
// active in zero periods or all of them.
func SampleActive(rng *rand.Rand, companies []CompanyRef, pct float64) []CompanyRef {
	if len(companies) == 0 {
		return nil
	}
	size := int(float64(len(companies)) * pct)
	if size < 1 {
		size = 1
	}
	if size > len(companies) {
		size = len(companies)
	}

	active := make([]CompanyRef, size)
	for i, idx := range rng.Perm(len(companies))[:size] {
		active[i] = companies[idx]
	}
	return active
}

// Summaries projects a set of invoices down to their summary form.
func Summaries(invoices []models.Invoice) []models.InvoiceSummary {
	summaries := make([]models.InvoiceSummary, len(invoices))
	for i, inv := range invoices {
		summaries[i] = inv.Summary()
	}
	return summaries
}

func periodLabel(p calendar.Period) string {
	return p.Start.Format("2006-01") + " period"
}
