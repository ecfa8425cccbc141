package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"erpgen/internal/fake"
	"erpgen/pkg/models"
)

// splitRoll makes the single random draw that drives payment splitting. It
// returns whether the payment should be split into two applications and, if
// so, the fraction of the total covered by the first application.
//
// One draw intentionally decides both: the roll that clears the threshold is
// reused as the first-item fraction. Keeping the coupling isolated here
// means an independent fraction draw can be swapped in later without
// touching the allocation logic around it.
func splitRoll(rng *rand.Rand, splitPct float64) (split bool, fraction float64) {
	r := rng.Float64()
	return r > splitPct, r
}

// NewPayment creates one payment that fully settles the summarized invoice.
//
// The payment carries either a single application for the full amount or,
// when the split roll clears the threshold, a partial application followed
// by one covering the remainder. The final item is always computed as the
// remaining balance rather than resampled, so the item amounts sum to the
// payment amount exactly, with no rounding drift.
func NewPayment(p fake.Provider, rng *rand.Rand, summary models.InvoiceSummary, paymentID string, splitPct float64) models.Payment {
	paid := p.DateBetween(summary.DatePosted, summary.DateDue)

	remaining := summary.TotalAmount
	var items []models.PaymentItem

	if split, fraction := splitRoll(rng, splitPct); split {
		first := summary.TotalAmount.Mul(decimal.NewFromFloat(fraction)).Round(2)
		items = append(items, models.PaymentItem{
			InvoiceID:   summary.InvoiceID,
			PaymentID:   paymentID,
			Amount:      first,
			DateCreated: paid,
			DatePosted:  paid,
		})
		remaining = remaining.Sub(first)
	}

	items = append(items, models.PaymentItem{
		InvoiceID:   summary.InvoiceID,
		PaymentID:   paymentID,
		Amount:      remaining,
		DateCreated: paid,
		DatePosted:  paid,
	})

	return models.Payment{
		CustomerID:    summary.CustomerID,
		PaymentID:     paymentID,
		PaymentAmount: summary.TotalAmount,
		PaymentMethod: "cash",
		BaseCurr:      "USD",
		CurrencyCode:  "USD",
		DateCreated:   paid,
		DateReceived:  paid,
		DatePosted:    paid,
		ReferenceID:   newReferenceID(rng),
		PaymentItems:  items,
	}
}

// PaymentBatch creates one payment per invoice summary using the supplied
// payment ids. The two slices must line up one-to-one; a mismatch fails
// before any payment is built.
func PaymentBatch(p fake.Provider, rng *rand.Rand, paymentIDs []string, summaries []models.InvoiceSummary, splitPct float64) ([]models.Payment, error) {
	if len(paymentIDs) == 0 {
		return nil, WrapGenerationError("PaymentBatch", ErrEmptyBatch, "")
	}
	if len(paymentIDs) != len(summaries) {
		return nil, WrapGenerationError("PaymentBatch", ErrBatchSizeMismatch,
			fmt.Sprintf("%d payment ids for %d invoice summaries", len(paymentIDs), len(summaries)))
	}

	payments := make([]models.Payment, len(summaries))
	for i, summary := range summaries {
		payments[i] = NewPayment(p, rng, summary, paymentIDs[i], splitPct)
	}
	return payments, nil
}

// rngReader adapts a rand source to io.Reader so reference uuids come from
// the job's own stream and stay reproducible across runs.
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = byte(r.rng.UintN(256))
	}
	return len(b), nil
}

func newReferenceID(rng *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(rngReader{rng: rng})).String()
}
