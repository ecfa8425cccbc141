package generator

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpgen/pkg/models"
)

func testSummary(id string, amount float64) models.InvoiceSummary {
	posted := time.Date(2023, time.April, 10, 0, 0, 0, 0, time.UTC)
	return models.InvoiceSummary{
		InvoiceID:   id,
		CustomerID:  "C1",
		DateCreated: posted,
		DatePosted:  posted,
		DateDue:     posted.AddDate(0, 0, 30),
		TotalAmount: decimal.NewFromFloat(amount),
	}
}

func TestNewPaymentFullSettlement(t *testing.T) {
	summary := testSummary("17", 250.75)

	// Threshold 1.0 means the roll can never clear it: single application.
	pay := NewPayment(testProvider(1), testRNG(1), summary, "P0-1", 1.0)

	assert.Equal(t, "P0-1", pay.PaymentID)
	assert.Equal(t, "C1", pay.CustomerID)
	assert.Equal(t, "cash", pay.PaymentMethod)
	assert.Equal(t, "USD", pay.BaseCurr)
	assert.True(t, pay.PaymentAmount.Equal(summary.TotalAmount))

	require.Len(t, pay.PaymentItems, 1)
	assert.Equal(t, "17", pay.PaymentItems[0].InvoiceID)
	assert.True(t, pay.PaymentItems[0].Amount.Equal(summary.TotalAmount))
	assert.True(t, pay.TotalRemaining().IsZero())
}

func TestNewPaymentSplitConservesAmount(t *testing.T) {
	summary := testSummary("42", 100.00)

	// Threshold 0 forces the split branch for any positive roll.
	pay := NewPayment(testProvider(2), testRNG(2), summary, "P0-2", 0.0)

	require.Len(t, pay.PaymentItems, 2)

	sum := decimal.Zero
	for _, item := range pay.PaymentItems {
		sum = sum.Add(item.Amount)
		assert.Equal(t, "42", item.InvoiceID)
		assert.Equal(t, "P0-2", item.PaymentID)
	}
	assert.True(t, sum.Equal(decimal.NewFromFloat(100.00)), "items sum %s != 100.00", sum)
	assert.True(t, pay.TotalRemaining().IsZero())
}

func TestNewPaymentDatesWithinInvoiceWindow(t *testing.T) {
	summary := testSummary("5", 1234.56)
	pay := NewPayment(testProvider(3), testRNG(3), summary, "P0-3", 0.80)

	assert.Equal(t, pay.DatePosted, pay.DateCreated)
	assert.Equal(t, pay.DatePosted, pay.DateReceived)
	assert.False(t, pay.DatePosted.Before(summary.DatePosted))
	assert.False(t, pay.DatePosted.After(summary.DateDue))
	for _, item := range pay.PaymentItems {
		assert.Equal(t, pay.DatePosted, item.DatePosted)
	}
}

func TestNewPaymentConservationUnderDefaultThreshold(t *testing.T) {
	p := testProvider(11)
	rng := testRNG(11)

	singles, splits := 0, 0
	for i := 0; i < 500; i++ {
		summary := testSummary(fmt.Sprintf("%d", i+1), 50.0+float64(i)*13.37)
		pay := NewPayment(p, rng, summary, fmt.Sprintf("P0-%d", i+1), 0.80)

		require.NotEmpty(t, pay.PaymentItems)
		assert.True(t, pay.TotalRemaining().IsZero(),
			"payment %s not fully applied: %s remaining", pay.PaymentID, pay.TotalRemaining())

		switch len(pay.PaymentItems) {
		case 1:
			singles++
		case 2:
			splits++
		default:
			t.Fatalf("payment %s has %d items", pay.PaymentID, len(pay.PaymentItems))
		}
	}

	// Roughly 80/20 between full and split payments.
	assert.Greater(t, singles, splits)
	assert.Greater(t, splits, 0)
}

func TestSplitRoll(t *testing.T) {
	rng := testRNG(5)
	for i := 0; i < 100; i++ {
		split, fraction := splitRoll(rng, 0.80)
		assert.GreaterOrEqual(t, fraction, 0.0)
		assert.Less(t, fraction, 1.0)
		// The same draw decides the split and sizes the first item.
		assert.Equal(t, fraction > 0.80, split)
	}
}

func TestPaymentBatch(t *testing.T) {
	summaries := []models.InvoiceSummary{
		testSummary("1", 100),
		testSummary("2", 200),
		testSummary("3", 300),
	}
	ids := []string{"P4-1", "P4-2", "P4-3"}

	payments, err := PaymentBatch(testProvider(1), testRNG(1), ids, summaries, 0.80)
	require.NoError(t, err)
	require.Len(t, payments, 3)

	for i, pay := range payments {
		assert.Equal(t, ids[i], pay.PaymentID)
		assert.True(t, pay.PaymentAmount.Equal(summaries[i].TotalAmount))
		assert.NotEmpty(t, pay.ReferenceID)
		for _, item := range pay.PaymentItems {
			assert.Equal(t, summaries[i].InvoiceID, item.InvoiceID)
		}
	}
}

func TestPaymentBatchSizeMismatchFailsFast(t *testing.T) {
	summaries := []models.InvoiceSummary{testSummary("1", 100), testSummary("2", 200)}

	_, err := PaymentBatch(testProvider(1), testRNG(1), []string{"P0-1"}, summaries, 0.80)
	assert.ErrorIs(t, err, ErrBatchSizeMismatch)

	_, err = PaymentBatch(testProvider(1), testRNG(1), nil, nil, 0.80)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestNewPaymentReferenceIDsDeterministic(t *testing.T) {
	summary := testSummary("9", 77.77)

	a := NewPayment(testProvider(6), testRNG(6), summary, "P0-9", 0.80)
	b := NewPayment(testProvider(6), testRNG(6), summary, "P0-9", 0.80)
	assert.Equal(t, a.ReferenceID, b.ReferenceID)
	assert.Equal(t, a, b)
}
