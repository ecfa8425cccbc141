package fake

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(seed uint64) Provider {
	return NewProvider(rand.NewPCG(seed, 0))
}

func TestProviderDeterministicForSeed(t *testing.T) {
	a := newTestProvider(42)
	b := newTestProvider(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Name(), b.Name())
		assert.Equal(t, a.CompanyName(), b.CompanyName())
		assert.Equal(t, a.SafeEmail(), b.SafeEmail())
	}
}

func TestProviderFieldsNonEmpty(t *testing.T) {
	p := newTestProvider(1)

	assert.NotEmpty(t, p.Name())
	assert.NotEmpty(t, p.CompanyName())
	assert.NotEmpty(t, p.StreetAddress())
	assert.NotEmpty(t, p.City())
	assert.NotEmpty(t, p.State())
	assert.NotEmpty(t, p.Postcode())
	assert.NotEmpty(t, p.CountryCode())
	assert.NotEmpty(t, p.PhoneNumber())
}

func TestSafeEmailUsesReservedDomain(t *testing.T) {
	p := newTestProvider(1)
	for i := 0; i < 20; i++ {
		assert.True(t, strings.HasSuffix(p.SafeEmail(), "@example.com"))
	}
}

func TestDateBetweenBounds(t *testing.T) {
	p := newTestProvider(1)
	start := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.April, 30, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		d := p.DateBetween(start, end)
		require.False(t, d.Before(start), "date %s before range start", d)
		require.False(t, d.After(end), "date %s after range end", d)
		// Truncated to midnight.
		assert.Zero(t, d.Hour())
		assert.Zero(t, d.Minute())
	}
}

func TestDateBetweenSingleDay(t *testing.T) {
	p := newTestProvider(1)
	day := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day, p.DateBetween(day, day))
}
