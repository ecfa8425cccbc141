// Package fake supplies the human-readable values (names, addresses,
// contact details) used to fill generated entities. The generator core only
// depends on the Provider interface; the default implementation wraps
// gofakeit seeded from an explicit random source so that every batch job can
// own an independent, reproducible stream.
package fake

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Provider is the fake-value surface the generator core needs. Every method
// returns a freshly sampled value; none of them guarantee uniqueness.
type Provider interface {
	Name() string
	CompanyName() string
	StreetAddress() string
	City() string
	State() string
	Postcode() string
	CountryCode() string
	SafeEmail() string
	PhoneNumber() string

	// DateBetween returns a date sampled uniformly from [start, end],
	// truncated to UTC midnight.
	DateBetween(start, end time.Time) time.Time
}

type gofakeitProvider struct {
	f *gofakeit.Faker
}

// NewProvider returns a Provider backed by gofakeit drawing from the given
// source. The provider is not safe for concurrent use; give each batch job
// its own.
func NewProvider(src rand.Source) Provider {
	return &gofakeitProvider{f: gofakeit.NewFaker(src, false)}
}

func (p *gofakeitProvider) Name() string        { return p.f.Name() }
func (p *gofakeitProvider) CompanyName() string { return p.f.Company() }
func (p *gofakeitProvider) StreetAddress() string {
	return p.f.Street()
}
func (p *gofakeitProvider) City() string        { return p.f.City() }
func (p *gofakeitProvider) State() string       { return p.f.State() }
func (p *gofakeitProvider) Postcode() string    { return p.f.Zip() }
func (p *gofakeitProvider) CountryCode() string { return p.f.CountryAbr() }

func (p *gofakeitProvider) SafeEmail() string {
	// Reserved domain, the generated addresses must never be deliverable.
	return fmt.Sprintf("%s@example.com", p.f.Username())
}

func (p *gofakeitProvider) PhoneNumber() string { return p.f.PhoneFormatted() }

func (p *gofakeitProvider) DateBetween(start, end time.Time) time.Time {
	d := p.f.DateRange(start, end.Add(24*time.Hour-time.Nanosecond))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
