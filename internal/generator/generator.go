// Package generator builds the synthetic financial dataset: companies, a
// stream of invoices bucketed into historical monthly periods, and payments
// settling those invoices. Generation runs in three hard-barrier stages
// fanned out over a worker pool; every batch job draws from its own seeded
// random stream so runs are reproducible even in parallel.
package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"erpgen/internal/calendar"
	"erpgen/internal/fake"
	"erpgen/internal/logger"
	"erpgen/internal/pool"
	"erpgen/pkg/models"
)

// Config holds every knob of the generation pipeline.
type Config struct {
	Companies         int     // Total number of companies to generate
	BatchSize         int     // Companies (and payments) per batch job
	InvoicesPerPeriod int     // Invoices issued in each monthly period
	ActivePct         float64 // Share of companies sampled as active per period
	AmountLow         float64 // Minimum invoice amount
	AmountHigh        float64 // Maximum invoice amount
	SplitPct          float64 // Threshold of the payment split roll
	Workers           int     // Worker pool size
	YearsBack         int     // Full historical years before the current one
	Seed              uint64  // Base seed for all random streams

	// Today anchors the lookback window. Zero means the current date.
	Today time.Time
}

// DefaultConfig returns the standard generation configuration.
func DefaultConfig() Config {
	return Config{
		Companies:         1000,
		BatchSize:         1000,
		InvoicesPerPeriod: 1000,
		ActivePct:         0.20,
		AmountLow:         50.00,
		AmountHigh:        100000.00,
		SplitPct:          0.80,
		Workers:           8,
		YearsBack:         2,
		Seed:              42,
	}
}

// Validate reports the first configuration problem, wrapped around
// ErrInvalidConfiguration.
func (c Config) Validate() error {
	check := func(ok bool, detail string) error {
		if ok {
			return nil
		}
		return WrapGenerationError("Validate", ErrInvalidConfiguration, detail)
	}

	if err := check(c.Companies > 0, "company count must be positive"); err != nil {
		return err
	}
	if err := check(c.BatchSize > 0, "batch size must be positive"); err != nil {
		return err
	}
	if err := check(c.InvoicesPerPeriod > 0, "invoices per period must be positive"); err != nil {
		return err
	}
	if err := check(c.ActivePct > 0 && c.ActivePct <= 1, "active percentage must be in (0, 1]"); err != nil {
		return err
	}
	if err := check(c.AmountLow > 0 && c.AmountHigh >= c.AmountLow, "amount bounds must be positive and ordered"); err != nil {
		return err
	}
	if err := check(c.SplitPct >= 0 && c.SplitPct <= 1, "split threshold must be in [0, 1]"); err != nil {
		return err
	}
	if err := check(c.Workers > 0, "worker count must be positive"); err != nil {
		return err
	}
	return check(c.YearsBack >= 0, "years back cannot be negative")
}

func (c Config) today() time.Time {
	if c.Today.IsZero() {
		return time.Now().UTC()
	}
	return c.Today
}

// Sink persists generated batches. Implementations receive fully built
// values after each stage barrier; a sink error aborts the run.
type Sink interface {
	WriteCompanies(companies []models.Company) error
	WriteInvoices(period calendar.Period, invoices []models.Invoice) error
	WritePayments(batchID int, payments []models.Payment) error
}

// Random stream tags, one per stage, so no two batch jobs anywhere in the
// pipeline share a sequence.
const (
	streamCompanies uint64 = iota + 1
	streamSampling
	streamInvoices
	streamPayments
)

func (c Config) rng(stage, job uint64) *rand.Rand {
	return rand.New(rand.NewPCG(c.Seed, stage<<32|job))
}

func (c Config) provider(stage, job uint64) fake.Provider {
	return fake.NewProvider(rand.NewPCG(c.Seed, stage<<32|job))
}

// Generator runs the dataset pipeline and hands each stage's output to its
// sink.
type Generator struct {
	cfg  Config
	sink Sink
	log  zerolog.Logger
}

// New creates a Generator for the given configuration and export sink.
func New(cfg Config, sink Sink) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:  cfg,
		sink: sink,
		log:  logger.WithComponent("generator"),
	}, nil
}

// Generate runs the full pipeline: companies, then invoices for every
// period, then payments against the invoice summaries. Each stage completes
// (and is exported) before the next begins. On error nothing is cleaned up;
// a partial dataset on disk is not consistent and callers should discard
// and re-run.
func (g *Generator) Generate(ctx context.Context) error {
	start := time.Now()

	companies, err := g.GenerateCompanies(ctx)
	if err != nil {
		return err
	}

	periods := calendar.YearRanges(g.cfg.YearsBack, g.cfg.today())
	g.log.Info().Int("periods", len(periods)).Msg("Partitioned lookback window")

	summaries, err := g.GenerateInvoices(ctx, periods, companies)
	if err != nil {
		return err
	}

	if err := g.GeneratePayments(ctx, summaries); err != nil {
		return err
	}

	g.log.Info().
		Int("companies", len(companies)).
		Int("invoices", len(summaries)).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset generation completed")
	return nil
}

// GenerateCompanies builds the company set in parallel batches, exports it,
// and returns the references invoice generation needs.
func (g *Generator) GenerateCompanies(ctx context.Context) ([]CompanyRef, error) {
	start := time.Now()

	var jobs []pool.Job[[]models.Company]
	for startID := 0; startID < g.cfg.Companies; startID += g.cfg.BatchSize {
		startID := startID
		size := g.cfg.BatchSize
		if startID+size > g.cfg.Companies {
			size = g.cfg.Companies - startID
		}
		job := uint64(len(jobs))
		jobs = append(jobs, func(context.Context) ([]models.Company, error) {
			return CompanyBatch(g.cfg.provider(streamCompanies, job), startID, size), nil
		})
	}

	batches, err := pool.Run(ctx, jobs, g.cfg.Workers)
	if err != nil {
		return nil, WrapGenerationError("GenerateCompanies", err, "")
	}

	companies := make([]models.Company, 0, g.cfg.Companies)
	for _, batch := range batches {
		companies = append(companies, batch...)
	}

	if err := g.sink.WriteCompanies(companies); err != nil {
		return nil, WrapGenerationError("GenerateCompanies", err, "export failed")
	}

	refs := make([]CompanyRef, len(companies))
	for i, c := range companies {
		refs[i] = Ref(c)
	}

	g.log.Info().
		Int("companies", len(companies)).
		Int("batches", len(jobs)).
		Dur("elapsed", time.Since(start)).
		Msg("Company stage completed")
	return refs, nil
}

// GenerateInvoices builds one invoice batch per period on the worker pool,
// exports every batch, and returns the invoice summaries in period
// submission order. The full line-item representation is dropped here; only
// the summaries flow into payment generation.
func (g *Generator) GenerateInvoices(ctx context.Context, periods []calendar.Period, companies []CompanyRef) ([]models.InvoiceSummary, error) {
	start := time.Now()
	if len(periods) == 0 {
		return nil, nil
	}

	idSlices := splitIDs(len(periods)*g.cfg.InvoicesPerPeriod, len(periods))

	// Active subsets are drawn up front from the sampling stream so the
	// batch jobs stay pure.
	samplingRNG := g.cfg.rng(streamSampling, 0)
	activeSets := make([][]CompanyRef, len(periods))
	for i := range periods {
		activeSets[i] = SampleActive(samplingRNG, companies, g.cfg.ActivePct)
	}

	jobs := make([]pool.Job[[]models.Invoice], len(periods))
	for i, period := range periods {
		i, period := i, period
		jobs[i] = func(context.Context) ([]models.Invoice, error) {
			job := uint64(i)
			return InvoiceBatch(
				g.cfg.provider(streamInvoices, job),
				g.cfg.rng(streamInvoices, job),
				period,
				idSlices[i],
				activeSets[i],
				g.cfg.AmountLow,
				g.cfg.AmountHigh,
			)
		}
	}

	batches, err := pool.Run(ctx, jobs, g.cfg.Workers)
	if err != nil {
		return nil, WrapGenerationError("GenerateInvoices", err, "")
	}

	var summaries []models.InvoiceSummary
	for i, batch := range batches {
		if err := g.sink.WriteInvoices(periods[i], batch); err != nil {
			return nil, WrapGenerationError("GenerateInvoices", err, "export failed")
		}
		summaries = append(summaries, Summaries(batch)...)
	}

	g.log.Info().
		Int("invoices", len(summaries)).
		Int("periods", len(periods)).
		Dur("elapsed", time.Since(start)).
		Msg("Invoice stage completed")
	return summaries, nil
}

// GeneratePayments settles every summarized invoice. Summaries are chunked
// into disjoint batches; payment ids are unique within a batch and carry
// the batch id, so they are unique across the dataset.
func (g *Generator) GeneratePayments(ctx context.Context, summaries []models.InvoiceSummary) error {
	start := time.Now()
	if len(summaries) == 0 {
		return nil
	}

	var chunks [][]models.InvoiceSummary
	for i := 0; i < len(summaries); i += g.cfg.BatchSize {
		end := i + g.cfg.BatchSize
		if end > len(summaries) {
			end = len(summaries)
		}
		chunks = append(chunks, summaries[i:end])
	}

	jobs := make([]pool.Job[[]models.Payment], len(chunks))
	for batchID, chunk := range chunks {
		batchID, chunk := batchID, chunk
		jobs[batchID] = func(context.Context) ([]models.Payment, error) {
			ids := make([]string, len(chunk))
			for i := range chunk {
				ids[i] = fmt.Sprintf("P%d-%d", batchID, i+1)
			}
			job := uint64(batchID)
			return PaymentBatch(
				g.cfg.provider(streamPayments, job),
				g.cfg.rng(streamPayments, job),
				ids,
				chunk,
				g.cfg.SplitPct,
			)
		}
	}

	batches, err := pool.Run(ctx, jobs, g.cfg.Workers)
	if err != nil {
		return WrapGenerationError("GeneratePayments", err, "")
	}

	payments := 0
	for batchID, batch := range batches {
		if err := g.sink.WritePayments(batchID, batch); err != nil {
			return WrapGenerationError("GeneratePayments", err, "export failed")
		}
		payments += len(batch)
	}

	g.log.Info().
		Int("payments", payments).
		Int("batches", len(chunks)).
		Dur("elapsed", time.Since(start)).
		Msg("Payment stage completed")
	return nil
}

// splitIDs deals the 1-based id pool [1, total] into count contiguous
// slices, spreading any remainder across the leading slices.
func splitIDs(total, count int) [][]int {
	ids := make([]int, total)
	for i := range ids {
		ids[i] = i + 1
	}

	slices := make([][]int, count)
	size := total / count
	extra := total % count
	offset := 0
	for i := range slices {
		n := size
		if i < extra {
			n++
		}
		slices[i] = ids[offset : offset+n]
		offset += n
	}
	return slices
}
