// Package pipeline runs the generator stages in dependency order and hands
// the resulting dataset to a sink.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"perfgen/internal/dimension"
	"perfgen/internal/fact"
	"perfgen/internal/random"
	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

// Reporter receives a notification as each stage starts
type Reporter interface {
	StageStarted(index, total int, label string)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(index, total int, label string)

func (f ReporterFunc) StageStarted(index, total int, label string) {
	f(index, total, label)
}

type nopReporter struct{}

func (nopReporter) StageStarted(int, int, string) {}

// Generator builds a Dataset from a validated configuration
type Generator struct {
	cfg      *models.Config
	reporter Reporter
	logger   *slog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithReporter sets the stage progress reporter
func WithReporter(r Reporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.reporter = r
		}
	}
}

// WithLogger sets the logger used for stage timings
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a Generator for cfg
func NewGenerator(cfg *models.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		reporter: nopReporter{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type stage struct {
	label string
	run   func() error
}

// Run executes the eight stages in order. A single random source seeded from
// the configuration is shared by every stage, so one seed always yields the
// same dataset. Cancellation is honoured between stages.
func (g *Generator) Run(ctx context.Context) (*Dataset, error) {
	start, end, err := g.cfg.DateRange()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidDateRange, "invalid date range")
	}
	if end.Before(start) {
		return nil, errors.New(errors.ErrCodeInvalidDateRange,
			fmt.Sprintf("end date %s is before start date %s", g.cfg.EndDate, g.cfg.StartDate))
	}

	src := random.New(g.cfg.Seed)
	cal := fact.NewCalendar(start, end)
	ds := &Dataset{Start: start, End: end, Seed: g.cfg.Seed}

	stages := []stage{
		{"Date Dimension", func() error {
			ds.Dates = dimension.GenerateDates(start, end)
			return nil
		}},
		{"Region Dimension", func() error {
			ds.Regions = dimension.GenerateRegions(src, g.cfg.Regions)
			return nil
		}},
		{"Team Dimension", func() error {
			ds.Teams = dimension.GenerateTeams(src, g.cfg.Departments)
			return nil
		}},
		{"Product Dimension", func() error {
			ds.Products = dimension.GenerateProducts(src, g.cfg.Products)
			return nil
		}},
		{"Revenue Facts", func() (err error) {
			ds.Revenue, err = fact.GenerateRevenue(src, cal, ds.Regions, ds.Teams, ds.Products)
			return err
		}},
		{"Cost Facts", func() (err error) {
			ds.Costs, err = fact.GenerateCosts(src, cal, ds.Teams)
			return err
		}},
		{"SLA Facts", func() (err error) {
			ds.SLA, err = fact.GenerateSLA(src, cal, ds.Regions)
			return err
		}},
		{"Risk Facts", func() (err error) {
			ds.Risks, err = fact.GenerateRisks(src, cal, ds.Regions, ds.Teams)
			return err
		}},
	}

	for i, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeCancelled, "generation cancelled").
				WithContext("stage", st.label)
		}

		g.reporter.StageStarted(i+1, len(stages), st.label)
		began := time.Now()
		if err := st.run(); err != nil {
			return nil, err
		}
		g.logger.Debug("stage complete", "stage", st.label, "duration", time.Since(began))
	}

	return ds, nil
}
