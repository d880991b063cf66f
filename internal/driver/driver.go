// Package driver runs the per-file analysis pipeline over a batch of
// GraphML food webs: load, clean, rank, characterize, case study,
// attack curves, reports, run record.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trophiclab/foodweb/attack"
	"github.com/trophiclab/foodweb/cascade"
	"github.com/trophiclab/foodweb/centrality"
	"github.com/trophiclab/foodweb/clean"
	"github.com/trophiclab/foodweb/graphio"
	"github.com/trophiclab/foodweb/internal/config"
	"github.com/trophiclab/foodweb/internal/metrics"
	"github.com/trophiclab/foodweb/internal/pool"
	"github.com/trophiclab/foodweb/internal/results"
	"github.com/trophiclab/foodweb/rank"
	"github.com/trophiclab/foodweb/report"
)

// ErrWatchNeedsDir is returned by Watch when the configured input is a
// single file rather than a directory.
var ErrWatchNeedsDir = errors.New("driver: watch requires a directory input")

// topRankingSize bounds the ranking slice kept in each run record.
const topRankingSize = 5

// Stats tallies one batch.
type Stats struct {
	Analyzed int
	Failed   int
}

// Driver owns the batch pipeline. Each input file gets its own graphs
// and simulations, so files can run concurrently without shared state.
type Driver struct {
	cfg   *config.Config
	store results.Store
	log   *slog.Logger
}

// New builds a Driver. A nil logger falls back to slog.Default.
func New(cfg *config.Config, store results.Store, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{cfg: cfg, store: store, log: log}
}

type outcome struct {
	path string
	err  error
}

// Run analyzes every .graphml input once. Per-file failures are logged
// and counted, never fatal; the returned error covers only batch-level
// problems (bad input path, cancellation).
func (d *Driver) Run(ctx context.Context) (Stats, error) {
	paths, err := discoverInputs(d.cfg.Input)
	if err != nil {
		return Stats{}, err
	}
	if err := os.MkdirAll(d.cfg.Output, 0o750); err != nil {
		return Stats{}, fmt.Errorf("driver: create output dir: %w", err)
	}
	if len(paths) == 0 {
		d.log.Warn("no .graphml inputs found", "input", d.cfg.Input)
		return Stats{}, nil
	}

	outcomes, err := pool.Map(ctx, d.cfg.Workers, paths, func(ctx context.Context, path string) (outcome, error) {
		return outcome{path: path, err: d.analyzeOne(ctx, path)}, nil
	})
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, oc := range outcomes {
		if oc.err != nil {
			st.Failed++
		} else {
			st.Analyzed++
		}
	}
	return st, nil
}

// discoverInputs resolves the configured input to concrete file paths.
// A directory contributes its .graphml entries in name order.
func discoverInputs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("driver: stat input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("driver: read input dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".graphml") {
			continue
		}
		paths = append(paths, filepath.Join(input, e.Name()))
	}
	return paths, nil
}

// analyzeOne runs the full pipeline for a single file and persists its
// reports and run record.
func (d *Driver) analyzeOne(ctx context.Context, path string) (err error) {
	start := time.Now()
	metrics.AnalysesStarted.Inc()
	defer func() {
		if err != nil {
			metrics.AnalysesFailed.Inc()
			d.log.Error("analysis failed", "path", path, "err", err)
			return
		}
		metrics.AnalysesSucceeded.Inc()
		metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	raw, _, err := graphio.LoadFile(path)
	if err != nil {
		return err
	}
	cleaned, duplicates, err := clean.Dedupe(raw)
	if err != nil {
		return err
	}

	ranking, err := rank.Vulnerability(cleaned, rank.WithContext(ctx), rank.WithWorkers(d.cfg.Workers))
	if err != nil {
		return err
	}
	profile, err := centrality.Compute(cleaned, centrality.WithContext(ctx), centrality.WithWorkers(d.cfg.Workers))
	if err != nil {
		return err
	}

	// Case study: knock out the most vulnerable species and watch the
	// cascade unfold.
	sim, err := cascade.New(cleaned, cascade.WithLogger(d.log))
	if err != nil {
		return err
	}
	var caseStudy cascade.Event
	if len(ranking) > 0 {
		caseStudy, err = sim.Remove(ranking[0].Species)
		if err != nil {
			return err
		}
		metrics.CascadeSize.Observe(float64(caseStudy.Total))
	}
	sum := sim.Summary()
	metrics.LastRobustness.Set(sum.Robustness)

	order := make([]string, len(ranking))
	for i, s := range ranking {
		order[i] = s.Species
	}
	attackOpts := []attack.Option{
		attack.WithContext(ctx),
		attack.WithWorkers(d.cfg.Workers),
		attack.WithTrials(d.cfg.Attack.Trials),
		attack.WithSeed(d.cfg.Attack.Seed),
		attack.WithLogger(d.log),
	}
	random, err := attack.Random(cleaned, attackOpts...)
	if err != nil {
		return err
	}
	targeted, err := attack.Targeted(cleaned, order, attackOpts...)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := writeFile(filepath.Join(d.cfg.Output, stem+"_ranking.csv"), func(w io.Writer) error {
		return report.WriteRankingCSV(w, ranking, profile)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(d.cfg.Output, stem+"_curves.csv"), func(w io.Writer) error {
		return report.WriteCurvesCSV(w, random, targeted)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(d.cfg.Output, stem+"_summary.txt"), func(w io.Writer) error {
		return report.WriteSummary(w, stem, sum, report.CascadeBuckets(sim.Events()))
	}); err != nil {
		return err
	}

	rec := results.RunRecord{
		ID:             uuid.NewString(),
		Web:            stem,
		Source:         path,
		StartedAt:      start.UTC(),
		FinishedAt:     time.Now().UTC(),
		Species:        cleaned.VertexCount(),
		Links:          cleaned.EdgeCount(),
		BasalSpecies:   sum.BasalSpecies,
		DuplicateLinks: duplicates,
		Robustness:     sum.Robustness,
	}
	if len(ranking) > 0 {
		rec.TopSpecies = ranking[0].Species
		rec.TopCascade = caseStudy.Total
	}
	for _, ev := range sim.Events() {
		rec.Events = append(rec.Events, results.RunEvent{
			Step:      ev.Step,
			Primary:   ev.Primary,
			Secondary: ev.Secondary,
			Total:     ev.Total,
			Remaining: ev.Remaining,
		})
	}
	for _, s := range rank.Top(ranking, topRankingSize) {
		rec.TopRanking = append(rec.TopRanking, results.RunScore{Species: s.Species, Cascade: s.Cascade})
	}
	if err := d.store.SaveRun(ctx, rec); err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	d.log.Info("web analyzed",
		"web", stem,
		"species", rec.Species,
		"links", rec.Links,
		"duplicates", duplicates,
		"top", rec.TopSpecies,
		"cascade", rec.TopCascade,
		"robustness", rec.Robustness,
		"elapsed", time.Since(start))
	return nil
}

// writeFile creates path, fills it, and keeps close errors.
func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
