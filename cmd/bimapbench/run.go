// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaissmai/bimap"
	"github.com/gaissmai/bimap/internal/config"
	"github.com/gaissmai/bimap/internal/golden"
	"github.com/gaissmai/bimap/internal/metrics"
	"github.com/gaissmai/bimap/internal/workload"
)

// ErrMismatch is returned when the map and the reference model disagree.
var ErrMismatch = errors.New("bimapbench: result differs from reference")

func newRunCmd(flags *rootFlags) *cobra.Command {
	var (
		seed uint64
		ops  int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload and cross-check it against the reference model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags.configPath, func(c *config.Config) {
				if cmd.Flags().Changed("seed") {
					c.Workload.Seed = seed
				}
				if cmd.Flags().Changed("ops") {
					c.Workload.Operations = ops
				}
			})
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			met := metrics.New()
			if cfg.Metrics.Addr != "" {
				stop := serveMetrics(cfg.Metrics.Addr, met, logger)
				defer stop()
			}

			_, err = runWorkload(cmd.Context(), cfg, logger, met)
			return err
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "override workload.seed")
	cmd.Flags().IntVar(&ops, "ops", 0, "override workload.operations")

	return cmd
}

// serveMetrics exposes met on addr until the returned stop is called.
func serveMetrics(addr string, met *metrics.Metrics, logger *slog.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", met.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// summary of a finished workload.
type summary struct {
	Operations int
	Verified   int
	Stats      bimap.Stats
	Elapsed    time.Duration
}

// runner applies operations to the map and the reference model.
type runner struct {
	m    *bimap.Map[int, string]
	gold *golden.GoldMap[int, string]
	met  *metrics.Metrics
	log  *slog.Logger
}

func runWorkload(ctx context.Context, cfg *config.Config, logger *slog.Logger, met *metrics.Metrics) (summary, error) {
	gen, err := workload.New(cfg.Workload.Generator())
	if err != nil {
		return summary{}, err
	}

	r := &runner{
		m:    bimap.New[int, string](bimap.WithLogger(logger)),
		gold: golden.New[int, string](),
		met:  met,
		log:  logger,
	}

	logger.Info("workload started",
		slog.Uint64("seed", cfg.Workload.Seed),
		slog.Int("operations", cfg.Workload.Operations),
		slog.Int("key_space", cfg.Workload.KeySpace),
		slog.String("right_keys", cfg.Workload.RightKeys),
	)

	var sum summary
	start := time.Now()

	for op := range gen.Ops(cfg.Workload.Operations) {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		begin := time.Now()
		result, err := r.apply(op)
		met.Observe(op.Kind.String(), result, time.Since(begin))
		sum.Operations++

		if err != nil {
			logger.Error("workload aborted", slog.Int("op", sum.Operations), slog.Any("error", err))
			return sum, err
		}

		if cfg.VerifyEvery > 0 && sum.Operations%cfg.VerifyEvery == 0 {
			if err := r.verify(); err != nil {
				logger.Error("workload aborted", slog.Int("op", sum.Operations), slog.Any("error", err))
				return sum, err
			}
			sum.Verified++
		}
	}

	if err := r.verify(); err != nil {
		return sum, err
	}
	sum.Verified++

	sum.Stats = r.m.Stats()
	sum.Elapsed = time.Since(start)

	logger.Info("workload done",
		slog.Int("operations", sum.Operations),
		slog.Int("verified", sum.Verified),
		slog.Int("size", sum.Stats.Size),
		slog.Int("left_height", sum.Stats.LeftHeight),
		slog.Int("right_height", sum.Stats.RightHeight),
		slog.Duration("elapsed", sum.Elapsed),
	)

	return sum, nil
}

// verify checks the map invariants and the contents against the reference.
func (r *runner) verify() error {
	err := r.m.Verify()
	if err == nil && r.m.Size() != r.gold.Len() {
		err = fmt.Errorf("%w: size %d, want %d", ErrMismatch, r.m.Size(), r.gold.Len())
	}

	r.met.Verified(err)
	st := r.m.Stats()
	r.met.Shape(st.Size, st.LeftHeight, st.RightHeight)

	return err
}

// apply runs op on both models and returns the metrics result.
func (r *runner) apply(op workload.Op) (string, error) {
	switch op.Kind {
	case workload.Insert:
		got := !r.m.Insert(op.Left, op.Right).IsEnd()
		return r.check(op, got, r.gold.Insert(op.Left, op.Right))

	case workload.EraseLeft:
		return r.check(op, r.m.EraseLeft(op.Left), r.gold.EraseLeft(op.Left))

	case workload.EraseRight:
		return r.check(op, r.m.EraseRight(op.Right), r.gold.EraseRight(op.Right))

	case workload.FindLeft:
		it := r.m.FindLeft(op.Left)
		want, ok := r.gold.AtLeft(op.Left)
		if ok != !it.IsEnd() || (ok && (it.Value() != want || it.Flip() != r.m.FindRight(want))) {
			return r.mismatch(op, it.Value(), want)
		}
		return hitOrMiss(ok), nil

	case workload.FindRight:
		got, err := r.m.AtRight(op.Right)
		want, ok := r.gold.AtRight(op.Right)
		if ok != (err == nil) || got != want {
			return r.mismatch(op, got, want)
		}
		return hitOrMiss(ok), nil

	case workload.OrDefaultLeft:
		got, want := r.m.AtLeftOrDefault(op.Left), r.gold.AtLeftOrDefault(op.Left)
		if got != want {
			return r.mismatch(op, got, want)
		}
		return metrics.ResultHit, nil

	case workload.OrDefaultRight:
		got, want := r.m.AtRightOrDefault(op.Right), r.gold.AtRightOrDefault(op.Right)
		if got != want {
			return r.mismatch(op, got, want)
		}
		return metrics.ResultHit, nil

	case workload.Clone:
		c := r.m.Clone()
		if !c.Equal(r.m) {
			return r.mismatch(op, c.Size(), r.m.Size())
		}
		// continue on the copy, the original is dropped
		r.m = c
		return metrics.ResultHit, nil
	}

	return "", fmt.Errorf("bimapbench: unknown operation %v", op.Kind)
}

func (r *runner) check(op workload.Op, got, want bool) (string, error) {
	if got != want {
		return r.mismatch(op, got, want)
	}
	return hitOrMiss(got), nil
}

func (r *runner) mismatch(op workload.Op, got, want any) (string, error) {
	return metrics.ResultMismatch, fmt.Errorf("%w: %v(%d, %q): got %v, want %v",
		ErrMismatch, op.Kind, op.Left, op.Right, got, want)
}

func hitOrMiss(ok bool) string {
	if ok {
		return metrics.ResultHit
	}
	return metrics.ResultMiss
}
