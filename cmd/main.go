package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	s64shift "github.com/taotao54321/heng-s64-shift"
)

var (
	flagValues  int
	flagWorkers int
	flagSeed    uint64
)

func main() {
	cmd := &cobra.Command{
		Use:          "s64shift",
		Short:        "Differentially test the half-pair 64-bit shift variants",
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&flagValues, "values", s64shift.DefaultValues, "sampled values per range")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "sweep workers (0 = GOMAXPROCS)")
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "base RNG seed (0 = random)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rep := s64shift.NewLogReporter(logger)
	chk := s64shift.NewChecker(rep)

	total := s64shift.Boundary(chk)

	// Full non-negative range first, then the narrow range where every
	// value meets high shift counts.
	for _, max := range []int64{math.MaxInt64, s64shift.SmallRangeMax} {
		sw, errSweep := s64shift.NewSweeper(s64shift.SweepConfig{
			Values:  flagValues,
			Max:     max,
			Workers: flagWorkers,
			Seed:    flagSeed,
		}, rep)
		if errSweep != nil {
			return errSweep
		}

		st, errRun := sw.Run(cmd.Context())
		if errRun != nil {
			return errRun
		}
		logger.Info("sweep done",
			zap.Int64("max", max),
			zap.Uint64("values", st.Values),
			zap.Uint64("checks", st.Checks),
			zap.Uint64("mismatches", st.Mismatches),
		)
		total.Add(st)
	}

	// Mismatches are reported, not fatal: the run still succeeds.
	logger.Info("run finished",
		zap.Uint64("values", total.Values),
		zap.Uint64("checks", total.Checks),
		zap.Uint64("mismatches", total.Mismatches),
	)
	return nil
}
