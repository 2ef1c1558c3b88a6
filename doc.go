// Package s64shift differentially tests two implementations of shifting a
// 64-bit signed integer held as a pair of 32-bit lanes (high: signed,
// low: unsigned). The pairing emulates 64-bit shifts on targets whose
// compilers could not be trusted with them; the guarded form additionally
// survives a shift amount of zero, which the raw lane arithmetic cannot,
// since its complementary sub-shift would reach the full lane width.
//
// Example:
//
//	import s64shift "github.com/taotao54321/heng-s64-shift"
//
//	// Collect any disagreement between the two variants
//	rep := &s64shift.RecordReporter{}
//	chk := s64shift.NewChecker(rep)
//
//	// Deterministic boundary probes on value zero
//	st := s64shift.Boundary(chk)
//
//	// Randomized sweep over the full non-negative range
//	sw, err := s64shift.NewSweeper(s64shift.SweepConfig{
//	    Values: s64shift.DefaultValues,
//	    Max:    math.MaxInt64,
//	    Seed:   1,
//	}, rep)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	swStats, err := sw.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	st.Add(swStats)
//
// // A mismatch is a data event, not a failure: inspect rep.Mismatches()
package s64shift
