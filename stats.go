package s64shift

// Stats summarizes one run: boundary probes, a sweep, or a whole session.
type Stats struct {
	Values     uint64 // sampled input values
	Checks     uint64 // individual guarded-vs-reference comparisons
	Mismatches uint64 // comparisons that disagreed
}

// Add folds o into s. Used to merge per-worker tallies and to accumulate
// across sweeps.
func (s *Stats) Add(o Stats) {
	s.Values += o.Values
	s.Checks += o.Checks
	s.Mismatches += o.Mismatches
}
