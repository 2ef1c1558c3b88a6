package s64shift

import (
	"sync"

	"go.uber.org/zap"
)

// LogReporter writes each mismatch as one structured log line.
type LogReporter struct {
	log *zap.Logger
}

// NewLogReporter wraps log as a mismatch sink. zap loggers are safe for
// concurrent use, so the reporter is too.
func NewLogReporter(log *zap.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Report logs the mismatch with one field per lane of both results.
func (r *LogReporter) Report(m Mismatch) {
	r.log.Error("shift variants disagree",
		zap.String("dir", string(m.Dir)),
		zap.Int64("value", m.Value),
		zap.Uint("amount", m.Amount),
		zap.Int32("got_hi", m.Got.Hi),
		zap.Uint32("got_lo", m.Got.Lo),
		zap.Int32("ref_hi", m.Ref.Hi),
		zap.Uint32("ref_lo", m.Ref.Lo),
	)
}

// RecordReporter collects mismatches in memory.
type RecordReporter struct {
	mu   sync.Mutex
	recs []Mismatch
}

// Report appends the mismatch to the record.
func (r *RecordReporter) Report(m Mismatch) {
	r.mu.Lock()
	r.recs = append(r.recs, m)
	r.mu.Unlock()
}

// Mismatches returns a copy of everything reported so far.
func (r *RecordReporter) Mismatches() []Mismatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Mismatch, len(r.recs))
	copy(out, r.recs)
	return out
}
