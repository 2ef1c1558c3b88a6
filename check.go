package s64shift

// Direction identifies which shift a check exercised.
type Direction string

const (
	DirLeft  Direction = "lshift"
	DirRight Direction = "rshift"
)

// Mismatch records a disagreement between the guarded and reference forms of
// one shift. Got holds the guarded result, Ref the reference result.
type Mismatch struct {
	Dir    Direction
	Value  int64
	Amount uint
	Got    S64
	Ref    S64
}

// Reporter receives mismatch reports. Implementations must be safe for
// concurrent use: the sweep driver reports from multiple goroutines.
type Reporter interface {
	Report(m Mismatch)
}

// Checker runs both forms of a shift on the same input and compares the
// resulting lanes. A disagreement is a data event delivered to the Reporter,
// never a fault: the checker has no error path.
type Checker struct {
	rep Reporter
}

// NewChecker constructs a Checker that delivers mismatches to rep.
func NewChecker(rep Reporter) *Checker {
	return &Checker{rep: rep}
}

// CheckLsh compares the guarded and reference left shifts of x by n and
// reports whether they agreed. x must be non-negative and n within
// 1..=MaxLsh(x); keeping that precondition is the caller's job.
func (c *Checker) CheckLsh(x int64, n uint) bool {
	p := Split(x)
	got := p.Lsh(n)
	ref := lshRef(p, n)
	if got == ref {
		return true
	}
	c.rep.Report(Mismatch{Dir: DirLeft, Value: x, Amount: n, Got: got, Ref: ref})
	return false
}

// CheckRsh compares the guarded and reference right shifts of x by n and
// reports whether they agreed. n must be within 1..=MaxShift.
func (c *Checker) CheckRsh(x int64, n uint) bool {
	p := Split(x)
	got := p.Rsh(n)
	ref := rshRef(p, n)
	if got == ref {
		return true
	}
	c.rep.Report(Mismatch{Dir: DirRight, Value: x, Amount: n, Got: got, Ref: ref})
	return false
}
