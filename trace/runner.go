package trace

import (
	"fmt"
	"io"

	"github.com/sarchlab/csim/cache"
)

// An Engine consumes memory references one at a time.
type Engine interface {
	Access(addr uint64) cache.Outcome
}

// A Tracer observes every reference a runner sends to its engine.
type Tracer interface {
	// RecordAccess is called once per engine access. seq numbers the
	// accesses of one run from 1; a modify record produces two calls with
	// consecutive sequence numbers.
	RecordAccess(seq int, rec Record, outcome cache.Outcome)

	// EndRun is called once after the last record of a run.
	EndRun(summary Summary)
}

// Summary tallies the outcomes of one run.
type Summary struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

func (s *Summary) tally(outcome cache.Outcome) {
	switch outcome {
	case cache.OutcomeHit:
		s.Hits++
	case cache.OutcomeMiss:
		s.Misses++
	case cache.OutcomeMissEvict:
		s.Misses++
		s.Evictions++
	}
}

// A Runner feeds a memory trace into a replacement engine. Instruction
// fetches are skipped. A modify record is a load immediately followed by a
// store to the same address, so it reaches the engine as two consecutive
// accesses; the second always hits, since the first left the line
// resident.
type Runner struct {
	engine  Engine
	verbose io.Writer
	tracers []Tracer
}

// NewRunner creates a Runner that drives engine.
func NewRunner(engine Engine) *Runner {
	return &Runner{engine: engine}
}

// WithVerboseOutput makes the runner write one line per data reference,
// in the form `L 10,1 hit`, to w.
func (r *Runner) WithVerboseOutput(w io.Writer) *Runner {
	r.verbose = w
	return r
}

// AcceptTracer registers a tracer to observe the runner's accesses.
func (r *Runner) AcceptTracer(t Tracer) *Runner {
	r.tracers = append(r.tracers, t)
	return r
}

// Run replays the trace read from src until it is exhausted. A malformed
// record or a read failure aborts the run with the error; the accesses
// applied so far remain counted.
func (r *Runner) Run(src io.Reader) (Summary, error) {
	scanner := NewScanner(src)

	summary := Summary{}
	seq := 0

	for {
		rec, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return summary, err
		}

		if rec.Kind == OpInstr {
			continue
		}

		numAccesses := 1
		if rec.Kind == OpModify {
			numAccesses = 2
		}

		for i := 0; i < numAccesses; i++ {
			outcome := r.engine.Access(rec.Addr)
			summary.tally(outcome)

			seq++
			for _, t := range r.tracers {
				t.RecordAccess(seq, rec, outcome)
			}

			if r.verbose != nil {
				fmt.Fprintf(r.verbose, "%s %x,%d %s\n",
					rec.Kind, rec.Addr, rec.Size, outcome)
			}
		}
	}

	for _, t := range r.tracers {
		t.EndRun(summary)
	}

	return summary, nil
}
