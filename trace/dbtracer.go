package trace

import (
	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/datarecording"
)

// Table names used by the DB tracer.
const (
	accessTableName  = "accesses"
	summaryTableName = "summaries"
)

// AccessEntry is one engine access as stored in the database.
type AccessEntry struct {
	Seq     int
	Op      string
	Address uint64
	Size    uint64
	Outcome string
}

// SummaryEntry is the final tally of one run as stored in the database.
type SummaryEntry struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// A dbTracer records every access of a run into a data recorder.
type dbTracer struct {
	recorder datarecording.DataRecorder
}

// NewDBTracer creates a Tracer that stores accesses and the run summary
// through recorder.
func NewDBTracer(recorder datarecording.DataRecorder) Tracer {
	t := &dbTracer{recorder: recorder}

	recorder.CreateTable(accessTableName, AccessEntry{})
	recorder.CreateTable(summaryTableName, SummaryEntry{})

	return t
}

func (t *dbTracer) RecordAccess(seq int, rec Record, outcome cache.Outcome) {
	t.recorder.InsertData(accessTableName, AccessEntry{
		Seq:     seq,
		Op:      rec.Kind.String(),
		Address: rec.Addr,
		Size:    rec.Size,
		Outcome: outcome.String(),
	})
}

func (t *dbTracer) EndRun(summary Summary) {
	t.recorder.InsertData(summaryTableName, SummaryEntry{
		Hits:      summary.Hits,
		Misses:    summary.Misses,
		Evictions: summary.Evictions,
	})

	t.recorder.Flush()
}
