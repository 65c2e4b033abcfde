// Package trace reads valgrind-style memory traces and replays them on a
// replacement engine.
package trace

// OpKind identifies the operation of one trace record.
type OpKind byte

// The operation markers used by valgrind lackey traces.
const (
	OpInstr  OpKind = 'I'
	OpLoad   OpKind = 'L'
	OpStore  OpKind = 'S'
	OpModify OpKind = 'M'
)

func (k OpKind) String() string {
	return string(rune(k))
}

// A Record is one memory reference read from a trace. Size is the number
// of bytes the reference touches; the simulator only decodes Addr.
type Record struct {
	Kind OpKind
	Addr uint64
	Size uint64
}
