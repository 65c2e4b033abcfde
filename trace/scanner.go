package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Scanner reads memory trace records one at a time. Data references have
// the form ` L 10,4`, ` S 18,8`, or ` M 20,4`, with the address in hex and
// a leading space. Instruction fetch lines start with `I` in the first
// column and are returned as OpInstr records so that callers can skip
// them.
type Scanner struct {
	src     *bufio.Scanner
	lineNum int
}

// NewScanner creates a Scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{src: bufio.NewScanner(r)}
}

// Next returns the next record in the trace. It returns io.EOF after the
// last line and a descriptive error for a malformed line. The scanner does
// not recover from errors; a malformed trace aborts the run.
func (s *Scanner) Next() (Record, error) {
	for s.src.Scan() {
		s.lineNum++

		text := s.src.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		return s.parse(text)
	}

	if err := s.src.Err(); err != nil {
		return Record{}, err
	}

	return Record{}, io.EOF
}

func (s *Scanner) parse(text string) (Record, error) {
	kind, err := s.parseKind(text)
	if err != nil {
		return Record{}, err
	}

	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Record{}, s.malformed(text, "expected `op addr,size`")
	}

	addrSize := strings.SplitN(fields[1], ",", 2)
	if len(addrSize) != 2 {
		return Record{}, s.malformed(text, "missing `,size`")
	}

	addr, err := strconv.ParseUint(
		strings.TrimPrefix(addrSize[0], "0x"), 16, 64)
	if err != nil {
		return Record{}, s.malformed(text, "bad address")
	}

	size, err := strconv.ParseUint(addrSize[1], 10, 64)
	if err != nil {
		return Record{}, s.malformed(text, "bad size")
	}

	return Record{Kind: kind, Addr: addr, Size: size}, nil
}

// parseKind reads the operation marker. Data lines are indented by one
// space; instruction fetches are not.
func (s *Scanner) parseKind(text string) (OpKind, error) {
	if !strings.HasPrefix(text, " ") {
		if text[0] == byte(OpInstr) {
			return OpInstr, nil
		}

		return 0, s.malformed(text, "data references must start with a space")
	}

	switch op := strings.TrimSpace(text[:2]); op {
	case "L":
		return OpLoad, nil
	case "S":
		return OpStore, nil
	case "M":
		return OpModify, nil
	default:
		return 0, s.malformed(text, "unknown operation "+strconv.Quote(op))
	}
}

func (s *Scanner) malformed(text, reason string) error {
	return fmt.Errorf("trace: line %d %q: %s", s.lineNum, text, reason)
}
