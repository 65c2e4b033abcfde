package cache

import "github.com/sarchlab/csim/cache/internal/recency"

// A Line is one slot of a cache set. Lines start invalid and receive a tag
// on the miss that fills them. They are never invalidated during a run.
type Line struct {
	Valid bool
	Tag   uint64
}

// A set pairs the lines at one set index with their recency order.
type set struct {
	lines []Line
	order *recency.List
}

func newSet(numLines int) *set {
	return &set{
		lines: make([]Line, numLines),
		order: recency.New(numLines),
	}
}

// find returns the line currently holding tag, if any. Tags are unique
// among the valid lines of a set, so the first match is the only one.
func (s *set) find(tag uint64) (lineID int, found bool) {
	for i, line := range s.lines {
		if line.Valid && line.Tag == tag {
			return i, true
		}
	}

	return 0, false
}

// install overwrites the line at lineID with tag and marks the line as the
// most recently used.
func (s *set) install(lineID int, tag uint64) {
	s.lines[lineID] = Line{Valid: true, Tag: tag}
	s.order.Touch(lineID)
}
