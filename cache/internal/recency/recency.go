// Package recency maintains the least-recently-used order of the lines in
// one cache set.
package recency

const none = -1

// A List keeps cache line indices ordered from least- to most-recently
// used. The links are stored in index-addressed arenas, so Touch and
// Oldest run in constant time and no allocation happens after New.
type List struct {
	next []int
	prev []int
	head int
	tail int
}

// New creates a List over the indices 0 through n-1, with index 0 as the
// least recently used.
func New(n int) *List {
	if n < 1 {
		panic("recency: list must hold at least one index")
	}

	l := &List{
		next: make([]int, n),
		prev: make([]int, n),
		head: 0,
		tail: n - 1,
	}

	for i := range l.next {
		l.next[i] = i + 1
		l.prev[i] = i - 1
	}
	l.next[n-1] = none

	return l
}

// Len returns the number of indices in the list.
func (l *List) Len() int {
	return len(l.next)
}

// Oldest returns the least-recently-used index. The order is not changed.
func (l *List) Oldest() int {
	return l.head
}

// Touch marks index i as the most recently used.
func (l *List) Touch(i int) {
	if i == l.tail {
		return
	}

	if i == l.head {
		l.head = l.next[i]
		l.prev[l.head] = none
	} else {
		l.next[l.prev[i]] = l.next[i]
		l.prev[l.next[i]] = l.prev[i]
	}

	l.prev[i] = l.tail
	l.next[i] = none
	l.next[l.tail] = i
	l.tail = i
}

// Order returns the indices from least- to most-recently used.
func (l *List) Order() []int {
	order := make([]int, 0, len(l.next))
	for i := l.head; i != none; i = l.next[i] {
		order = append(order, i)
	}

	return order
}
