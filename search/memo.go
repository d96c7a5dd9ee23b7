package search

// memo caches the best additional release per canonical state.
// One memo belongs to exactly one solver; it is never shared across goroutines.
type memo[K comparable] struct {
	entries     map[K]int
	hits        int
	evaluations int
}

func newMemo[K comparable]() *memo[K] {
	return &memo[K]{entries: make(map[K]int)}
}

func (m *memo[K]) lookup(k K) (int, bool) {
	v, ok := m.entries[k]
	if ok {
		m.hits++
	}

	return v, ok
}

func (m *memo[K]) store(k K, v int) {
	m.evaluations++
	m.entries[k] = v
}

func (m *memo[K]) len() int { return len(m.entries) }

// reset drops every entry; counters survive.
func (m *memo[K]) reset() {
	m.entries = make(map[K]int)
}

func (m *memo[K]) stats() Stats {
	return Stats{Evaluations: m.evaluations, Hits: m.hits, Entries: len(m.entries)}
}
