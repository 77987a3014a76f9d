package random

import "slices"

// Sequence is a scripted [Source] for tests. Ints are returned in order by IntRange and Picks are the indexes
// returned by Choice. Scripted values outside the requested range are clamped. An exhausted script panics so that
// tests notice unexpected draws.
type Sequence struct {
	Ints  []int
	Picks []int
}

// IntRange returns the next scripted int clamped to [lo, hi].
func (s *Sequence) IntRange(lo, hi int) int {
	if len(s.Ints) == 0 {
		panic("random: Sequence ran out of ints")
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return min(max(v, lo), hi)
}

// Choice returns items at the next scripted index clamped to the slice bounds.
func (s *Sequence) Choice(items []string) string {
	if len(s.Picks) == 0 {
		panic("random: Sequence ran out of picks")
	}
	i := s.Picks[0]
	s.Picks = s.Picks[1:]
	return items[min(max(i, 0), len(items)-1)]
}

// Done reports whether every scripted value has been consumed.
func (s *Sequence) Done() bool {
	return len(s.Ints) == 0 && len(s.Picks) == 0
}

// Remaining returns copies of the unconsumed script.
func (s *Sequence) Remaining() ([]int, []int) {
	return slices.Clone(s.Ints), slices.Clone(s.Picks)
}
