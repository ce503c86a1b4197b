package game

import "github.com/kamstrup/intmap"

// SpawnStats counts how many pieces of each variant entered play during the
// current game.
type SpawnStats struct {
	counts *intmap.Map[VariantID, int]
	total  int
}

func newSpawnStats() *SpawnStats {
	return &SpawnStats{
		counts: intmap.New[VariantID, int](int(numVariants)),
	}
}

func (s *SpawnStats) record(id VariantID) {
	n, _ := s.counts.Get(id)
	s.counts.Put(id, n+1)
	s.total++
}

func (s *SpawnStats) reset() {
	s.counts.Clear()
	s.total = 0
}

// Count returns the number of spawned pieces of the given variant.
func (s *SpawnStats) Count(id VariantID) int {
	n, _ := s.counts.Get(id)
	return n
}

// Total returns the number of spawned pieces of any variant.
func (s *SpawnStats) Total() int {
	return s.total
}

// Share returns the fraction of spawned pieces that were of the given
// variant, or 0 before the first spawn.
func (s *SpawnStats) Share(id VariantID) float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.Count(id)) / float64(s.total)
}
