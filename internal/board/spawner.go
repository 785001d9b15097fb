package board

// Spawner decides, tick by tick, whether a new ball is released.
type Spawner struct {
	probability float64
	rng         Source
}

func NewSpawner(probability float64, rng Source) Spawner {
	return Spawner{probability: probability, rng: rng}
}

// Release reports whether a ball should be dropped this tick. No randomness is
// consumed unless dropping is on and the run still has balls left.
func (s Spawner) Release(dropping bool, dropped, total int) bool {
	if !dropping || dropped >= total {
		return false
	}
	return s.rng.Float64() < s.probability
}
