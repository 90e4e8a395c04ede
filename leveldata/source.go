package leveldata

import "math/rand/v2"

// Source hands out levels by 0-based index: authored levels first, then an
// endless run of generated ones.
type Source struct {
	authored  []Level
	seed      uint64
	generator GeneratorConfig
}

// NewSource creates a Source. Generated level i is always built from a PCG
// stream seeded with (seed, i), so the same seed replays the same run.
func NewSource(authored []Level, seed uint64, g GeneratorConfig) *Source {
	return &Source{
		authored:  authored,
		seed:      seed,
		generator: g,
	}
}

// AuthoredCount is the number of hand-made levels.
func (s *Source) AuthoredCount() int {
	return len(s.authored)
}

// Level returns the level at index. Negative indices are treated as 0.
func (s *Source) Level(index int) Level {
	if index < 0 {
		index = 0
	}
	if index < len(s.authored) {
		return s.authored[index]
	}
	rng := rand.New(rand.NewPCG(s.seed, uint64(index)))
	return Generate(index, len(s.authored), rng, s.generator)
}

// IsFinalAuthored reports whether index is the last authored level or
// beyond. Completing such a level ends the authored run.
func (s *Source) IsFinalAuthored(index int) bool {
	return index >= len(s.authored)-1
}
