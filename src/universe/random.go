package universe

import "math/rand"

//RandomSource is a uniform binary choice
type RandomSource interface {
	Bool() bool
}

//RNG is a RandomSource backed by math/rand with explicit seeding
type RNG struct {
	r *rand.Rand
}

//NewRandomSource creates a deterministic source for the seed
func NewRandomSource(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

//Bool returns true with probability 1/2
func (r *RNG) Bool() bool {
	return r.r.Int63()&1 == 1
}

func randomCell(rnd RandomSource) Cell {
	if rnd.Bool() {
		return Alive
	}
	return Dead
}
