package generate

import (
	"math/rand/v2"
	"time"

	"aippt/imagepool"
	"aippt/library"
)

// Context is the state of a generation run. Every assembly step receives it
// and returns the updated value, nothing is kept between calls otherwise.
type Context struct {
	Pool imagepool.Pool
	// chosen on the first transition slide, reused for the rest of the run
	Transition *library.Template
	// last number given to a transition slide
	PartNumber int
	Rand       *rand.Rand
}

// NewContext starts a run with the image pool. Zero seed selects time based
// one, actual seed is returned so the run could be repeated.
func NewContext(pool imagepool.Pool, seed uint64) (Context, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return Context{
		Pool: pool,
		Rand: rand.New(rand.NewPCG(seed, seed>>32|seed<<32)),
	}, seed
}

func (c Context) pick(n int) int {
	if n <= 1 {
		return 0
	}
	return c.Rand.IntN(n)
}
