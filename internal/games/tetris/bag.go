package tetris

import "math/rand"

// Bag is a 7-bag randomizer: it deals the seven kinds in a random order
// and reshuffles a fresh permutation once all seven are consumed, so any
// seven consecutive draws contain each kind exactly once.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
}

// NewBag creates a bag drawing from the given random source.
// The source is injected so tests can fix the deal order.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next deals the next kind, refilling the bag when it runs empty.
func (b *Bag) Next() Kind {
	if len(b.kinds) == 0 {
		b.refill()
	}
	k := b.kinds[len(b.kinds)-1]
	b.kinds = b.kinds[:len(b.kinds)-1]
	return k
}

// refill loads a fresh shuffled permutation of all seven kinds.
func (b *Bag) refill() {
	b.kinds = make([]Kind, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		b.kinds = append(b.kinds, k)
	}
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
}

// remaining returns how many kinds are left in the current fill.
func (b *Bag) remaining() int {
	return len(b.kinds)
}

// SpawnPiece creates a kind's piece at its spawn anchor: horizontally
// centered for the spawn orientation, top row.
func SpawnPiece(k Kind, boardWidth int) Piece {
	width := shapeGrids[k][0].Width()
	return NewPiece(k, boardWidth/2-width/2, 0)
}
