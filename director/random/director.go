package random

import (
	"github.com/they4kman/minefield/game"
)

// Director plays unrevealed cells in a random order, fixed the first time it
// sees a board of a given size
type Director struct {
	order []int
}

func (director *Director) Next(session *game.Session) (int, bool) {
	if len(director.order) != session.NumCells() {
		director.order = session.Rand().Perm(session.NumCells())
	}

	cells := session.Snapshot()
	for _, idx := range director.order {
		if !cells[idx].Revealed {
			return idx, true
		}
	}
	return 0, false
}

// Pick returns a uniformly random element of candidates, or false if there are
// none
func Pick(session *game.Session, candidates []int) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[session.Rand().Intn(len(candidates))], true
}
