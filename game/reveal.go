package game

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// PlayResult describes the effect of a single play. Changed holds every cell
// revealed by the play, sorted by index; callers should treat it as a set.
type PlayResult struct {
	Changed []CellView
	Status  Status
}

type RevealEngine struct {
	log logrus.FieldLogger
}

func NewRevealEngine(log logrus.FieldLogger) *RevealEngine {
	if log == nil {
		log = defaultLogger
	}
	return &RevealEngine{log: log}
}

// Play applies the game rule to the cell at idx, including the full cascade,
// and reports the cells it revealed. Nothing is mutated when idx is out of
// range.
func (engine *RevealEngine) Play(board *Board, idx int) (PlayResult, error) {
	target, err := board.CellAt(idx)
	if err != nil {
		return PlayResult{Status: InProgress}, err
	}
	if !board.adjacencyComputed {
		board.ComputeAdjacency()
	}

	var changed []CellView
	visit := func(cell *Cell) {
		changed = append(changed, cell.View())
	}

	switch {
	case target.isMine:
		for i := range board.cells {
			cell := &board.cells[i]
			if board.reveal(cell) {
				visit(cell)
			}
		}

		engine.log.WithFields(logrus.Fields{
			"cell":     idx,
			"revealed": len(changed),
		}).Info("Game over")

		return PlayResult{Changed: changed, Status: Lost}, nil

	case target.isRevealed:
		return PlayResult{Status: InProgress}, nil
	}

	board.reveal(target)
	visit(target)

	if target.adjacentMines == 0 {
		flood(board, target, visit)

		engine.log.WithFields(logrus.Fields{
			"cell":          idx,
			"revealed":      len(changed),
			"totalRevealed": board.numRevealed,
		}).Debug("Cascaded empty cells")
	}

	sort.Slice(changed, func(i, j int) bool {
		return changed[i].Index < changed[j].Index
	})

	status := InProgress
	if board.NumUnrevealed() == board.mineCount {
		status = Won
		engine.log.WithField("revealed", board.numRevealed).Info("Game won")
	}

	return PlayResult{Changed: changed, Status: status}, nil
}
