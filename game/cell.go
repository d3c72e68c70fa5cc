package game

import "fmt"

type Cell struct {
	idx           int
	adjacentMines int

	isMine, isRevealed bool
}

// CellView is the public state of a cell, as handed to presentation layers
type CellView struct {
	Index         int  `yaml:"index"`
	IsMine        bool `yaml:"mine"`
	AdjacentMines int  `yaml:"adjacent"`
	Revealed      bool `yaml:"revealed"`
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v)", cell.idx)
}

func (cell *Cell) serialize() rune {
	switch {
	case cell.isMine && cell.isRevealed:
		return mineRevealedChar
	case cell.isMine:
		return mineUnrevealedChar
	case cell.isRevealed:
		return revealedChar
	default:
		return unrevealedChar
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case mineUnrevealedChar, mineRevealedChar:
		cell.MarkAsMine()
		if c == mineRevealedChar && !fresh {
			cell.Reveal()
		}
	case revealedChar:
		if !fresh {
			cell.Reveal()
		}
	case unrevealedChar:
	default:
		return false
	}

	return true
}

func (cell *Cell) Index() int {
	return cell.idx
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) AdjacentMines() int {
	return cell.adjacentMines
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) MarkAsMine() {
	cell.isMine = true
}

// Reveal marks the cell as revealed, returning whether it was previously
// hidden. A revealed cell never becomes hidden again.
func (cell *Cell) Reveal() bool {
	if cell.isRevealed {
		return false
	}
	cell.isRevealed = true
	return true
}

func (cell *Cell) View() CellView {
	return CellView{
		Index:         cell.idx,
		IsMine:        cell.isMine,
		AdjacentMines: cell.adjacentMines,
		Revealed:      cell.isRevealed,
	}
}
