package game

import (
	"math/rand"
	"strconv"
	"strings"
)

type Board struct {
	sideLength int // in number of cells
	mineCount  int
	cells      []Cell

	numRevealed       int
	adjacencyComputed bool
}

func (board *Board) SideLength() int {
	return board.sideLength
}

func (board *Board) MineCount() int {
	return board.mineCount
}

func (board *Board) NumCells() int {
	return len(board.cells)
}

func (board *Board) NumRevealed() int {
	return board.numRevealed
}

func (board *Board) NumUnrevealed() int {
	return len(board.cells) - board.numRevealed
}

func (board *Board) inRange(idx int) bool {
	return idx >= 0 && idx < len(board.cells)
}

func (board *Board) CellAt(idx int) (*Cell, error) {
	if !board.inRange(idx) {
		return nil, &IndexError{Index: idx, Size: len(board.cells)}
	}
	return &board.cells[idx], nil
}

func (board *Board) cell(idx int) *Cell {
	return &board.cells[idx]
}

// NeighborsOf returns the indexes of the up-to-8 cells surrounding idx.
// Cells on an edge or corner have fewer neighbors; rows never wrap.
func (board *Board) NeighborsOf(idx int) ([]int, error) {
	if !board.inRange(idx) {
		return nil, &IndexError{Index: idx, Size: len(board.cells)}
	}
	return board.appendNeighbors(make([]int, 0, 8), idx), nil
}

func (board *Board) appendNeighbors(out []int, idx int) []int {
	side := board.sideLength
	row, col := idx/side, idx%side

	isAtTopBorder := row < 1
	isAtBottomBorder := row >= side-1

	if col >= 1 {
		out = append(out, idx-1)

		if !isAtTopBorder {
			out = append(out, idx-side-1)
		}
		if !isAtBottomBorder {
			out = append(out, idx+side-1)
		}
	}

	if col < side-1 {
		out = append(out, idx+1)

		if !isAtTopBorder {
			out = append(out, idx-side+1)
		}
		if !isAtBottomBorder {
			out = append(out, idx+side+1)
		}
	}

	if !isAtTopBorder {
		out = append(out, idx-side)
	}
	if !isAtBottomBorder {
		out = append(out, idx+side)
	}

	return out
}

// ComputeAdjacency stores, for every cell, the number of mines among its
// neighbors. It must run after mine placement and before any reveal.
func (board *Board) ComputeAdjacency() {
	neighbors := make([]int, 0, 8)
	for idx := range board.cells {
		cell := &board.cells[idx]
		cell.adjacentMines = 0

		neighbors = board.appendNeighbors(neighbors[:0], idx)
		for _, neighborIdx := range neighbors {
			if board.cells[neighborIdx].isMine {
				cell.adjacentMines++
			}
		}
	}
	board.adjacencyComputed = true
}

// settledStatus reports the status implied by the board alone, for boards
// restored from a snapshot that already has revealed cells
func (board *Board) settledStatus() Status {
	for idx := range board.cells {
		if board.cells[idx].isMine && board.cells[idx].isRevealed {
			return Lost
		}
	}
	if board.NumUnrevealed() == board.mineCount {
		return Won
	}
	return InProgress
}

func (board *Board) Cells() []CellView {
	views := make([]CellView, len(board.cells))
	for idx := range board.cells {
		views[idx] = board.cells[idx].View()
	}
	return views
}

func (board *Board) reveal(cell *Cell) bool {
	if cell.Reveal() {
		board.numRevealed++
		return true
	}
	return false
}

// String renders the mine layout, one row per line: [B] for a mine and the
// adjacency count for every other cell
func (board *Board) String() string {
	var grid strings.Builder
	for idx := range board.cells {
		cell := &board.cells[idx]

		grid.WriteByte('[')
		if cell.isMine {
			grid.WriteByte('B')
		} else {
			grid.WriteString(strconv.Itoa(cell.adjacentMines))
		}
		grid.WriteByte(']')

		if idx%board.sideLength == board.sideLength-1 {
			grid.WriteByte('\n')
		}
	}
	return grid.String()
}

func allocateBoard(sideLength, mineCount int) *Board {
	board := Board{
		sideLength: sideLength,
		mineCount:  mineCount,
		cells:      make([]Cell, sideLength*sideLength),
	}
	for idx := range board.cells {
		board.cells[idx].idx = idx
	}
	return &board
}

// GenerateBoard lays out a sideLength x sideLength board and places exactly
// mineCount mines, picking uniformly random cells and skipping those already
// mined. Adjacency is not computed.
func GenerateBoard(sideLength, mineCount int, rng *rand.Rand) (*Board, error) {
	if err := validateConfig(sideLength, mineCount); err != nil {
		return nil, err
	}

	board := allocateBoard(sideLength, mineCount)

	minesPlaced := 0
	for minesPlaced < mineCount {
		cell := board.cell(rng.Intn(len(board.cells)))
		if !cell.isMine {
			cell.MarkAsMine()
			minesPlaced++
		}
	}

	return board, nil
}

// NewBoardWithMines builds a board with mines at exactly the given indexes,
// and computes adjacency
func NewBoardWithMines(sideLength int, mines []int) (*Board, error) {
	if sideLength <= 0 {
		return nil, &ConfigError{sideLength, len(mines), "side length must be positive"}
	}

	board := allocateBoard(sideLength, 0)
	for _, idx := range mines {
		cell, err := board.CellAt(idx)
		if err != nil {
			return nil, err
		}
		if !cell.isMine {
			cell.MarkAsMine()
			board.mineCount++
		}
	}

	if err := validateConfig(sideLength, board.mineCount); err != nil {
		return nil, err
	}

	board.ComputeAdjacency()
	return board, nil
}
