package game

import "github.com/gammazero/deque"

type Visitor func(*Cell)

// flood expands outward from start through zero-adjacency cells, revealing
// every hidden non-mine neighbor it meets and handing it to visit. Only newly
// revealed zero-adjacency cells join the frontier, so each cell is expanded at
// most once.
func flood(board *Board, start *Cell, visit Visitor) {
	var frontier deque.Deque[*Cell]
	frontier.PushBack(start)

	neighbors := make([]int, 0, 8)
	for frontier.Len() > 0 {
		cell := frontier.PopFront()

		neighbors = board.appendNeighbors(neighbors[:0], cell.idx)
		for _, neighborIdx := range neighbors {
			neighbor := board.cell(neighborIdx)
			if neighbor.isMine || !board.reveal(neighbor) {
				continue
			}

			visit(neighbor)

			if neighbor.adjacentMines == 0 {
				frontier.PushBack(neighbor)
			}
		}
	}
}
