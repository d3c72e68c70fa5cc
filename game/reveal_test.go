package game

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestPlay_FloodFillClearsBoard(t *testing.T) {
	session := newTestSession(t, 10, 0, 99)

	result := mustPlay(t, session, 50)

	if result.Status != Won {
		t.Errorf("Status = %v, want %v", result.Status, Won)
	}
	if len(result.Changed) != 98 {
		t.Errorf("revealed %d cells, want 98", len(result.Changed))
	}
	for _, cell := range result.Changed {
		if cell.IsMine {
			t.Errorf("flood revealed mine %d", cell.Index)
		}
		if !cell.Revealed {
			t.Errorf("changed cell %d not revealed", cell.Index)
		}
	}
	if !sort.SliceIsSorted(result.Changed, func(i, j int) bool {
		return result.Changed[i].Index < result.Changed[j].Index
	}) {
		t.Error("changed cells not sorted by index")
	}
}

func TestPlay_FloodFillStopsAtBorder(t *testing.T) {
	// A wall of mines down column 2 splits the board
	side := 5
	session := newTestSession(t, side, 2, 7, 12, 17, 22)

	result := mustPlay(t, session, 0)
	if result.Status != InProgress {
		t.Fatalf("Status = %v, want %v", result.Status, InProgress)
	}

	want := []int{0, 1, 5, 6, 10, 11, 15, 16, 20, 21}
	if got := changedIndexes(result); !reflect.DeepEqual(got, want) {
		t.Errorf("revealed %v, want %v", got, want)
	}

	cells := session.Snapshot()
	for _, idx := range []int{3, 4, 8, 9, 13, 14, 18, 19, 23, 24} {
		if cells[idx].Revealed {
			t.Errorf("cell %d beyond the mine wall was revealed", idx)
		}
	}
}

func TestPlay_NumberedCellRevealsOnlyItself(t *testing.T) {
	session := newTestSession(t, 4, 0)

	result := mustPlay(t, session, 1)
	if got := changedIndexes(result); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("revealed %v, want [1]", got)
	}
	if result.Changed[0].AdjacentMines != 1 {
		t.Errorf("AdjacentMines = %d, want 1", result.Changed[0].AdjacentMines)
	}
}

func TestPlay_Loss(t *testing.T) {
	session := newTestSession(t, 3, 4)

	result := mustPlay(t, session, 4)
	if result.Status != Lost {
		t.Errorf("Status = %v, want %v", result.Status, Lost)
	}
	if got := changedIndexes(result); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("revealed %v, want every cell", got)
	}

	cell, err := session.Cell(4)
	if err != nil {
		t.Fatal(err)
	}
	if !cell.IsMine || !cell.Revealed {
		t.Errorf("Cell(4) = %+v", cell)
	}
	if session.Status() != Lost {
		t.Errorf("session Status() = %v", session.Status())
	}
}

func TestPlay_LossDisclosesOnlyHiddenCells(t *testing.T) {
	session := newTestSession(t, 3, 4)

	mustPlay(t, session, 0)
	result := mustPlay(t, session, 4)
	if got := changedIndexes(result); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("revealed %v, want every cell but 0", got)
	}
}

func TestPlay_WinOnLastSafeCell(t *testing.T) {
	orders := [][]int{
		{1, 2, 3},
		{1, 3, 2},
		{2, 1, 3},
		{2, 3, 1},
		{3, 1, 2},
		{3, 2, 1},
	}

	for _, order := range orders {
		session := newTestSession(t, 2, 0)

		for i, idx := range order {
			result := mustPlay(t, session, idx)

			want := InProgress
			if i == len(order)-1 {
				want = Won
			}
			if result.Status != want {
				t.Errorf("order %v: after playing %d Status = %v, want %v", order, idx, result.Status, want)
			}
		}

		mine, _ := session.Cell(0)
		if mine.Revealed {
			t.Errorf("order %v: mine revealed on win", order)
		}
	}
}

func TestPlay_ReplayIsInert(t *testing.T) {
	session := newTestSession(t, 4, 0, 15)

	mustPlay(t, session, 1)
	result := mustPlay(t, session, 1)
	if len(result.Changed) != 0 {
		t.Errorf("replaying a revealed cell changed %v", changedIndexes(result))
	}
	if result.Status != InProgress {
		t.Errorf("Status = %v, want %v", result.Status, InProgress)
	}
}

func TestPlay_TerminalSessionIgnoresPlays(t *testing.T) {
	session := newTestSession(t, 3, 4)
	mustPlay(t, session, 4)

	result := mustPlay(t, session, 0)
	if len(result.Changed) != 0 || result.Status != Lost {
		t.Errorf("Play after loss = %+v", result)
	}
}

// expectedReveal computes the cells revealed by playing a safe cell, by
// breadth-first search over the mine layout
func expectedReveal(cells []CellView, side, start int) map[int]bool {
	revealed := map[int]bool{start: true}
	if cells[start].AdjacentMines != 0 {
		return revealed
	}

	queue := []int{start}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		row, col := idx/side, idx%side
		for r := row - 1; r <= row+1; r++ {
			for c := col - 1; c <= col+1; c++ {
				if r < 0 || c < 0 || r >= side || c >= side {
					continue
				}
				n := r*side + c
				if revealed[n] || cells[n].IsMine {
					continue
				}
				revealed[n] = true
				if cells[n].AdjacentMines == 0 {
					queue = append(queue, n)
				}
			}
		}
	}
	return revealed
}

func TestPlay_FloodMatchesReference(t *testing.T) {
	engine := NewRevealEngine(quietLogger())

	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		side := 3 + rng.Intn(12)
		mines := 1 + rng.Intn(side*side/5+1)

		board, err := GenerateBoard(side, mines, rng)
		if err != nil {
			t.Fatal(err)
		}
		board.ComputeAdjacency()
		cells := board.Cells()

		start := rng.Intn(side * side)
		for cells[start].IsMine {
			start = rng.Intn(side * side)
		}

		result, err := engine.Play(board, start)
		if err != nil {
			t.Fatal(err)
		}

		want := expectedReveal(cells, side, start)
		if len(result.Changed) != len(want) {
			t.Fatalf("seed %d: revealed %d cells, want %d\n%s", seed, len(result.Changed), len(want), board)
		}
		for _, cell := range result.Changed {
			if !want[cell.Index] {
				t.Fatalf("seed %d: unexpectedly revealed %d", seed, cell.Index)
			}
		}

		wantStatus := InProgress
		if side*side-len(want) == mines {
			wantStatus = Won
		}
		if result.Status != wantStatus {
			t.Errorf("seed %d: Status = %v, want %v", seed, result.Status, wantStatus)
		}
	}
}

func TestPlay_RevealedNeverReverts(t *testing.T) {
	config := NewGameConfig()
	config.Log = quietLogger()
	config.SideLength = 8
	config.NumMines = 6
	config.Seed = 7

	session, err := NewSession(config)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(3))
	revealed := make(map[int]bool)
	for move := 0; move < 200 && session.Status() == InProgress; move++ {
		result := mustPlay(t, session, rng.Intn(session.NumCells()))

		for _, cell := range result.Changed {
			if revealed[cell.Index] {
				t.Fatalf("cell %d reported as newly revealed twice", cell.Index)
			}
			revealed[cell.Index] = true
		}

		for _, cell := range session.Snapshot() {
			if revealed[cell.Index] && !cell.Revealed {
				t.Fatalf("cell %d was hidden again", cell.Index)
			}
			if cell.Revealed && !revealed[cell.Index] {
				t.Fatalf("cell %d revealed without being reported", cell.Index)
			}
		}
		if session.Revealed() != len(revealed) {
			t.Fatalf("Revealed() = %d, want %d", session.Revealed(), len(revealed))
		}
	}
}

func TestRevealEngine_OutOfRangeLeavesBoardUntouched(t *testing.T) {
	board, err := NewBoardWithMines(3, []int{4})
	if err != nil {
		t.Fatal(err)
	}

	engine := NewRevealEngine(nil)
	if _, err := engine.Play(board, 9); err == nil {
		t.Fatal("Play(9) on a 3x3 board succeeded")
	}
	if board.NumRevealed() != 0 {
		t.Errorf("NumRevealed() = %d after failed play", board.NumRevealed())
	}
}
