package game

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// minesSnapshot serializes a fresh board with mines at the given indexes
func minesSnapshot(sideLength int, mines ...int) *BoardSnapshot {
	isMine := make(map[int]bool, len(mines))
	for _, idx := range mines {
		isMine[idx] = true
	}

	var rows []string
	for y := 0; y < sideLength; y++ {
		var row strings.Builder
		for x := 0; x < sideLength; x++ {
			if isMine[y*sideLength+x] {
				row.WriteRune(mineUnrevealedChar)
			} else {
				row.WriteRune(unrevealedChar)
			}
		}
		rows = append(rows, row.String())
	}
	return &BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
}

func newTestSession(t *testing.T, sideLength int, mines ...int) *Session {
	t.Helper()
	config := NewGameConfig()
	config.Log = quietLogger()
	config.Snapshot = minesSnapshot(sideLength, mines...)

	session, err := NewSession(config)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session
}

func mustPlay(t *testing.T, session *Session, idx int) PlayResult {
	t.Helper()
	result, err := session.Play(idx)
	if err != nil {
		t.Fatalf("Play(%d): %v", idx, err)
	}
	return result
}

func changedIndexes(result PlayResult) []int {
	indexes := make([]int, len(result.Changed))
	for i, cell := range result.Changed {
		indexes[i] = cell.Index
	}
	return indexes
}
