package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the serialized board, with adjacency computed. If
// fresh, every cell is left unrevealed.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	sideLength := len(rows)
	if sideLength == 0 || rows[0] == "" {
		return nil, &ConfigError{Reason: "snapshot board is empty"}
	}

	board := allocateBoard(sideLength, 0)
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != sideLength {
			return nil, &ConfigError{
				SideLength: sideLength,
				Reason:     fmt.Sprintf("snapshot row %d has %d cells, board is not square", y, len(row)),
			}
		}

		for x, c := range row {
			cell := board.cell(y*sideLength + x)
			if !cell.deserialize(c, fresh) {
				return nil, &ConfigError{
					SideLength: sideLength,
					Reason:     fmt.Sprintf("unknown cell %q at row %d, column %d", c, y, x),
				}
			}

			if cell.isMine {
				board.mineCount++
			}
			if cell.isRevealed {
				board.numRevealed++
			}
		}
	}

	if err := validateConfig(sideLength, board.mineCount); err != nil {
		return nil, err
	}

	board.ComputeAdjacency()
	return board, nil
}

func (board *Board) snapshot(seed int64) *BoardSnapshot {
	var rows strings.Builder
	for idx := range board.cells {
		rows.WriteRune(board.cells[idx].serialize())
		if idx%board.sideLength == board.sideLength-1 && idx != len(board.cells)-1 {
			rows.WriteByte('\n')
		}
	}

	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: rows.String(),
	}
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("loading board snapshot: %w", err)
	}
	return &snapshot, nil
}
