package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Session is one play-through of a board. It is not safe for concurrent
// use; callers serialize their calls to Play.
type Session struct {
	config GameConfig
	log    logrus.FieldLogger

	rand      *rand.Rand
	boardSeed int64

	board  *Board
	status Status
	engine *RevealEngine
}

// NewSession validates config and builds the first board
func NewSession(config GameConfig) (*Session, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &Session{
		config: config,
		log:    config.logger(),
		rand:   rand.New(rand.NewSource(seed)),
	}
	session.engine = NewRevealEngine(session.log)

	if err := session.restart(config.LoadSnapshotFresh); err != nil {
		return nil, err
	}
	return session, nil
}

// Configure validates and stores a new board size and mine count, replacing
// any snapshot the session was started from. Call Restart to apply it.
func (session *Session) Configure(sideLength, mineCount int) error {
	if err := validateConfig(sideLength, mineCount); err != nil {
		return err
	}

	session.config.SideLength = sideLength
	session.config.NumMines = mineCount
	session.config.Snapshot = nil
	return nil
}

// Restart discards the current board and builds a new one from the stored
// configuration. A snapshot board always comes back with every cell hidden.
func (session *Session) Restart() error {
	return session.restart(true)
}

// restart builds a new board; fresh only matters for snapshot boards, and
// is false only when a session resumes a saved game
func (session *Session) restart(fresh bool) error {
	board, err := session.createBoard(fresh)
	if err != nil {
		return err
	}

	session.board = board
	session.status = board.settledStatus()

	session.log.WithFields(logrus.Fields{
		"side":  board.sideLength,
		"mines": board.mineCount,
		"seed":  session.boardSeed,
	}).Info("Created board")

	if session.config.ShowGrid {
		session.log.Info("Board grid:\n" + board.String())
	}
	return nil
}

func (session *Session) createBoard(fresh bool) (*Board, error) {
	config := session.config

	var board *Board
	var err error
	if config.Snapshot != nil {
		session.boardSeed = config.Snapshot.Seed
		board, err = config.Snapshot.CreateBoard(fresh)
	} else {
		session.boardSeed = session.rand.Int63()
		board, err = GenerateBoard(config.SideLength, config.NumMines, rand.New(rand.NewSource(session.boardSeed)))
		if err == nil {
			board.ComputeAdjacency()
		}
	}
	if err != nil {
		return nil, err
	}

	session.log.WithField("cells", board.NumCells()).Debug("Computed adjacent mines")
	return board, nil
}

// Play reveals the cell at idx. Once the session is lost or won, Play has no
// effect and reports the terminal status with no changed cells.
func (session *Session) Play(idx int) (PlayResult, error) {
	if !session.board.inRange(idx) {
		return PlayResult{Status: session.status}, &IndexError{Index: idx, Size: session.board.NumCells()}
	}
	if session.status != InProgress {
		return PlayResult{Status: session.status}, nil
	}

	result, err := session.engine.Play(session.board, idx)
	if err != nil {
		return PlayResult{Status: session.status}, err
	}

	session.status = result.Status
	if session.status.IsTerminal() {
		session.endGame()
	}
	return result, nil
}

func (session *Session) endGame() {
	path, err := session.config.saveSnapshot(session.BoardSnapshot(), session.status)
	if err != nil {
		session.log.WithError(err).Warn("Could not save board snapshot")
		return
	}
	if path != "" {
		session.log.WithField("path", path).Debug("Saved board snapshot")
	}
}

// Snapshot returns the public state of every cell, in index order
func (session *Session) Snapshot() []CellView {
	return session.board.Cells()
}

func (session *Session) Cell(idx int) (CellView, error) {
	cell, err := session.board.CellAt(idx)
	if err != nil {
		return CellView{}, err
	}
	return cell.View(), nil
}

func (session *Session) NeighborsOf(idx int) ([]int, error) {
	return session.board.NeighborsOf(idx)
}

func (session *Session) BoardSnapshot() *BoardSnapshot {
	return session.board.snapshot(session.boardSeed)
}

func (session *Session) Status() Status {
	return session.status
}

func (session *Session) SideLength() int {
	return session.board.sideLength
}

func (session *Session) MineCount() int {
	return session.board.mineCount
}

func (session *Session) NumCells() int {
	return session.board.NumCells()
}

func (session *Session) Revealed() int {
	return session.board.numRevealed
}

// Rand is the session's random source, shared with directors so a seeded
// session replays identically
func (session *Session) Rand() *rand.Rand {
	return session.rand
}
