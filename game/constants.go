package game

type Status int

const (
	InProgress Status = iota
	Lost
	Won
)

func (status Status) String() string {
	switch status {
	case InProgress:
		return "in-progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

func (status Status) IsTerminal() bool {
	return status == Lost || status == Won
}

// Characters used when serializing a board
const (
	mineUnrevealedChar = 'O'
	mineRevealedChar   = '*'
	unrevealedChar     = '#'
	revealedChar       = '.'
)

const (
	DefaultSideLength = 10
	DefaultNumMines   = 10
)
