// Package render draws a game session in a terminal and turns typed moves
// into cell indexes.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/they4kman/minefield/game"
)

var (
	ColorUnrevealed = color.Style{color.FgGray}
	ColorEmpty      = color.Style{color.FgDefault}
	ColorMine       = color.Style{color.FgRed, color.OpBold}
	ColorHeader     = color.Style{color.FgCyan}
	ColorLost       = color.Style{color.FgWhite, color.BgRed, color.OpBold}
	ColorWon        = color.Style{color.FgWhite, color.BgGreen, color.OpBold}

	numberColors = []color.Style{
		1: {color.FgBlue},
		2: {color.FgGreen},
		3: {color.FgRed},
		4: {color.FgMagenta},
		5: {color.FgYellow},
		6: {color.FgCyan},
		7: {color.FgLightWhite},
		8: {color.FgGray, color.OpBold},
	}
)

type glyph struct {
	text  string
	style color.Style
}

func glyphOf(cell game.CellView) glyph {
	switch {
	case !cell.Revealed:
		return glyph{"#", ColorUnrevealed}
	case cell.IsMine:
		return glyph{"*", ColorMine}
	case cell.AdjacentMines == 0:
		return glyph{".", ColorEmpty}
	default:
		return glyph{strconv.Itoa(cell.AdjacentMines), numberColors[cell.AdjacentMines]}
	}
}

// Terminal keeps the rendered glyph of every cell, so a play only touches the
// cells it changed
type Terminal struct {
	// Plain disables colors
	Plain bool

	sideLength int
	glyphs     []glyph
	status     game.Status
}

func NewTerminal(plain bool) *Terminal {
	return &Terminal{Plain: plain}
}

// Reset replaces every glyph from a full snapshot of the board
func (term *Terminal) Reset(cells []game.CellView, sideLength int, status game.Status) {
	term.sideLength = sideLength
	term.status = status
	term.glyphs = make([]glyph, len(cells))
	for _, cell := range cells {
		term.glyphs[cell.Index] = glyphOf(cell)
	}
}

// Apply updates the glyphs of the cells a play changed
func (term *Terminal) Apply(result game.PlayResult) {
	for _, cell := range result.Changed {
		if cell.Index >= 0 && cell.Index < len(term.glyphs) {
			term.glyphs[cell.Index] = glyphOf(cell)
		}
	}
	term.status = result.Status
}

func (term *Terminal) paint(style color.Style, text string) string {
	if term.Plain {
		return text
	}
	return style.Sprint(text)
}

// Draw writes the grid, with row and column numbers, followed by a banner if
// the game has ended
func (term *Terminal) Draw(w io.Writer) error {
	out := bufio.NewWriter(w)
	width := len(strconv.Itoa(term.sideLength - 1))

	out.WriteString(strings.Repeat(" ", width+1))
	for col := 0; col < term.sideLength; col++ {
		out.WriteString(term.paint(ColorHeader, fmt.Sprintf(" %*d", width, col)))
	}
	out.WriteByte('\n')

	for row := 0; row < term.sideLength; row++ {
		out.WriteString(term.paint(ColorHeader, fmt.Sprintf("%*d ", width, row)))
		for col := 0; col < term.sideLength; col++ {
			g := term.glyphs[row*term.sideLength+col]
			out.WriteString(strings.Repeat(" ", width))
			out.WriteString(term.paint(g.style, g.text))
		}
		out.WriteByte('\n')
	}

	if banner := term.Banner(); banner != "" {
		out.WriteByte('\n')
		if term.status == game.Lost {
			out.WriteString(term.paint(ColorLost, banner))
		} else {
			out.WriteString(term.paint(ColorWon, banner))
		}
		out.WriteByte('\n')
	}

	return out.Flush()
}

func (term *Terminal) Banner() string {
	switch term.status {
	case game.Lost:
		return " GAME OVER "
	case game.Won:
		return " BOARD CLEARED "
	default:
		return ""
	}
}

// ParseMove reads a move typed as either a cell index or "row col"
func ParseMove(line string, sideLength int) (int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	switch len(fields) {
	case 1:
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("invalid cell index %q", fields[0])
		}
		return idx, nil

	case 2:
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("invalid row %q", fields[0])
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, fmt.Errorf("invalid column %q", fields[1])
		}
		if row < 0 || row >= sideLength || col < 0 || col >= sideLength {
			return 0, fmt.Errorf("row and column must be within [0, %d)", sideLength)
		}
		return row*sideLength + col, nil

	default:
		return 0, fmt.Errorf("expected a cell index or \"row col\", got %q", line)
	}
}
