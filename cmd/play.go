package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/render"
)

const helpText = `Enter a cell as "row col" or as its index.
Commands: restart, help, quit
`

// play runs an interactive game, reading moves from in until it is closed or
// the player quits
func play(in io.Reader, out io.Writer, session *game.Session, plain bool) error {
	term := render.NewTerminal(plain)
	term.Reset(session.Snapshot(), session.SideLength(), session.Status())

	if err := term.Draw(out); err != nil {
		return err
	}
	fmt.Fprint(out, "> ")

	restart := func() error {
		if err := session.Restart(); err != nil {
			return err
		}
		term.Reset(session.Snapshot(), session.SideLength(), session.Status())
		if err := term.Draw(out); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))

		if session.Status().IsTerminal() {
			switch line {
			case "y", "yes", "r", "restart":
				if err := restart(); err != nil {
					return err
				}
			case "n", "no", "q", "quit", "exit":
				return nil
			default:
				fmt.Fprint(out, "Play again? (y/n) ")
			}
			continue
		}

		switch line {
		case "":
			fmt.Fprint(out, "> ")
			continue
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprint(out, helpText)
			fmt.Fprint(out, "> ")
			continue
		case "r", "restart":
			if err := restart(); err != nil {
				return err
			}
			continue
		}

		idx, err := render.ParseMove(line, session.SideLength())
		if err != nil {
			fmt.Fprintln(out, err)
			fmt.Fprint(out, "> ")
			continue
		}

		result, err := session.Play(idx)
		var indexErr *game.IndexError
		if errors.As(err, &indexErr) {
			fmt.Fprintln(out, err)
			fmt.Fprint(out, "> ")
			continue
		} else if err != nil {
			return err
		}

		term.Apply(result)
		if err := term.Draw(out); err != nil {
			return err
		}

		if result.Status.IsTerminal() {
			fmt.Fprint(out, "Play again? (y/n) ")
		} else {
			fmt.Fprint(out, "> ")
		}
	}

	return scanner.Err()
}

// autoplay lets director play the whole game, drawing the final board
func autoplay(out io.Writer, session *game.Session, director game.Director, plain bool) error {
	term := render.NewTerminal(plain)
	term.Reset(session.Snapshot(), session.SideLength(), session.Status())

	moves := 0
	status, err := game.RunDirector(session, director, 0, func(idx int, result game.PlayResult) {
		moves++
		term.Apply(result)
	})
	if err != nil {
		return err
	}

	if err := term.Draw(out); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s after %d moves (%d of %d cells revealed)\n", status, moves, session.Revealed(), session.NumCells())
	return nil
}
