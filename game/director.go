package game

import "github.com/sirupsen/logrus"

// Director plays a session in place of a human
type Director interface {
	// Next picks the cell to play, or reports false if it has no move
	Next(session *Session) (idx int, ok bool)
}

// RunDirector lets director play session until the game ends, the director
// runs out of moves, or maxMoves plays have been made (0 means no limit).
// onPlay, if non-nil, receives every play result.
func RunDirector(session *Session, director Director, maxMoves int, onPlay func(idx int, result PlayResult)) (Status, error) {
	for moves := 0; session.Status() == InProgress; moves++ {
		if maxMoves > 0 && moves >= maxMoves {
			break
		}

		idx, ok := director.Next(session)
		if !ok {
			session.log.Debug("Director has no move")
			break
		}

		result, err := session.Play(idx)
		if err != nil {
			return session.Status(), err
		}

		session.log.WithFields(logrus.Fields{
			"cell":    idx,
			"changed": len(result.Changed),
			"status":  result.Status,
		}).Debug("Director played")

		if onPlay != nil {
			onPlay(idx, result)
		}
	}
	return session.Status(), nil
}
