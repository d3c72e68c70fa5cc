package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

// Number of passes spent splitting overlapping observations
const simplifyPasses = 4

// Director deduces certain mines and safe cells from revealed adjacency
// counts, guessing by lowest local mine probability when nothing is certain.
// It never looks at the mine state of unrevealed cells.
type Director struct {
	Log logrus.FieldLogger

	// Cells deduced to be mines on the current board
	knownMines collections.Set[int]
}

// Observation states that exactly numMines of cells are mines
type Observation struct {
	origin   int // -1 for observations derived from others
	numMines int
	cells    collections.Set[int]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, idx := range collections.Sorted(observation.cells) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(fmt.Sprint(idx))
	}

	originRepr := "?"
	if observation.origin >= 0 {
		originRepr = fmt.Sprint(observation.origin)
	}

	return fmt.Sprintf("Obs[%4s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) logger() logrus.FieldLogger {
	if director.Log == nil {
		return logrus.StandardLogger()
	}
	return director.Log
}

func (director *Director) Next(session *game.Session) (int, bool) {
	cells := session.Snapshot()
	director.knownMines = make(collections.Set[int])

	observations := director.observe(session, cells)
	for i := 0; i < simplifyPasses; i++ {
		observations = director.simplifyObservations(observations)
	}

	if idx, ok := director.actDeliberate(observations); ok {
		return idx, true
	}
	if idx, ok := director.actLowestProbability(session, observations); ok {
		return idx, true
	}
	return director.actRandom(session, cells)
}

// KnownMines returns the cells deduced to be mines by the last call to Next
func (director *Director) KnownMines() []int {
	return collections.Sorted(director.knownMines)
}

func (director *Director) observe(session *game.Session, cells []game.CellView) []*Observation {
	var observations []*Observation
	for _, cell := range cells {
		if !cell.Revealed || cell.IsMine {
			continue
		}

		neighbors, err := session.NeighborsOf(cell.Index)
		if err != nil {
			continue
		}

		observation := &Observation{
			origin:   cell.Index,
			numMines: cell.AdjacentMines,
			cells:    make(collections.Set[int]),
		}
		for _, neighborIdx := range neighbors {
			if !cells[neighborIdx].Revealed {
				observation.cells.Add(neighborIdx)
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	}
	return observations
}

// simplifyObservations removes known mines from every observation, records
// observations whose cells must all be mines, and splits observations which
// contain others
func (director *Director) simplifyObservations(observations []*Observation) []*Observation {
	simplified := make([]*Observation, 0, len(observations))
	for _, observation := range observations {
		mines := observation.cells.Intersection(director.knownMines)
		observation = &Observation{
			origin:   observation.origin,
			numMines: observation.numMines - len(mines),
			cells:    observation.cells.Difference(director.knownMines),
		}
		if len(observation.cells) == 0 {
			continue
		}

		if observation.numMines == len(observation.cells) {
			for idx := range observation.cells {
				director.knownMines.Add(idx)
			}
			continue
		}
		simplified = addObservation(simplified, observation)
	}

	for _, observation := range simplified {
		for _, other := range simplified {
			if other == observation || len(other.cells) <= len(observation.cells) {
				continue
			}

			if _, isSubset := observation.cells.IntersectionEx(other.cells); isSubset {
				simplified = addObservation(simplified, &Observation{
					origin:   -1,
					numMines: other.numMines - observation.numMines,
					cells:    other.cells.Difference(observation.cells),
				})
			}
		}
	}

	return simplified
}

func addObservation(observations []*Observation, observation *Observation) []*Observation {
	// Don't add vacuous observations
	if len(observation.cells) == 0 {
		return observations
	}
	// Don't add duplicates
	for _, other := range observations {
		if other.cells.Equal(observation.cells) {
			return observations
		}
	}
	return append(observations, observation)
}

func (director *Director) actDeliberate(observations []*Observation) (int, bool) {
	for _, observation := range observations {
		if observation.numMines == 0 {
			safe := collections.Sorted(observation.cells.Difference(director.knownMines))
			if len(safe) > 0 {
				director.logger().WithField("observation", observation.String()).Debug("Playing certain safe cell")
				return safe[0], true
			}
		}
	}
	return 0, false
}

func (director *Director) actLowestProbability(session *game.Session, observations []*Observation) (int, bool) {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[int]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()

		for idx := range observation.cells {
			if director.knownMines.Contains(idx) {
				continue
			}
			if pastProbability, ok := cellProbabilities[idx]; !ok || probability > pastProbability {
				cellProbabilities[idx] = probability
			}
		}
	}

	lowestProbabilityCells := make(collections.Set[int])
	for idx, probability := range cellProbabilities {
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowestProbabilityCells = collections.NewSet(idx)
		case probability == lowestProbability:
			lowestProbabilityCells.Add(idx)
		}
	}

	idx, ok := random.Pick(session, collections.Sorted(lowestProbabilityCells))
	if ok {
		director.logger().WithFields(logrus.Fields{
			"cell":        idx,
			"probability": lowestProbability,
		}).Debug("Guessing lowest probability cell")
	}
	return idx, ok
}

func (director *Director) actRandom(session *game.Session, cells []game.CellView) (int, bool) {
	var candidates []int
	for _, cell := range cells {
		if !cell.Revealed && !director.knownMines.Contains(cell.Index) {
			candidates = append(candidates, cell.Index)
		}
	}
	return random.Pick(session, candidates)
}
