package evaluate

import (
	"math"

	"multiagent/game"
	"multiagent/pathfind"

	"github.com/pkg/errors"
)

const noFoodDistance = 99999.0 // Closest food distance used by Reflex when the board is empty

// Weights of the features combined by Better
const (
	SCORE_WEIGHT         = 1.0
	FOOD_WEIGHT          = -10.0
	CAPSULE_WEIGHT       = -30.0
	FOOD_DISTANCE_WEIGHT = -1.0
	GHOST_WEIGHT         = -10.0
	GHOST_SQUARE_WEIGHT  = -50.0
)

// Score returns the intrinsic score of the state unmodified.
func Score(s game.State) float64 {
	return s.Score()
}

// Reflex scores the successor reached by pacman taking the action. The food
// bonus is measured from the new position to the food of the current state.
func Reflex(s game.State, action game.Action) float64 {
	current := board(s)
	successor := board(current.Successor(0, action))
	position := successor.PacmanPosition()

	closest := noFoodDistance
	for _, food := range current.Food() {
		closest = math.Min(closest, game.EuclideanDistance(position, food))
	}

	value := successor.Score()
	value += 100 / (1 + float64(len(successor.Food())))
	value += 100 / (1 + closest)
	for _, ghost := range successor.Ghosts() {
		d := float64(game.ManhattanDistance(ghost.Position, position))
		value -= 100 / (1 + d*d*d)
	}
	return value
}

// Better evaluates a state with the true path length to the nearest food, found with A*.
var Better game.Evaluate = NewBetter(pathfind.AStar)

// NewBetter returns the weighted feature evaluator using the given path finder.
func NewBetter(finder pathfind.Finder) game.Evaluate {
	return func(s game.State) float64 {
		b := board(s)
		pacman := b.PacmanPosition()
		food := b.Food()

		value := SCORE_WEIGHT * b.Score()
		value += FOOD_WEIGHT * float64(len(food))
		value += CAPSULE_WEIGHT * float64(len(b.Capsules()))
		value += FOOD_DISTANCE_WEIGHT * float64(foodDistance(finder, b.Walls(), pacman, food))

		ghosts := b.Ghosts()
		if len(ghosts) == 0 {
			return value
		}
		nearest, d := nearestGhost(pacman, ghosts)
		inverse := 1 / (float64(d) + 0.01)
		inverseSquare := 1 / (float64(d*d) + 0.01)
		if nearest.ScaredTimer > d {
			// A scared ghost within reach is worth chasing
			value -= GHOST_WEIGHT*inverse + GHOST_SQUARE_WEIGHT*inverseSquare
		} else {
			value += GHOST_WEIGHT*inverse + GHOST_SQUARE_WEIGHT*inverseSquare
		}
		return value
	}
}

// foodDistance is the path length to the food nearest by Manhattan distance,
// or 0 when no food is left. Unreachable food falls back to the Manhattan distance.
func foodDistance(finder pathfind.Finder, walls game.Grid, pacman game.Position, food []game.Position) int {
	if len(food) == 0 {
		return 0
	}
	target, best := food[0], game.ManhattanDistance(pacman, food[0])
	for _, f := range food[1:] {
		if d := game.ManhattanDistance(pacman, f); d < best {
			target, best = f, d
		}
	}
	length, ok := finder.PathLength(walls, pacman, target)
	if !ok {
		return best
	}
	return length
}

// nearestGhost keeps the first ghost found at the minimum distance.
func nearestGhost(pacman game.Position, ghosts []game.Ghost) (game.Ghost, int) {
	nearest, best := ghosts[0], game.ManhattanDistance(pacman, ghosts[0].Position)
	for _, g := range ghosts[1:] {
		if d := game.ManhattanDistance(pacman, g.Position); d < best {
			nearest, best = g, d
		}
	}
	return nearest, best
}

func board(s game.State) game.Board {
	b, ok := s.(game.Board)
	if !ok {
		panic("unexpected state type")
	}
	return b
}

// Lookup returns the evaluator registered under name.
func Lookup(name string) (game.Evaluate, error) {
	switch name {
	case "score", "scoreEvaluationFunction":
		return Score, nil
	case "better", "betterEvaluationFunction":
		return Better, nil
	default:
		return nil, errors.Errorf("unknown evaluation function %q", name)
	}
}
