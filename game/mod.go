package game

// Action is an opaque move token; actions only need to be comparable.
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"

	// NoAction is returned where no move applies (e.g. at a search cutoff).
	NoAction Action = ""
)

// Directions in the order legal actions are enumerated.
var Directions = []Action{North, South, East, West}

// Reverse returns the opposite direction. Stop reverses to itself.
func (a Action) Reverse() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return a
	}
}

// State should be immutable - Successor always returns a new copy.
// Agent index 0 is the maximizing agent, every other index is an adversary.
type State interface {
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	NumAgents() int
	IsWin() bool
	IsLose() bool
	Score() float64
}

// Board is a State that exposes the positional accessors heuristics read.
type Board interface {
	State
	PacmanPosition() Position
	Food() []Position
	Capsules() []Position
	Ghosts() []Ghost
	Walls() Grid
}

// Evaluate scores a state; higher is better for agent 0.
type Evaluate func(State) float64

// ActionEvaluate scores the successor reached by agent 0 taking an action.
type ActionEvaluate func(State, Action) float64
