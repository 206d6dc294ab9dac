package gamemaster

import (
	"slices"

	"multiagent/game"

	"github.com/pkg/errors"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrWrongTurn   = errors.New("not this agent's turn")
	ErrIllegalMove = errors.New("illegal action")
)

// GameMaster holds the authoritative game state and resolves actions in turn
// order, pacman first and then every ghost.
type GameMaster struct {
	state game.State
	moves int
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(state game.State) *GameMaster {
	return &GameMaster{state: state}
}

func (gm *GameMaster) State() game.State {
	return gm.state
}

// Moves is the number of actions played so far.
func (gm *GameMaster) Moves() int {
	return gm.moves
}

func (gm *GameMaster) CurrentAgent() int {
	return gm.moves % gm.state.NumAgents()
}

func (gm *GameMaster) IsOver() bool {
	return gm.state.IsWin() || gm.state.IsLose()
}

// Play validates and applies the action of agent. The state is left
// unchanged when an error is returned.
func (gm *GameMaster) Play(agent int, action game.Action) error {
	if gm.IsOver() {
		return ErrGameOver
	}
	if agent != gm.CurrentAgent() {
		return errors.WithMessagef(ErrWrongTurn, "agent %d played on agent %d's turn", agent, gm.CurrentAgent())
	}
	if !slices.Contains(gm.state.LegalActions(agent), action) {
		return errors.WithMessagef(ErrIllegalMove, "agent %d cannot play %q", agent, action)
	}
	gm.state = gm.state.Successor(agent, action)
	gm.moves++
	return nil
}
