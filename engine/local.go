package engine

import (
	"fmt"
	"time"

	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/gamemaster"
	"multiagent/meta"
	"multiagent/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// finder is implemented by agents that report search metrics for their moves.
type finder interface {
	FindAction(state game.State) (game.Action, metrics.SearchMetric)
}

type Local struct {
	State    game.State
	Agents   []agent.Agent // Indexed by agent index
	Layout   string
	MaxMoves int
}

// LocalEngine drives one agent per agent index of state, pacman first.
func LocalEngine(agents []agent.Agent, state game.State) *Local {
	if len(agents) != state.NumAgents() {
		panic(fmt.Sprintf("number of agents %d does not match the %d agents of the game", len(agents), state.NumAgents()))
	}
	return &Local{
		State:    state,
		Agents:   agents,
		MaxMoves: meta.MAX_MOVES,
	}
}

// Run executes the entire game loop until the game is won or lost.
func (e *Local) Run() (game.State, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{Layout: e.Layout, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting game on %q with %d agents", e.Layout, len(e.Agents))

	gm := gamemaster.NewGameMaster(e.State)
	for !gm.IsOver() && gm.Moves() < e.MaxMoves {
		step, index := gm.Moves(), gm.CurrentAgent()

		var action game.Action
		var searchMetric metrics.SearchMetric
		if f, ok := e.Agents[index].(finder); ok {
			action, searchMetric = f.FindAction(gm.State())
		} else {
			action = e.Agents[index].GetAction(gm.State())
		}

		if err := gm.Play(index, action); err != nil {
			e.State = gm.State()
			return e.State, gameMetric, moveMetrics, errors.WithMessagef(err, "step %d", step)
		}
		log.Debug().Msgf("step %d: agent %d plays %s", step, index, action)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Agent:        index,
			Action:       action,
			SearchMetric: searchMetric,
		})
	}
	e.State = gm.State()
	step := gm.Moves()

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Win = e.State.IsWin()
	gameMetric.Score = e.State.Score()

	switch {
	case e.State.IsWin():
		log.Info().Msgf("pacman won with score %.0f after %d moves", e.State.Score(), step)
	case e.State.IsLose():
		log.Info().Msgf("pacman lost with score %.0f after %d moves", e.State.Score(), step)
	default:
		log.Info().Msgf("stopped after %d moves with score %.0f", step, e.State.Score())
	}
	return e.State, gameMetric, moveMetrics, nil
}
