package experiments

import (
	"path/filepath"

	"multiagent/engine"
	"multiagent/evaluate"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Result holds the records of a finished experiment.
type Result struct {
	Dir         string // Where the records were written
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// Run plays every agent of the setup against random ghosts and writes the
// records under dir/<setup name>. Games are reproducible from the setup seed.
func Run(setup Setup, dir string) (Result, error) {
	if err := setup.Validate(); err != nil {
		return Result{}, err
	}
	rng := rand.New(rand.NewSource(setup.Seed))

	count := 0
	result := Result{}

	log.Info().Msgf("starting %s experiment on %s...", setup.Name, setup.Layout)

	for ai, config := range setup.Agents {
		log.Info().Msgf("starting agent %d of %d with config=%+v...", ai+1, len(setup.Agents), config)

		for i := 0; i < setup.Games; i++ {
			gameMetric, moveMetrics, err := runGame(setup.Layout, config, rng.Uint64())
			if err != nil {
				return result, errors.WithMessagef(err, "agent %d game %d", config.ID, i+1)
			}
			count++
			result.GameRecords = append(result.GameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.MoveRecords = append(result.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed agent %d game %d of %d: win=%t score=%.0f", config.ID, i+1, setup.Games, gameMetric.Win, gameMetric.Score)
		}
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	writer, err := metrics.NewWriter(filepath.Join(dir, setup.Name))
	if err != nil {
		return result, errors.WithMessage(err, "failed to create experiment writer")
	}
	result.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(setup.Agents); err != nil {
		return result, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return result, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
		return result, err
	}
	log.Info().Msg("stored move records")

	return result, nil
}

// runGame plays a single game of the configured pacman against random ghosts.
func runGame(layout string, config metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := game.LoadLayout(layout)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	pacman, err := createAgent(config, rng)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agents := []agent.Agent{pacman}
	for i := 1; i < state.NumAgents(); i++ {
		agents = append(agents, agent.NewRandomAgent(i, rand.New(rand.NewSource(rng.Uint64()))))
	}

	e := engine.LocalEngine(agents, state)
	e.Layout = layout
	_, gameMetric, moveMetrics, err := e.Run()
	return gameMetric, moveMetrics, err
}

func createAgent(config metrics.AgentConfig, rng *rand.Rand) (agent.Agent, error) {
	if config.Strategy == REFLEX {
		return agent.NewReflexAgent(evaluate.Reflex, rng), nil
	}
	return agent.New(searchConfig(config))
}
