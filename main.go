package main

import (
	"flag"
	"os"
	"time"

	"multiagent/config"
	"multiagent/experiments"
	"multiagent/experiments/metrics"
	"multiagent/meta"
	"multiagent/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	setupPath := flag.String("setup", "", "Path of a YAML experiment setup; overrides the other flags")
	layout := flag.String("layout", "minimaxClassic", "Built-in layout to play on")
	agentConfig := flag.String("agent", meta.DEFAULT_STRATEGY, `Pacman agent, e.g. "alphabeta:depth=3,eval=better" or "reflex"`)
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the random ghosts")
	flag.Parse()

	config.Init()
	initLogger(config.Get("LOG_LEVEL", "info"))
	outputDir := config.Get("OUTPUT_DIR", "results")

	var setup experiments.Setup
	var err error
	if *setupPath != "" {
		setup, err = experiments.LoadSetup(*setupPath)
	} else {
		setup, err = commandLineSetup(*layout, *agentConfig, *games, *seed)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid experiment")
	}

	result, err := experiments.Run(setup, outputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	wins := 0
	for _, record := range result.GameRecords {
		if record.Win {
			wins++
		}
	}
	log.Info().Msgf("won %d of %d games, records in %s", wins, len(result.GameRecords), result.Dir)
}

func commandLineSetup(layout, agentConfig string, games int, seed uint64) (experiments.Setup, error) {
	ac := metrics.AgentConfig{ID: 1, Strategy: experiments.REFLEX}
	if agentConfig != experiments.REFLEX {
		cfg, err := agent.ParseConfig(agentConfig)
		if err != nil {
			return experiments.Setup{}, err
		}
		ac = metrics.AgentConfig{ID: 1, Strategy: cfg.Strategy, Depth: cfg.Depth, Evaluation: cfg.Evaluation}
	}
	setup := experiments.Setup{
		Name:   layout + "_" + time.Now().UTC().Format("20060102T150405"),
		Layout: layout,
		Games:  games,
		Seed:   seed,
		Agents: []metrics.AgentConfig{ac},
	}
	return setup, setup.Validate()
}

func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}
