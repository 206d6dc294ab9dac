package experiments

import (
	"os"

	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher/agent"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const REFLEX = "reflex" // Strategy name of the one-step reflex agent

// Setup describes an experiment: every agent plays a number of games on one
// layout against random ghosts.
type Setup struct {
	Name   string                `yaml:"name"`
	Layout string                `yaml:"layout"`
	Games  int                   `yaml:"games"`
	Seed   uint64                `yaml:"seed"`
	Agents []metrics.AgentConfig `yaml:"agents"`
}

// LoadSetup reads and validates a YAML setup file.
func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, errors.Wrapf(err, "failed to read setup %s", path)
	}
	setup, err := ParseSetup(data)
	if err != nil {
		return Setup{}, errors.WithMessagef(err, "invalid setup %s", path)
	}
	return setup, nil
}

func ParseSetup(data []byte) (Setup, error) {
	var setup Setup
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, errors.Wrap(err, "failed to parse setup")
	}
	// An explicit depth of 0 is kept, only an omitted depth gets the default
	var depths struct {
		Agents []struct {
			Depth *int `yaml:"depth"`
		} `yaml:"agents"`
	}
	if err := yaml.Unmarshal(data, &depths); err != nil {
		return Setup{}, errors.Wrap(err, "failed to parse agent depths")
	}
	if setup.Games <= 0 {
		setup.Games = 1
	}
	if setup.Name == "" {
		setup.Name = "experiment"
	}
	for i := range setup.Agents {
		setup.Agents[i] = withDefaults(setup.Agents[i], depths.Agents[i].Depth != nil)
	}
	return setup, setup.Validate()
}

func withDefaults(c metrics.AgentConfig, hasDepth bool) metrics.AgentConfig {
	defaults := agent.DefaultConfig()
	if c.Strategy == "" {
		c.Strategy = defaults.Strategy
	}
	if c.Evaluation == "" {
		c.Evaluation = defaults.Evaluation
	}
	if !hasDepth && c.Strategy != REFLEX {
		c.Depth = defaults.Depth
	}
	return c
}

func (s Setup) Validate() error {
	if _, err := game.LoadLayout(s.Layout); err != nil {
		return err
	}
	if len(s.Agents) == 0 {
		return errors.New("setup has no agents")
	}
	ids := map[int]bool{}
	for _, c := range s.Agents {
		if ids[c.ID] {
			return errors.Errorf("duplicate agent id %d", c.ID)
		}
		ids[c.ID] = true
		if c.Strategy == REFLEX {
			continue
		}
		if err := searchConfig(c).Validate(); err != nil {
			return errors.WithMessagef(err, "agent %d", c.ID)
		}
	}
	return nil
}

func searchConfig(c metrics.AgentConfig) agent.Config {
	return agent.Config{Strategy: c.Strategy, Depth: c.Depth, Evaluation: c.Evaluation}
}
