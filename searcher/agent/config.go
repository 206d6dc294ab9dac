package agent

import (
	"strconv"
	"strings"

	"multiagent/evaluate"
	"multiagent/experiments/metrics"
	"multiagent/meta"
	"multiagent/searcher"

	"github.com/pkg/errors"
)

// Config selects a search strategy, its depth and its evaluation function.
type Config struct {
	Strategy   string `yaml:"strategy"`
	Depth      int    `yaml:"depth"`
	Evaluation string `yaml:"evaluation"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:   meta.DEFAULT_STRATEGY,
		Depth:      meta.DEFAULT_DEPTH,
		Evaluation: meta.DEFAULT_EVALUATION,
	}
}

// ParseConfig reads a config string of the form "strategy:key=value,...".
// Accepted keys are depth and eval; omitted values keep their defaults.
func ParseConfig(config string) (Config, error) {
	cfg := DefaultConfig()
	params := config
	if split := strings.Index(config, ":"); split != -1 {
		cfg.Strategy, params = config[:split], config[split+1:]
	} else if !strings.Contains(config, "=") {
		cfg.Strategy, params = config, ""
	}
	if cfg.Strategy == "" {
		cfg.Strategy = meta.DEFAULT_STRATEGY
	}

	for key, value := range splitConfigString(params) {
		switch key {
		case "depth":
			depth, err := strconv.Atoi(value)
			if err != nil {
				return cfg, errors.Wrapf(err, "failed to parse configuration depth=%q to int", value)
			}
			cfg.Depth = depth
		case "eval", "evaluation", "evaluationFunction":
			cfg.Evaluation = value
		default:
			return cfg, errors.Errorf("unknown agent configuration key %q in %q", key, config)
		}
	}
	return cfg, cfg.Validate()
}

// splitConfigString splits "a=1,b=2" into a map of keys to values.
func splitConfigString(params string) map[string]string {
	result := make(map[string]string)
	if params == "" {
		return result
	}
	for _, part := range strings.Split(params, ",") {
		subParts := strings.SplitN(part, "=", 2)
		key := strings.TrimSpace(subParts[0])
		if key == "" {
			continue
		}
		value := ""
		if len(subParts) == 2 {
			value = strings.TrimSpace(subParts[1])
		}
		result[key] = value
	}
	return result
}

func (c Config) Validate() error {
	if c.Depth < 0 {
		return errors.Errorf("search depth must not be negative, got %d", c.Depth)
	}
	if _, err := evaluate.Lookup(c.Evaluation); err != nil {
		return err
	}
	if _, err := searcher.New(c.Strategy); err != nil {
		return err
	}
	return nil
}

func (c Config) String() string {
	return c.Strategy + ":depth=" + strconv.Itoa(c.Depth) + ",eval=" + c.Evaluation
}

// New builds a search agent for the config, reporting to its own collector.
func New(c Config) (*SearchAgent, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid agent configuration %s", c)
	}
	evaluationFn, _ := evaluate.Lookup(c.Evaluation)
	collector := metrics.NewCollector()
	strategy, _ := searcher.New(c.Strategy, searcher.WithEvaluationFn(evaluationFn), searcher.WithMetrics(collector))
	return NewSearchAgent(strategy, c.Depth, collector), nil
}
