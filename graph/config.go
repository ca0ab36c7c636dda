package graph

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TrainConfig parameterizes Fit.
type TrainConfig struct {
	// Target is the feature being learned.
	Target string `yaml:"target"`
	// Epochs is the number of passes over the rows; at least 1.
	Epochs int `yaml:"epochs"`
	// LearningRate scales every priority update; in (0, 1].
	LearningRate float64 `yaml:"learning_rate"`
}

// Validate checks the bounds Fit relies on. A learning rate above 1 could
// drive a priority negative.
func (tc TrainConfig) Validate() error {
	switch {
	case tc.Target == "":
		return fmt.Errorf("%w: target feature is empty", ErrInvalidConfig)
	case tc.Epochs < 1:
		return fmt.Errorf("%w: epochs must be >= 1, got %d", ErrInvalidConfig, tc.Epochs)
	case !(tc.LearningRate > 0 && tc.LearningRate <= 1):
		return fmt.Errorf("%w: learning rate must be in (0, 1], got %v", ErrInvalidConfig, tc.LearningRate)
	}
	return nil
}

// Config is the file form of the graph settings.
//
//	max_depth: 8
//	max_paths: 0
//	value_traversal: false
//	predict_concurrency: 4
//	train:
//	  target: score
//	  epochs: 50
//	  learning_rate: 0.1
type Config struct {
	MaxDepth           int         `yaml:"max_depth"`
	MaxPaths           int         `yaml:"max_paths"`
	ValueTraversal     bool        `yaml:"value_traversal"`
	PredictConcurrency int         `yaml:"predict_concurrency"`
	Train              TrainConfig `yaml:"train"`
}

// DefaultConfig mirrors DefaultOptions with 50 epochs at learning rate 0.1.
func DefaultConfig() Config {
	o := DefaultOptions()
	return Config{
		MaxDepth:           o.MaxDepth,
		MaxPaths:           o.MaxPaths,
		ValueTraversal:     o.ValueTraversal,
		PredictConcurrency: o.PredictConcurrency,
		Train:              TrainConfig{Epochs: 50, LearningRate: 0.1},
	}
}

// LoadConfig decodes a Config from r over DefaultConfig. Unknown fields are
// rejected; an empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("graph: decode config: %w", err)
	}
	return c, nil
}

// Options converts c into Options for New. Range checks happen there.
func (c Config) Options() []Option {
	opts := []Option{
		WithMaxDepth(c.MaxDepth),
		WithMaxPaths(c.MaxPaths),
		WithPredictConcurrency(c.PredictConcurrency),
	}
	if c.ValueTraversal {
		opts = append(opts, WithValueTraversal())
	}
	return opts
}
