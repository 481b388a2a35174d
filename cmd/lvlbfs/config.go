package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BenchConfig describes a benchmark suite loaded from YAML.
type BenchConfig struct {
	// Runs is the number of timed runs per graph (after one warmup).
	Runs int `yaml:"runs"`

	// Graphs lists the suite entries, executed in order.
	Graphs []GraphSpec `yaml:"graphs"`
}

// GraphSpec describes one graph in a benchmark suite.
type GraphSpec struct {
	Name string `yaml:"name"`

	// Kind selects the producer: random, random-undirected, scale-free,
	// rmat, or file.
	Kind string `yaml:"kind"`

	// Random / scale-free parameters.
	Vertices int     `yaml:"vertices"`
	Density  float64 `yaml:"density"`
	Edges    int     `yaml:"edges"`
	Scale    int     `yaml:"scale"`
	Seed     int64   `yaml:"seed"`

	// Path is the edge-list file for kind "file".
	Path string `yaml:"path"`
}

// graphKinds enumerates the accepted Kind values.
var graphKinds = map[string]bool{
	"random":            true,
	"random-undirected": true,
	"scale-free":        true,
	"rmat":              true,
	"file":              true,
}

// LoadBenchConfig reads and validates a YAML suite description.
func LoadBenchConfig(path string) (*BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg BenchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the suite description before any graph is built.
func (c *BenchConfig) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if len(c.Graphs) == 0 {
		return fmt.Errorf("at least one graph must be configured")
	}

	seen := make(map[string]bool, len(c.Graphs))
	for i, g := range c.Graphs {
		if g.Name == "" {
			return fmt.Errorf("graph %d: name is required", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate graph name %q", g.Name)
		}
		seen[g.Name] = true

		if !graphKinds[g.Kind] {
			return fmt.Errorf("graph %q: unknown kind %q", g.Name, g.Kind)
		}
		if g.Kind == "file" && g.Path == "" {
			return fmt.Errorf("graph %q: kind file requires path", g.Name)
		}
	}

	return nil
}
