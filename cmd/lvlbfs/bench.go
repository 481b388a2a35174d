package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlbfs/builder"
	"github.com/katalvlaran/lvlbfs/core"
	"github.com/katalvlaran/lvlbfs/dist"
	"github.com/katalvlaran/lvlbfs/hybrid"
)

type benchFlags struct {
	configPath string
	csvPath    string
}

// benchRow is one line of the CSV report.
type benchRow struct {
	name       string
	vertices   int
	edges      int
	avgSec     float64
	megaEdges  float64
	speedup    float64
	reachable  int
	iterations int
}

func newBenchCmd(root *rootFlags) *cobra.Command {
	flags := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "bench --config suite.yaml",
		Short: "Run a YAML-described benchmark suite and report CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(root, flags)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML suite description (required)")
	cmd.Flags().StringVar(&flags.csvPath, "csv", "", "write the report to this CSV file (default stdout)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runBench(root *rootFlags, flags *benchFlags) error {
	log := root.logger()

	cfg, err := LoadBenchConfig(flags.configPath)
	if err != nil {
		return err
	}

	// Graph construction dominates suite startup; build entries
	// concurrently, kernels still run one at a time below.
	graphs := make([]*core.Graph, len(cfg.Graphs))
	var group errgroup.Group
	for i, spec := range cfg.Graphs {
		i, spec := i, spec
		group.Go(func() error {
			g, err := buildSpec(spec)
			if err != nil {
				return fmt.Errorf("graph %q: %w", spec.Name, err)
			}
			graphs[i] = g

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	rows := make([]benchRow, 0, len(cfg.Graphs))
	for i, spec := range cfg.Graphs {
		log.Info("benchmarking", slog.String("graph", spec.Name))
		row, err := benchGraph(root, graphs[i], spec.Name, cfg.Runs)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return writeCSV(flags.csvPath, rows)
}

// benchGraph times cfg.Runs kernel executions after one warmup, plus a
// single-worker run to report speedup.
func benchGraph(root *rootFlags, g *core.Graph, name string, runs int) (benchRow, error) {
	d := dist.NewVector(g.VertexCount())

	opts := []hybrid.Option{}
	if root.workers > 0 {
		opts = append(opts, hybrid.WithWorkers(root.workers))
	}

	// Warmup.
	if _, err := hybrid.MultiSource(g, d, opts...); err != nil {
		return benchRow{}, err
	}

	var total time.Duration
	var res *hybrid.Result
	for i := 0; i < runs; i++ {
		start := time.Now()
		r, err := hybrid.MultiSource(g, d, opts...)
		if err != nil {
			return benchRow{}, err
		}
		total += time.Since(start)
		res = r
	}
	avg := total / time.Duration(runs)

	// Single-worker reference for the speedup column.
	start := time.Now()
	if _, err := hybrid.MultiSource(g, d, hybrid.WithWorkers(1)); err != nil {
		return benchRow{}, err
	}
	serial := time.Since(start)

	return benchRow{
		name:       name,
		vertices:   g.VertexCount(),
		edges:      g.EdgeCount(),
		avgSec:     avg.Seconds(),
		megaEdges:  float64(g.EdgeCount()) / avg.Seconds() / 1e6,
		speedup:    serial.Seconds() / avg.Seconds(),
		reachable:  d.CountReached(),
		iterations: res.Iterations,
	}, nil
}

// buildSpec dispatches one suite entry to its producer.
func buildSpec(spec GraphSpec) (*core.Graph, error) {
	switch spec.Kind {
	case "random":
		return builder.RandomDirected(spec.Vertices, spec.Density, builder.WithSeed(spec.Seed))
	case "random-undirected":
		return builder.RandomUndirected(spec.Vertices, spec.Density, builder.WithSeed(spec.Seed))
	case "scale-free":
		return builder.ScaleFree(spec.Vertices, spec.Edges, builder.WithSeed(spec.Seed))
	case "rmat":
		return builder.RMAT(spec.Scale, spec.Edges, builder.WithSeed(spec.Seed))
	case "file":
		return builder.FromFile(spec.Path)
	default:
		// Unreachable after config validation.
		return nil, fmt.Errorf("unknown graph kind %q", spec.Kind)
	}
}

// writeCSV emits the report to path, or stdout when path is empty.
func writeCSV(path string, rows []benchRow) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{
		"graph", "vertices", "edges", "avg_time_sec",
		"medges_per_sec", "speedup", "reachable", "iterations",
	}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.name,
			strconv.Itoa(r.vertices),
			strconv.Itoa(r.edges),
			strconv.FormatFloat(r.avgSec, 'f', 6, 64),
			strconv.FormatFloat(r.megaEdges, 'f', 3, 64),
			strconv.FormatFloat(r.speedup, 'f', 2, 64),
			strconv.Itoa(r.reachable),
			strconv.Itoa(r.iterations),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
