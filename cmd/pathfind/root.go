package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/scenario"
	"github.com/katalvlaran/pathfind/search"
)

type flags struct {
	scenario  string
	topology  string
	mapFile   string
	diagonal  bool
	algorithm string
	root      int
	goal      int
	seed      int64
	all       bool
	noDump    bool
	logLevel  string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "pathfind",
		Short:         "Run graph path searches on a YAML scenario, a generated topology or a terrain map",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.scenario, "scenario", "s", "", "scenario YAML file (default: built-in seven-node graph)")
	fl.StringVarP(&f.topology, "topology", "t", "", "generate the graph instead: path:N, cycle:N, star:N, complete:N, grid:RxC or random:N:P")
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "bfs, dfs, dfs-iterative, dijkstra, greedy or astar (overrides the scenario)")
	fl.IntVar(&f.root, "root", 0, "root node identity (overrides the scenario)")
	fl.IntVar(&f.goal, "goal", 0, "goal node identity (overrides the scenario)")
	fl.Int64Var(&f.seed, "seed", 0, "seed for unset edge weights (overrides the scenario)")
	fl.StringVarP(&f.mapFile, "map", "m", "", "terrain map file: '#' wall, '.' cost 1, '1'..'9' cost")
	fl.BoolVar(&f.diagonal, "diagonal", false, "allow diagonal moves on --map terrain")
	cmd.MarkFlagsMutuallyExclusive("scenario", "topology", "map")
	fl.BoolVar(&f.all, "all", false, "run every algorithm in sequence")
	fl.BoolVar(&f.noDump, "no-dump", false, "skip the graph dump")
	fl.StringVar(&f.logLevel, "log-level", "warn", "debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, f flags) error {
	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return err
	}

	var sc *scenario.Scenario
	if f.topology != "" || f.mapFile != "" {
		sc = &scenario.Scenario{Name: f.topology + f.mapFile}
	} else if sc, err = loadScenario(f.scenario); err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("root") {
		sc.Root = f.root
	}
	if fs.Changed("goal") {
		sc.Goal = f.goal
	}
	if fs.Changed("seed") {
		sc.Seed = f.seed
	}
	if fs.Changed("algorithm") {
		sc.Algorithm = f.algorithm
	}

	var g *core.Graph
	switch {
	case f.topology != "":
		g, err = generate(f.topology, sc, !fs.Changed("goal"), logger)
	case f.mapFile != "":
		g, err = loadTerrain(f.mapFile, f.diagonal, sc, !fs.Changed("root"), !fs.Changed("goal"), logger)
	default:
		g, err = sc.Build(core.WithLogger(logger))
	}
	if err != nil {
		return err
	}
	logger.Info("graph ready", "name", sc.Name, "nodes", g.Len(), "root", sc.Root, "goal", sc.Goal)

	out := cmd.OutOrStdout()
	if !f.noDump {
		if err = g.Dump(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if f.all {
		results, err := search.RunAll(g, sc.Root, sc.Goal)
		if err != nil {
			return err
		}
		for _, res := range results {
			printResult(out, res.Kind, res.Found, res.Path)
		}

		return nil
	}

	kind := search.AStar
	if sc.Algorithm != "" {
		if kind, err = search.ParseKind(sc.Algorithm); err != nil {
			return err
		}
	}
	p, err := search.FindPath(g, kind, sc.Root, sc.Goal)
	if errors.Is(err, search.ErrGoalUnreachable) {
		printResult(out, kind, false, p)
		return nil
	}
	if err != nil {
		return err
	}
	printResult(out, kind, true, p)

	return nil
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}

	return scenario.Load(path)
}

// generate builds a symmetric topology seeded from sc.Seed. When goalToLast
// is set the goal defaults to the highest identity. Grid nodes get Manhattan
// heuristics towards the goal.
func generate(topology string, sc *scenario.Scenario, goalToLast bool, logger *slog.Logger) (*core.Graph, error) {
	con, err := builder.ParseTopology(topology)
	if err != nil {
		return nil, err
	}
	if goalToLast && con.Nodes() > 0 {
		sc.Goal = con.Nodes() - 1
	}

	bopts := []builder.BuilderOption{builder.WithSeed(sc.Seed)}
	if sc.Goal >= 0 {
		bopts = append(bopts, builder.WithHeuristicGoal(sc.Goal))
	}

	return builder.BuildGraph(
		[]core.GraphOption{core.WithSymmetricAdjacency(), core.WithSeed(sc.Seed), core.WithLogger(logger)},
		bopts,
		con,
	)
}

// loadTerrain converts a map file. Unless overridden, root is the first
// passable cell and goal the last one in row-major order.
func loadTerrain(path string, diagonal bool, sc *scenario.Scenario, rootToFirst, goalToLast bool, logger *slog.Logger) (*core.Graph, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	defer fh.Close()

	cells, err := gridgraph.ParseMap(fh)
	if err != nil {
		return nil, err
	}
	opts := gridgraph.DefaultGridOptions()
	if diagonal {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(cells, opts)
	if err != nil {
		return nil, err
	}

	comps := gg.ConnectedComponents()
	if len(comps) == 0 {
		return nil, fmt.Errorf("map %s: no passable cells", path)
	}
	if rootToFirst {
		sc.Root = comps[0][0]
	}
	if goalToLast {
		last := -1
		for _, comp := range comps {
			for _, id := range comp {
				last = max(last, id)
			}
		}
		sc.Goal = last
	}
	logger.Info("terrain loaded", "width", gg.Width, "height", gg.Height, "components", len(comps))

	return gg.ToCoreGraph(sc.Goal, core.WithSeed(sc.Seed), core.WithLogger(logger))
}

func printResult(w io.Writer, kind search.Kind, found bool, p core.Path) {
	if !found {
		fmt.Fprintf(w, "%-13s no path\n", kind)
		return
	}
	fmt.Fprintf(w, "%-13s %s\n", kind, p)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
