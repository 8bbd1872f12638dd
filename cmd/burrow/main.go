// Command burrow reads a burrow diagram and prints the minimal energy needed
// to sort it, first as drawn (depth 2) and then unfolded (depth 4).
//
// Flags may also be set through the environment (BURROW_INPUT,
// BURROW_MAX_NODES, BURROW_TIMEOUT), and a .env file in the working
// directory is loaded first when present.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/burrow/core"
	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/search"
)

func main() {
	log.SetFlags(0)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	cmd := &cli.Command{
		Name:  "burrow",
		Usage: "minimal energy to sort a burrow diagram",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "input.txt",
				Usage:   "diagram file, or - for stdin",
				Sources: cli.EnvVars("BURROW_INPUT"),
			},
			&cli.IntFlag{
				Name:  "part",
				Value: 0,
				Usage: "1 = as drawn, 2 = unfolded, 0 = both",
			},
			&cli.IntFlag{
				Name:    "max-nodes",
				Value:   0,
				Usage:   "fail after expanding this many states (0 = no limit)",
				Sources: cli.EnvVars("BURROW_MAX_NODES"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   0,
				Usage:   "fail when a solve takes longer than this (0 = no limit)",
				Sources: cli.EnvVars("BURROW_TIMEOUT"),
			},
			&cli.BoolFlag{
				Name:  "dijkstra",
				Usage: "order the frontier by cost only, without the estimate",
			},
			&cli.BoolFlag{
				Name:  "no-direct",
				Usage: "disable the combined room-to-room move",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log search progress and dump results",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	lines, err := readLines(cmd.String("input"))
	if err != nil {
		return err
	}

	part := int(cmd.Int("part"))
	if part < 0 || part > 2 {
		return fmt.Errorf("part must be 0, 1 or 2, got %d", part)
	}

	maxNodes := int(cmd.Int("max-nodes"))
	if maxNodes < 0 {
		return fmt.Errorf("max-nodes must be non-negative, got %d", maxNodes)
	}

	verbose := cmd.Bool("verbose")
	opts := []search.Option{
		search.WithHeuristic(!cmd.Bool("dijkstra")),
		search.WithDirectMoves(!cmd.Bool("no-direct")),
		search.WithMaxNodes(maxNodes),
	}
	if verbose {
		opts = append(opts,
			search.WithLogger(log.New(os.Stderr, "search: ", log.Lmsgprefix)),
			search.WithProgressEvery(100000),
		)
	}

	if part != 2 {
		if err := solve(ctx, cmd, "Part 1", lines, 2, verbose, opts); err != nil {
			return err
		}
	}
	if part != 1 {
		unfolded, err := layout.Unfold(lines)
		if err != nil {
			return err
		}
		if err := solve(ctx, cmd, "Part 2", unfolded, 4, verbose, opts); err != nil {
			return err
		}
	}

	return nil
}

func solve(ctx context.Context, cmd *cli.Command, name string, lines []string, depth int, verbose bool, opts []search.Option) error {
	t, err := core.Standard(depth)
	if err != nil {
		return err
	}
	start, err := layout.Parse(lines, t)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if verbose {
		log.Printf("%s: start\n%s", name, layout.Render(t, start.Positions))
	}

	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	began := time.Now()
	res, err := search.Solve(ctx, t, start, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	fmt.Printf("%s: found cost of %s in %s (%s states expanded)\n",
		name, humanize.Comma(res.Cost), time.Since(began).Round(time.Millisecond), humanize.Comma(int64(res.Expanded)))
	if verbose {
		log.Printf("%s: %# v", name, pretty.Formatter(res))
	}

	return nil
}

func readLines(path string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	return layout.Lines(string(data)), nil
}
