// Command valves prints the maximum pressure release of a valve network: first
// for one agent, then for two agents working together.
//
//	valves -workers 8 data/input
//	valves -config valves.yaml -strategy joint
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/kataras/golog"

	"github.com/katalvlaran/valveflow/compact"
	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/parse"
	"github.com/katalvlaran/valveflow/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// answer is what the command prints.
type answer struct {
	Single int
	Dual   int
}

// run wires config, parsing and both searches; results go to out, logs to logOut.
func run(ctx context.Context, out, logOut io.Writer, args []string) error {
	cfg, exit, err := parseArgs(args, logOut)
	if err != nil || exit {
		return err
	}

	logger := golog.New()
	logger.SetOutput(logOut)
	logger.SetLevel(cfg.LogLevel)

	records, err := parse.ParseFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Infof("read %d valves from %s", len(records), cfg.Input)

	ans, err := solve(ctx, cfg, records, logger)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ans.Single)
	fmt.Fprintln(out, ans.Dual)

	return nil
}

// solve runs the single-agent search and the configured two-agent search.
func solve(ctx context.Context, cfg config.Config, records []core.NodeRecord, logger *golog.Logger) (answer, error) {
	net, err := core.Build(records)
	if err != nil {
		return answer{}, err
	}
	method := compact.MethodBFS
	if cfg.Distances == config.DistancesFloydWarshall {
		method = compact.MethodFloydWarshall
	}
	g, err := compact.Compact(net, cfg.Start, compact.WithMethod(method))
	if err != nil {
		return answer{}, err
	}
	logger.Debugf("compacted %d valves to %d critical: %s",
		net.Len(), g.Critical(), strings.Join(g.Names[:g.Critical()], ","))

	solver, err := search.NewSolver(g)
	if err != nil {
		return answer{}, err
	}
	var ans answer
	if ans.Single, err = solver.Solve(g.Start(), g.FullMask(), cfg.SingleBudget); err != nil {
		return answer{}, err
	}
	if plan, err := solver.Plan(g.Start(), g.FullMask(), cfg.SingleBudget); err == nil {
		for _, st := range plan {
			logger.Debugf("open %s with %d minutes left: +%d", st.Name, st.Remaining, st.Release)
		}
	}
	st := solver.Stats()
	logger.Infof("single agent, %d minutes: %d (%d states, %d memo hits)",
		cfg.SingleBudget, ans.Single, st.Evaluations, st.Hits)

	switch cfg.Strategy {
	case config.StrategyJoint:
		ans.Dual, err = search.JointSearch(net, cfg.Start, cfg.DualBudget)
		if err != nil {
			return answer{}, err
		}
	default:
		split, err := search.PartitionSearch(ctx, g, cfg.DualBudget,
			search.WithWorkers(cfg.Workers), search.WithLogger(logger))
		if err != nil {
			return answer{}, err
		}
		left, right := split.Valves(g)
		logger.Debugf("agent one: %s; agent two: %s", strings.Join(left, ","), strings.Join(right, ","))
		ans.Dual = split.Release
	}
	logger.Infof("two agents (%s), %d minutes: %d", cfg.Strategy, cfg.DualBudget, ans.Dual)

	return ans, nil
}
