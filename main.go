package main

import (
	"flag"
	"fmt"
	console "github.com/asynkron/goconsole"
	"github.com/asynkron/protoactor-go/eventstream"
	"go.uber.org/zap"
	"gossip-simulation/impl/gossip"
	"gossip-simulation/impl/overlay"
	"gossip-simulation/impl/parameters"
	"gossip-simulation/impl/randomness"
	"gossip-simulation/impl/utils"
)

var (
	inputFile = flag.String("input_file", "", "Path to the input file in json format")
	logFile   = flag.String("log_file", "",
		"Path to the file where to save logs produced by the simulation. Logs go to stderr if empty")
	nodesCount = flag.Int("nodes", 0, "Number of nodes, overrides the input file")
	cycles     = flag.Int("cycles", 0, "Max number of cycles to run, overrides the input file")
	seed       = flag.Uint64("seed", 0, "Seed of the random source, overrides the input file")
	debug      = flag.Bool("debug", false, "Log every sent and received message")
	step       = flag.Bool("step", false, "Wait for enter after every cycle")
)

func loadParameters(logger *zap.Logger) parameters.Parameters {
	params := parameters.DefaultParameters()
	if *inputFile != "" {
		var e error
		params, e = parameters.LoadParameters(*inputFile)
		if e != nil {
			utils.ExitWithError(logger, e.Error())
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nodes":
			params.NodesCount = *nodesCount
		case "cycles":
			params.Cycles = *cycles
		case "seed":
			params.Seed = *seed
		}
	})

	if params.NodesCount <= 0 {
		utils.ExitWithError(logger, fmt.Sprintf("Number of nodes must be positive, got %d", params.NodesCount))
	}
	return params
}

func main() {
	flag.Parse()

	logger, closeLogger, e := utils.NewLogger(*logFile, *debug)
	if e != nil {
		utils.ExitWithError(zap.NewExample(), e.Error())
	}
	defer func() { _ = closeLogger() }()

	params := loadParameters(logger)
	cfg, e := params.Config()
	if e != nil {
		utils.ExitWithError(logger, fmt.Sprintf("Invalid parameters\n%s", e))
	}

	events := eventstream.NewEventStream()
	events.Subscribe(func(event interface{}) {
		summary, ok := event.(gossip.CycleSummary)
		if !ok {
			return
		}
		if summary.Sent == 0 {
			fmt.Printf("Cycle %d: no message sent, %s\n", summary.Cycle, summary.Reason)
			return
		}
		fmt.Printf("Cycle %d: %d/%d nodes infected\n", summary.Cycle, summary.Infected, summary.Nodes)
	})

	simulator, e := gossip.NewSimulator[string](
		cfg,
		randomness.NewUniform(params.Seed),
		gossip.WithLogger(logger),
		gossip.WithEventStream(events))
	if e != nil {
		utils.ExitWithError(logger, e.Error())
	}

	for i := 0; i < params.NodesCount; i++ {
		if _, e = gossip.NewNode(simulator); e != nil {
			utils.ExitWithError(logger, e.Error())
		}
	}

	first := simulator.Nodes().At(simulator.Intn(params.NodesCount))
	first.SetMessage(fmt.Sprintf("Msg %v", simulator.Float64()))
	logger.Info("Starting simulation",
		zap.String("run", simulator.RunID().String()),
		zap.Stringer("config", cfg),
		zap.Int("nodes", params.NodesCount),
		zap.Stringer("first", first))

	for simulator.Cycles() < params.Cycles && !simulator.AllNodesInfected() {
		if _, e = simulator.RunCycle(); e != nil {
			utils.ExitWithError(logger, e.Error())
		}
		if *step {
			_, _ = console.ReadLine()
		}
	}

	stats := overlay.Analyze(simulator)
	logger.Info("Simulation finished",
		zap.Int("cycles", simulator.Cycles()),
		zap.Int("infected", simulator.InfectedNodesCount()),
		zap.Int("edges", stats.Edges),
		zap.Float64("meanDegree", stats.MeanDegree),
		zap.Int("components", stats.Components))

	simulator.Nodes().Each(func(node *gossip.Node[string]) bool {
		fmt.Println(node)
		return true
	})
	fmt.Printf(
		"%d/%d nodes infected after %d cycles. Degrees in [%d, %d], mean %.2f, %d strongly connected components\n",
		simulator.InfectedNodesCount(), simulator.NodesCount(), simulator.Cycles(),
		stats.MinDegree, stats.MaxDegree, stats.MeanDegree, stats.Components)
}
