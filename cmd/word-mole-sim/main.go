// Command word-mole-sim plays rounds headlessly with a scripted player and prints each result as JSON
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/word-mole/config"
	"github.com/lixenwraith/word-mole/core"
	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/status"
)

var (
	configFlag   = flag.String("config", "", "Path to a YAML settings file")
	envFlag      = flag.String("env", ".env", "Path to a dotenv file, ignored when missing")
	categoryFlag = flag.String("category", "", "Category id, defaults to the configured category")
	roundsFlag   = flag.Int("rounds", 1, "Number of rounds to play")
	seedFlag     = flag.Uint64("seed", 0, "Seed of the first round, 0 uses the configured seed or the clock")
	accuracyFlag = flag.Float64("accuracy", 0.9, "Probability of a right decision per mole")
	reactionFlag = flag.Duration("reaction", 400*time.Millisecond, "Bot reaction time")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/word-mole-sim.log")
)

func main() {
	flag.Parse()

	if logFile := core.SetupLogging("word-mole-sim", *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	bank, err := cfg.WordBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load word bank: %v\n", err)
		os.Exit(1)
	}

	category := *categoryFlag
	if category == "" {
		category = cfg.Category
	}
	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	reg := status.NewRegistry()
	rc := cfg.RoundConfig(1)
	results := make([]round.Result, *roundsFlag)

	// Rounds are independent, each runs on its own logical clock
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range results {
		bc := botConfig{
			Category: category,
			Seed:     seed + uint64(i),
			Accuracy: *accuracyFlag,
			Reaction: *reactionFlag,
			Trace:    *debugFlag,
		}
		g.Go(func() error {
			res, err := simulate(bank, rc, bc, reg)
			if err != nil {
				return fmt.Errorf("round %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write result: %v\n", err)
			os.Exit(1)
		}
	}
	log.Printf("sim: %v", reg.Snapshot())
}
