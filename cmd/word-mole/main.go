package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/word-mole/audio"
	"github.com/lixenwraith/word-mole/config"
	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/core"
	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/input"
	"github.com/lixenwraith/word-mole/render"
	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/scene"
	"github.com/lixenwraith/word-mole/status"
)

var (
	configFlag   = flag.String("config", "", "Path to a YAML settings file")
	envFlag      = flag.String("env", ".env", "Path to a dotenv file, ignored when missing")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/word-mole.log and show metrics on the status line")
	touchFlag    = flag.Bool("touch", false, "Treat mouse clicks as touch input (proximity fallback enabled)")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	categoryFlag = flag.String("category", "", "Initially selected category id")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := core.SetupLogging("word-mole", *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *categoryFlag != "" {
		cfg.Category = *categoryFlag
	}

	bank, err := cfg.WordBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load word bank: %v\n", err)
		os.Exit(1)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load key bindings: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	sounds := audio.NewSoundManager(audio.FromSettings(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate, cfg.Audio.Volumes))
	if *muteFlag {
		sounds.SetMuted(true)
	}
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	reg := status.NewRegistry()
	loop := engine.NewLoop(engine.NewMonotonicTimeProvider(), constants.InboxSize)
	sched := loop.Scheduler()

	w, h := screen.Size()
	field := scene.NewField(sched, scene.DefaultCamera(float64(w), float64(h)), scene.MoleRadius)
	term := render.NewTerminal(screen, sched, field, reg)
	term.SetDebug(*debugFlag)

	ctrl := round.NewController(sched, field, term, sounds, bank, cfg.RoundConfig(constants.TerminalCellAspect), rng, reg)
	ctrl.OnRoundEnd(func(res round.Result) {
		log.Printf("game: round %s score=%d correct=%d incorrect=%d", res.RoundID, res.Score, res.Correct, res.Incorrect)
	})
	term.ShowMessage(constants.SelectPrompt, constants.PersistentMessage)

	source := input.Pointer
	if *touchFlag {
		source = input.Touch
	}

	done := make(chan struct{})
	var quitOnce sync.Once
	g := newGame(ctrl, term, screen, keys, sounds, source, bank.Categories(), func() {
		quitOnce.Do(func() { close(done) })
	})

	loop.Start()
	defer loop.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil once the screen is finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-done:
			return

		case ev := <-eventChan:
			if err := loop.Post(func() { g.handle(ev) }); err != nil {
				return
			}

		case <-frameTicker.C:
			if err := loop.Post(g.frame); err != nil {
				return
			}
		}
	}
}
