// Command sinkhole is a terminal demo of the absorption engine: steer the hole over a field of objects and swallow them
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sinkhole/audio"
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/feed"
	"github.com/lixenwraith/sinkhole/parameter"
	"github.com/lixenwraith/sinkhole/render"
)

var (
	configPath  = flag.String("config", "", "YAML tuning file (defaults when empty)")
	listenAddr  = flag.String("listen", "", "Serve the websocket event feed on this address, e.g. :8080")
	seedFlag    = flag.Uint64("seed", 1, "Spawn layout seed")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	headless    = flag.Int("headless", 0, "Run N ticks without a terminal and print a summary")
	printConfig = flag.Bool("print-config", false, "Print the effective tuning as YAML and exit")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/sinkhole.log")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadTuning(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	logger := log.Default()

	if *headless > 0 {
		g := newGame(cfg, *seedFlag, logger, false)
		stop := startFeed(g, *listenAddr, logger)
		g.runTicks(*headless)
		stop()
		fmt.Println(g.summary())
		return
	}

	g := newGame(cfg, *seedFlag, logger, true)

	audioCfg := audio.LoadAudioConfig()
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		logger.Printf("[audio] initialization failed: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)
	g.subscribe(sounds)

	stop := startFeed(g, *listenAddr, logger)
	defer stop()

	if err := runTerminal(g, sounds); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func loadTuning(path string) (*config.Tuning, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// startFeed serves the event feed when addr is set; the returned func shuts it down
func startFeed(g *game, addr string, logger *log.Logger) func() {
	if addr == "" {
		return func() {}
	}

	hub := feed.NewHub(logger)
	g.subscribe(hub)

	srv := &http.Server{
		Addr:              addr,
		Handler:           feed.NewRouter(hub, parameter.FeedPath),
		ReadHeaderTimeout: parameter.FeedReadHeaderTimeout,
	}

	core.Go(func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("[feed] server stopped: %v", err)
		}
	})
	logger.Printf("[feed] serving %s%s", addr, parameter.FeedPath)

	return func() {
		hub.Close()
		srv.Close()
	}
}

// runTerminal owns the screen until the player quits
// The scheduler ticks on its own goroutine; this loop only forwards keys and draws the latest frame
func runTerminal(g *game, sounds *audio.SoundManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.OnCrash(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core.Go(func() {
		if err := g.sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			g.log.Printf("[sched] %v", err)
		}
	})

	events := make(chan tcell.Event, parameter.InputBufferSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	renderer := render.NewTerminalRenderer(screen.Size())
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if !handleKey(g, sounds, ev) {
					return nil
				}
			}
		case <-frameTicker.C:
			renderer.RenderFrame(screen, g.Frame())
		}
	}
}

// handleKey maps a key to a sim command; returns false to quit
func handleKey(g *game, sounds *audio.SoundManager, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		g.send(command{kind: cmdMove, dz: -1})
	case tcell.KeyDown:
		g.send(command{kind: cmdMove, dz: 1})
	case tcell.KeyLeft:
		g.send(command{kind: cmdMove, dx: -1})
	case tcell.KeyRight:
		g.send(command{kind: cmdMove, dx: 1})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'w':
			g.send(command{kind: cmdMove, dz: -1})
		case 's':
			g.send(command{kind: cmdMove, dz: 1})
		case 'a':
			g.send(command{kind: cmdMove, dx: -1})
		case 'd':
			g.send(command{kind: cmdMove, dx: 1})
		case 'm':
			g.send(command{kind: cmdMagnet})
		case 'g':
			g.send(command{kind: cmdBoost})
		case 'p':
			g.sched.SetPaused(!g.sched.Paused())
		case 'n':
			if sounds != nil {
				sounds.SetMuted(!sounds.Muted())
			}
		}
	}
	return true
}
