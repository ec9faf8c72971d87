package app

import (
	"io"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/diegok/mousepong/internal/config"
	"github.com/diegok/mousepong/internal/game"
	"github.com/diegok/mousepong/internal/ui"
)

// TickRate is the display refresh rate the frame driver runs at
const TickRate = 60

// App is the frame driver: it owns the game state and runs exactly one
// update and one render per tick.
type App struct {
	cfg        *config.Config
	screen     *ui.Screen
	renderer   *ui.Renderer
	game       *game.GameState
	scoreboard *ui.Scoreboard

	logFile  io.Closer
	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and starts the game.
func (a *App) Run() error {
	if err := a.setupLogging(); err != nil {
		return err
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.closeLog()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.attach(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-a.sigChan:
			log.WithField("signal", sig.String()).Info("received signal")
			a.stop()
		case <-a.quit:
		}
	}()

	w, h := screen.Size()
	log.WithFields(log.Fields{
		"surface": [2]int{a.cfg.Width, a.cfg.Height},
		"screen":  [2]int{w, h},
		"seed":    a.cfg.Seed,
	}).Info("starting game")

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// attach builds the game and the render side on top of a screen
func (a *App) attach(screen *ui.Screen) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, a.cfg.Theme)
	a.scoreboard = ui.NewScoreboard()

	a.game = game.NewGameState(a.cfg.Width, a.cfg.Height, a.newRand())
	a.game.SetColors(a.cfg.Theme.LeftPaddle, a.cfg.Theme.RightPaddle, a.cfg.Theme.Ball)
	a.game.OnScore(a.onScore)
}

func (a *App) newRand() *rand.Rand {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// setupLogging sends logs to the configured file; the terminal belongs
// to the game so without a file they are discarded.
func (a *App) setupLogging() error {
	log.SetLevel(a.cfg.LogLevel)
	if a.cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to open log file %s", a.cfg.LogFile)
	}
	log.SetOutput(f)
	a.logFile = f
	return nil
}

// mainLoop is the main event loop. Input events and frame ticks are
// handled on this goroutine only, so the game state has a single writer.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.step()
		}
	}
}

// step runs one update followed by one render
func (a *App) step() {
	ev := a.game.Update()

	if ev.Has(game.EventPaddleHit) {
		log.WithFields(log.Fields{
			"tick": a.game.Tick,
			"vx":   a.game.Ball.VX,
			"vy":   a.game.Ball.VY,
		}).Debug("paddle hit")
	}
	if ev.Has(game.EventWallBounce) {
		log.WithField("tick", a.game.Tick).Debug("wall bounce")
	}

	a.scoreboard.Tick()
	a.renderer.RenderGame(a.game.Snapshot(), a.scoreboard)
}

// onScore is the score display notification
func (a *App) onScore(left, right int) {
	a.scoreboard.SetScore(left, right)
	log.WithFields(log.Fields{
		"left":  left,
		"right": right,
		"tick":  a.game.Tick,
	}).Info("point scored")
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if dy := ui.KeyToNudge(ev.Key(), ev.Rune()); dy != 0 {
			a.game.NudgePlayer(dy)
		}

	case *tcell.EventMouse:
		vp := a.renderer.Viewport(a.game.Snapshot())
		a.game.MovePlayer(ui.PointerToSurfaceY(ev, vp))

	case *tcell.EventResize:
		w, h := ev.Size()
		log.WithFields(log.Fields{"cols": w, "rows": h}).Debug("terminal resized")
		a.screen.Clear()
		a.renderer.RenderGame(a.game.Snapshot(), a.scoreboard)
	}

	return false
}

// stop releases every goroutine waiting on the quit channel
func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.stop()

	log.WithFields(log.Fields{
		"left":  a.game.LeftScore,
		"right": a.game.RightScore,
		"ticks": a.game.Tick,
	}).Info("game finished")

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	signal.Stop(a.sigChan)

	a.closeLog()
}

func (a *App) closeLog() {
	if a.logFile != nil {
		log.SetOutput(io.Discard)
		a.logFile.Close()
		a.logFile = nil
	}
}
