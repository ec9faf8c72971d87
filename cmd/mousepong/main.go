package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/diegok/mousepong/internal/app"
	"github.com/diegok/mousepong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if cfg.ProfileDir != "" {
		// tcell owns the terminal, so keep the profiler quiet
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfileDir), profile.Quiet).Stop()
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  mousepong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintf(os.Stderr, "  --width <n>          Court width (default: %d)\n", config.DefaultWidth)
	fmt.Fprintf(os.Stderr, "  --height <n>         Court height (default: %d)\n", config.DefaultHeight)
	fmt.Fprintln(os.Stderr, "  --seed <n>           Random seed for serves")
	fmt.Fprintln(os.Stderr, "  --theme <file>       YAML color theme")
	fmt.Fprintln(os.Stderr, "  --log <file>         Write logs to file")
	fmt.Fprintln(os.Stderr, "  --log-level <level>  debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "  --cpuprofile <dir>   Write a CPU profile into dir")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Move the mouse up and down to steer the left paddle.")
	fmt.Fprintln(os.Stderr, "  Arrow keys or w/s nudge it, q or Esc quits.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  mousepong")
	fmt.Fprintln(os.Stderr, "  mousepong --theme themes/classic.yaml --log pong.log --log-level debug")
}
