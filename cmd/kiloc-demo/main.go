package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/kiloc/canvas"
	"github.com/lixenwraith/kiloc/config"
	"github.com/lixenwraith/kiloc/logger"
	"github.com/lixenwraith/kiloc/render"
	"github.com/lixenwraith/kiloc/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default ~/.kiloc/config.toml)")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	logFlag    = flag.String("log", "", "Log file path (overrides config)")
	onceFlag   = flag.Bool("once", false, "Print one frame as plain text and exit")
	fpsFlag    = flag.Int("fps", 10, "Frames per second")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mKILOC CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *colorFlag != "" {
		cfg.Display.Color = *colorFlag
	}
	if *logFlag != "" {
		cfg.Log.Path = *logFlag
	}

	if cfg.Log.Path != "" {
		closer, path, err := logger.SetupFile(cfg.Log.Path, cfg.Log.Level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: %v\n", err)
			os.Exit(1)
		}
		defer closer.Close()
		logger.Named("main").WithField("path", path).Info("logging started")
	}

	if *onceFlag {
		if err := printOnce(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// printOnce composes a single frame and writes it as text, no terminal control
func printOnce(cfg config.Config) error {
	d, err := newDemo(cfg)
	if err != nil {
		return err
	}
	r, err := render.New(terminal.NewMemory(cfg.Canvas.MaxWidth, cfg.Canvas.MaxHeight), cfg.Bounds(), d.tree)
	if err != nil {
		return err
	}
	d.tick(time.Now())
	fmt.Println(r.Snapshot())
	return nil
}

func run(cfg config.Config) error {
	log := logger.Named("main")

	tty := terminal.NewTTY(os.Stdin, os.Stdout)
	if err := tty.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer tty.Fini()

	d, err := newDemo(cfg)
	if err != nil {
		return err
	}

	r, err := render.New(tty, cfg.Bounds(), d.tree,
		render.WithLogger(logger.Named("render")),
		render.WithColorMode(cfg.ColorMode()),
		render.WithBackground(cfg.BackgroundStyle()),
		render.WithBorder(cfg.BorderStyle(), canvas.LineSingle),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go watchQuit(os.Stdin, cancel)
	resized := terminal.WatchResize(ctx)

	fps := max(*fpsFlag, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		d.tick(time.Now())
		st, err := r.Frame()
		if err != nil {
			return err
		}
		if st.Resized {
			w, h := r.TermSize()
			log.WithField("size", fmt.Sprintf("%dx%d", w, h)).Debug("full repaint")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-resized:
		case <-ticker.C:
		}
	}
}

// watchQuit cancels on q, Ctrl-C or EOF; raw mode turns off signal generation
func watchQuit(in *os.File, cancel context.CancelFunc) {
	defer cancel()
	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			if b == 'q' || b == 0x03 {
				return
			}
		}
	}
}
