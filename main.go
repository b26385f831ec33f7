// ABOUTME: Entry point for the Halo audio visualizer
// ABOUTME: Parses CLI flags, opens the audio source and runs the selected presenter
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/halo/internal/app"
	"github.com/harperreed/halo/internal/ui"
	"github.com/harperreed/halo/internal/version"
	"github.com/harperreed/halo/internal/window"
	"github.com/harperreed/halo/pkg/audio/capture"
	"github.com/harperreed/halo/pkg/render"
)

var (
	input       = flag.String("input", "loopback", "Audio input: loopback, tone, or path to an .mp3, .flac or .wav file")
	device      = flag.String("device", "", "Capture device name override (substring match)")
	width       = flag.Int("width", 1080, "Initial window width")
	height      = flag.Int("height", 500, "Initial window height")
	fps         = flag.Int("fps", 60, "Frame rate")
	useTUI      = flag.Bool("tui", false, "Render in the terminal instead of a window")
	headless    = flag.Bool("headless", false, "Run without any display")
	ticks       = flag.Uint64("ticks", 0, "Stop after this many ticks in headless mode (0 = until interrupted)")
	particles   = flag.Bool("particles", false, "Spawn particles on strong bass pulses")
	logFile     = flag.String("log-file", "", "Also write logs to this file")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up logging
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer func() { _ = f.Close() }()

		if *useTUI {
			// TUI mode: log only to file
			log.SetOutput(f)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	} else if *useTUI {
		log.SetOutput(io.Discard)
	}

	config := app.DefaultConfig()
	config.Width = *width
	config.Height = *height
	config.FPS = *fps
	config.Particles = *particles

	captureConfig := capture.DefaultConfig()
	captureConfig.FrameSize = config.FrameSize
	captureConfig.Device = *device

	src, err := openSource(*input, captureConfig)
	if err != nil {
		if errors.Is(err, capture.ErrDeviceInit) || errors.Is(err, capture.ErrNoDevice) {
			log.Fatalf("Audio device unavailable: %v", err)
		}
		log.Fatalf("Failed to open input: %v", err)
	}

	log.Printf("Starting %s", version.String())
	log.Printf("Audio source: %s (%dHz, %d channels)", src.Name(), src.SampleRate(), src.Channels())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = run(ctx, config, src)
	stop()

	if closeErr := src.Close(); closeErr != nil {
		log.Printf("Warning: error closing audio source: %v", closeErr)
	}

	if err != nil {
		log.Printf("Visualizer stopped with error: %v", err)
		os.Exit(1)
	}
	log.Printf("Visualizer stopped")
}

// run drives the loop with the presenter chosen on the command line
func run(ctx context.Context, config app.Config, src capture.Source) error {
	switch {
	case *headless:
		loop := app.NewLoop(config, src, render.NewHeadless)
		return app.Run(ctx, loop, nil, *ticks)
	case *useTUI:
		loop := app.NewLoop(config, src, render.NewHeadless)
		return ui.Run(ctx, loop, config.FPS)
	default:
		loop := app.NewLoop(config, src, window.NewCanvas)
		return window.Run(ctx, loop, config.Width, config.Height, config.FPS)
	}
}

// openSource opens the input named on the command line
func openSource(input string, cfg capture.Config) (capture.Source, error) {
	switch input {
	case "", "loopback":
		return capture.OpenLoopback(cfg)
	case "tone":
		return capture.NewToneSource(440, cfg), nil
	default:
		return capture.OpenFile(input, cfg)
	}
}
