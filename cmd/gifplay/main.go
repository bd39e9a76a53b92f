// Package main provides the CLI entry point for gifplay.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/gifplay/pkg/adapters/filesink"
	"github.com/user/gifplay/pkg/adapters/gifdecoder"
	"github.com/user/gifplay/pkg/adapters/ggrenderer"
	"github.com/user/gifplay/pkg/adapters/logger"
	"github.com/user/gifplay/pkg/adapters/nullsink"
	"github.com/user/gifplay/pkg/adapters/osfilesystem"
	"github.com/user/gifplay/pkg/config"
	"github.com/user/gifplay/pkg/gifplay"
	"github.com/user/gifplay/pkg/playback"
	"github.com/user/gifplay/pkg/ports"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:  "gifplay",
		Usage: l10n.T("Inspect, export and play animated images"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: l10n.T("Path to a YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Commands: []*cli.Command{
			infoCommand(),
			exportCommand(),
			playCommand(),
			versionCommand(),
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges the config file (if any) with global CLI flags.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg, nil
}

func newLogger(c *cli.Context, cfg config.Config) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
}

// newPlayer wires a player with the standard adapters.
func newPlayer(cfg config.Config, log ports.Logger) (*gifplay.Player, *ggrenderer.Renderer, *osfilesystem.FileSystem, error) {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	decoder := gifdecoder.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, nil, nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	return gifplay.New(decoder, renderer, sink, log), renderer, fs, nil
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     l10n.T("Print the timeline of an animated image"),
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("info: expected exactly one FILE argument")
			}
			path := c.Args().First()

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log := newLogger(c, cfg)

			player, _, fs, err := newPlayer(cfg, log)
			if err != nil {
				return err
			}

			data, err := fs.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			tl, err := player.Load(c.Context, path, data)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			canvas := tl.Frames[0].Image.Bounds()
			fmt.Printf("%s\n", path)
			fmt.Printf("  canvas:   %dx%d\n", canvas.Dx(), canvas.Dy())
			fmt.Printf("  frames:   %d\n", tl.FrameCount())
			fmt.Printf("  duration: %s\n", tl.TotalDuration)
			if tl.LoopCount == 0 {
				fmt.Printf("  loops:    forever\n")
			} else {
				fmt.Printf("  loops:    %d\n", tl.LoopCount)
			}
			for i, f := range tl.Frames {
				fmt.Printf("  frame %3d  start %8s\n", i, f.Start)
			}
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     l10n.T("Write each composited frame as a still image"),
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    l10n.T("Output directory"),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: l10n.T("Still image format (png or jpeg)"),
			},
			&cli.IntFlag{
				Name:  "quality",
				Usage: l10n.T("JPEG quality (1-100)"),
			},
			&cli.Float64Flag{
				Name:  "scale",
				Usage: l10n.T("Scale factor for exported frames"),
			},
			&cli.StringFlag{
				Name:  "background",
				Usage: l10n.T("Flatten transparency onto a hex color (e.g. #ffffff)"),
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: l10n.T("Number of parallel encode workers"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   l10n.T("Enable debug output"),
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("export: expected exactly one FILE argument")
			}
			path := c.Args().First()

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if c.IsSet("format") {
				cfg.Format = c.String("format")
			}
			if c.IsSet("quality") {
				cfg.Quality = c.Int("quality")
			}
			if c.IsSet("scale") {
				cfg.Scale = c.Float64("scale")
			}
			if c.IsSet("background") {
				cfg.Background = c.String("background")
			}
			if c.IsSet("workers") {
				cfg.Workers = c.Int("workers")
			}
			if c.Bool("debug") {
				cfg.Debug = true
			}

			log := newLogger(c, cfg)
			player, renderer, fs, err := newPlayer(cfg, log)
			if err != nil {
				return err
			}

			data, err := fs.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			tl, err := player.Load(c.Context, path, data)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			outDir := c.String("output")
			exporter := gifplay.NewExporter(renderer, fs, log)
			if err := exporter.Export(c.Context, tl, outDir, cfg.ToExportConfig()); err != nil {
				log.Error(l10n.F("Failed to export: %s", err))
				return err
			}

			log.Info(l10n.F("Exported %d frames to %s", tl.FrameCount(), outDir))
			return nil
		},
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     l10n.T("Drive playback with a wall clock and log frame changes"),
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "speed",
				Usage: l10n.T("Speed ratio (mutually exclusive with --duration)"),
			},
			&cli.DurationFlag{
				Name:  "duration",
				Usage: l10n.T("Explicit duration for one cycle (mutually exclusive with --speed)"),
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("play: expected exactly one FILE argument")
			}
			path := c.Args().First()

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log := newLogger(c, cfg)

			player, _, fs, err := newPlayer(cfg, log)
			if err != nil {
				return err
			}

			data, err := fs.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			opts := playback.Options{AutoStart: true}
			if c.IsSet("speed") {
				speed := c.Float64("speed")
				opts.SpeedRatio = &speed
			}
			if c.IsSet("duration") {
				duration := c.Duration("duration")
				opts.Duration = &duration
			}

			const consumer = "cli"
			ctrl, err := player.OpenController(c.Context, path, data, consumer, opts)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer ctrl.Dispose()

			ctrl.OnFrameChanged(func(index int) {
				log.Info(l10n.F("Frame %d/%d", index+1, ctrl.FrameCount()))
			})

			done := make(chan struct{})
			ctrl.OnCompleted(func() {
				close(done)
			})

			// The host owns the clock; the controller only consumes ticks.
			ticker := time.NewTicker(16 * time.Millisecond)
			defer ticker.Stop()

			last := time.Now()
			for {
				select {
				case <-c.Context.Done():
					log.Warn(l10n.T("Playback interrupted"))
					return nil
				case <-done:
					log.Info(l10n.T("Playback completed"))
					return nil
				case now := <-ticker.C:
					ctrl.Advance(now.Sub(last))
					last = now
				}
			}
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.F("gifplay version %s", version))
			return nil
		},
	}
}
