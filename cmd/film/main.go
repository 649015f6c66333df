// Package main provides the CLI entry point for film.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/instantfilm/pkg/adapters/exifreader"
	"github.com/user/instantfilm/pkg/adapters/filesink"
	"github.com/user/instantfilm/pkg/adapters/fontloader"
	"github.com/user/instantfilm/pkg/adapters/imagecodec"
	"github.com/user/instantfilm/pkg/adapters/logger"
	"github.com/user/instantfilm/pkg/adapters/osfilesystem"
	"github.com/user/instantfilm/pkg/config"
	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/logo"
	"github.com/user/instantfilm/pkg/orchestrator"
	"github.com/user/instantfilm/pkg/painter"
	"github.com/user/instantfilm/pkg/pipeline"
	"github.com/user/instantfilm/pkg/ports"
	"github.com/user/instantfilm/pkg/server"
	"github.com/user/instantfilm/pkg/stages/develop"
	"github.com/user/instantfilm/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Develop DevelopCmd `cmd:"" help:"${develop_help}"`
	Serve   ServeCmd   `cmd:"" help:"${serve_help}"`
	Version VersionCmd `cmd:"" help:"${version_help}"`
}

// CommonFlags are shared by the develop and serve commands.
// Pointer flags override the configuration file only when given.
type CommonFlags struct {
	Config string `help:"${config_help}" type:"path"`

	// Resources
	Font    *string `short:"f" group:"Resources" help:"${font_help}"`
	SubFont *string `group:"Resources" help:"${sub_font_help}"`
	Logos   *string `short:"l" group:"Resources" help:"${logos_help}"`

	// Encoding
	Quality      *int `short:"q" group:"Output" help:"${quality_help}"`
	NoAutoOrient bool `group:"Output" help:"${no_auto_orient_help}"`

	// Debug options
	Debug    bool    `short:"d" group:"Debug" help:"${debug_help}"`
	DebugDir *string `group:"Debug" help:"${debug_dir_help}"`

	// Logging options
	LogLevel *string `group:"Logging" help:"${log_level_help}"`
	Quiet    bool    `short:"Q" group:"Logging" help:"${quiet_help}"`
}

// DevelopCmd defines the develop subcommand.
type DevelopCmd struct {
	CommonFlags `embed:""`

	Input  *string `short:"i" group:"Input and Output" help:"${input_help}"`
	Output *string `short:"o" group:"Input and Output" help:"${output_help}"`

	Painter  *string `short:"p" group:"Painting" help:"${painter_help}"`
	Position *string `group:"Painting" help:"${position_help}"`
	Pad      bool    `group:"Painting" help:"${pad_help}"`

	Format  *string `group:"Output" help:"${format_help}"`
	Workers *int    `short:"w" group:"Output" help:"${workers_help}"`
	Summary string  `group:"Output" help:"${summary_help}"`
}

// ServeCmd defines the serve subcommand.
type ServeCmd struct {
	CommonFlags `embed:""`

	Port *int `group:"Server" help:"${port_help}"`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("film"),
		kong.Description(l10n.T("Frame photos as instant-film prints with their camera metadata.")),
		kong.UsageOnError(),
		helpVars(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the develop command.
func (cmd *DevelopCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}
	if cfg.Input == "" || cfg.Output == "" {
		return errors.New(l10n.T("input and output directories are required"))
	}

	log := newLogger(cfg)
	cfg.WarnFallbacks(log)
	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	stage, err := buildStage(cfg, fs, log)
	if err != nil {
		return err
	}

	opts := developOptions(cfg)
	orch := orchestrator.New(stage, fs, log, cfg.Workers)
	result, err := orch.Run(ctx, orchestrator.Config{
		InputDir:  cfg.Input,
		OutputDir: cfg.Output,
		Options:   opts,
	})
	if err != nil {
		return err
	}

	if cmd.Summary != "" {
		summary := buildSummary(cfg, result)
		markdown := summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		)
		writer := summarizer.NewWriter(summarizer.FormatterFor(cmd.Summary, markdown), fs)
		if err := writer.Write(cmd.Summary, summary); err != nil {
			log.Error("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", cmd.Summary)
		}
	}

	if result.Failed() > 0 {
		log.Warn("%d photos could not be developed", result.Failed())
	}
	return nil
}

// Run executes the serve command.
func (cmd *ServeCmd) Run() error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	if cmd.Port != nil {
		cfg.Server.Port = *cmd.Port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg)
	ctx, cancel := signalContext(log)
	defer cancel()

	stage, err := buildStage(cfg, osfilesystem.New(), log)
	if err != nil {
		return err
	}

	srv := server.New(stage, log, server.Options{
		Quality:        cfg.Quality,
		MaxUploadBytes: cfg.Server.MaxUploadMB << 20,
		MaxConcurrent:  cfg.Server.MaxConcurrent,
		RatePerMinute:  cfg.Server.RatePerMinute,
		Burst:          cfg.Server.Burst,
	})
	return srv.Run(ctx, ":"+strconv.Itoa(cfg.Server.Port))
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("film (Go) version %s", version))
	return nil
}

// loadConfig reads the configuration file, if any, and applies the common flags.
func (f *CommonFlags) loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if f.Config != "" {
		loaded, err := config.LoadFromFile(f.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if f.Font != nil {
		cfg.Font = *f.Font
	}
	if f.SubFont != nil {
		cfg.SubFont = *f.SubFont
	}
	if f.Logos != nil {
		cfg.Logos = *f.Logos
	}
	if f.Quality != nil {
		cfg.Quality = *f.Quality
	}
	if f.NoAutoOrient {
		cfg.AutoOrient = false
	}
	if f.Debug {
		cfg.Debug = true
	}
	if f.DebugDir != nil {
		cfg.DebugDir = *f.DebugDir
	}
	if f.LogLevel != nil {
		if err := cfg.LogLevel.UnmarshalText([]byte(*f.LogLevel)); err != nil {
			return cfg, err
		}
	}
	if f.Quiet {
		cfg.LogLevel = ports.LevelQuiet
	}
	return cfg, nil
}

func newLogger(cfg config.Config) ports.Logger {
	if cfg.LogLevel == ports.LevelQuiet {
		return logger.NewDiscard()
	}
	return logger.NewConsole(cfg.LogLevel)
}

// buildConfig merges the configuration file with the develop flags.
func (cmd *DevelopCmd) buildConfig() (config.Config, error) {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return cfg, err
	}

	if cmd.Input != nil {
		cfg.Input = *cmd.Input
	}
	if cmd.Output != nil {
		cfg.Output = *cmd.Output
	}
	if cmd.Painter != nil {
		cfg.Painter = *cmd.Painter
	}
	if cmd.Position != nil {
		cfg.Position = *cmd.Position
	}
	if cmd.Pad {
		cfg.Pad = true
	}
	if cmd.Format != nil {
		cfg.Format = *cmd.Format
	}
	if cmd.Workers != nil {
		cfg.Workers = *cmd.Workers
	}

	return cfg, cfg.Validate()
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// buildStage loads fonts, logos and theme and wires the develop stage.
func buildStage(cfg config.Config, fs ports.FileSystem, log ports.Logger) (*develop.Stage, error) {
	fonts := fontloader.New(fs)
	mainFont, err := fonts.Load(cfg.Font)
	if err != nil {
		log.Error("Failed to load font %s: %s", cfg.Font, err)
		return nil, fmt.Errorf("load font: %w", err)
	}
	// nil falls back to the main font
	subFont := fonts.LoadOptional(cfg.SubFont, log)

	var logos *logo.Cache
	if cfg.Logos != "" {
		logos, err = logo.Load(fs, cfg.Logos)
		if err != nil {
			log.Error("Failed to load logos from %s: %s", cfg.Logos, err)
			return nil, fmt.Errorf("load logos: %w", err)
		}
		log.Info("Loaded %d logos", logos.Len())
	}

	theme, err := cfg.Theme.ToTheme()
	if err != nil {
		return nil, err
	}

	var sink ports.DebugSink
	codec := imagecodec.New(cfg.AutoOrient)
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, codec)
	}

	resources := painter.Resources{
		Font:    mainFont,
		SubFont: subFont,
		Logos:   logos,
		Theme:   theme,
		Logger:  log.WithComponent("painter"),
	}
	return develop.NewStage(exifreader.New(), codec, resources, sink, log), nil
}

func developOptions(cfg config.Config) pipeline.DevelopOptions {
	return pipeline.DevelopOptions{
		Style:     cfg.Painter,
		Position:  film.ParsePosition(cfg.Position),
		PadAround: cfg.Pad,
		Format:    ports.ParseImageFormat(cfg.Format),
		Quality:   cfg.Quality,
	}
}

// buildSummary converts a batch result to a run summary.
func buildSummary(cfg config.Config, result orchestrator.RunResult) *summarizer.Summary {
	b := summarizer.NewBuilder().
		WithSettings(summarizer.Settings{
			InputDir:  result.InputDir,
			OutputDir: result.OutputDir,
			Painter:   cfg.Painter,
			Position:  cfg.Position,
			PadAround: cfg.Pad,
			Format:    result.Options.Format.String(),
			Quality:   result.Options.Quality,
			Workers:   cfg.Workers,
		}).
		WithDuration(result.DurationMs)

	for _, f := range result.Files {
		photo := summarizer.PhotoInfo{
			Source:     f.Source,
			Output:     f.Output,
			Camera:     film.CameraLine(f.Metadata),
			Lens:       film.LensLine(f.Metadata),
			Parameters: film.ParameterLine(f.Metadata),
			Width:      f.Width,
			Height:     f.Height,
			FileSize:   f.FileSize,
			DurationMs: f.DurationMs,
		}
		if f.Err != nil {
			photo.Error = f.Err.Error()
		}
		b.AddPhoto(photo)
	}
	return b.Build()
}
