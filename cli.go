package main

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/cugone/LunarLander/components"
	"github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/fonts"
	"github.com/cugone/LunarLander/logging"
	"github.com/cugone/LunarLander/scenes"
	"github.com/cugone/LunarLander/systems"
	"github.com/cugone/LunarLander/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// appName names the per-user data directory.
const appName = "lunarlander"

var (
	flagOptions      string
	flagRotationMode string
	flagDebug        bool
	flagLogLevel     string
	flagSeed         int64
	flagLevel        string
)

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - land the module on the pad",
	Long: `Fly the lunar module down to the surface with the main engine and
attitude thrusters.

Controls:
  S        main engine (hold)
  Q / E    rotate left / right
  A / D    translate left / right
  L        toggle camera position lock
  Esc      quit

Debug:
  F1 debug render, F2 lock lander to mouse, F3 camera rotation lock,
  F camera position lock, F6 options window`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagOptions, "options", "", "Path to an options file (default: per-user data directory)")
	rootCmd.Flags().StringVar(&flagRotationMode, "rotation-mode", config.RotationDelta.String(), "Rotation input: delta or torque")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay visible")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for screen shake (0 = random)")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Embedded level to load")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.NewDefault(flagLogLevel)
	if err != nil {
		return err
	}

	mode, err := config.ParseRotationMode(flagRotationMode)
	if err != nil {
		return err
	}
	config.Lander.RotationMode = mode
	config.Debug.Render = flagDebug

	seed := flagSeed
	if seed == 0 {
		seed = rand.Int63()
	}

	fonts.LoadDefaultFonts()

	var scene *scenes.LanderScene
	optionsUI := ui.NewOptionsUI(
		func() *components.SettingsData { return scene.Settings() },
		func() error { return scene.SaveOptions() },
	)
	scene = scenes.NewLanderScene(scenes.Deps{
		UI:        optionsUI,
		Options:   newOptionsSource(flagOptions, logger),
		Rand:      rand.New(rand.NewSource(seed)),
		Logger:    logger,
		LevelPath: flagLevel,
	})
	game, err := NewGame(scene)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	opts := scene.Settings().Options
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(opts.WindowWidth, opts.WindowHeight)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	logger.Info("starting", "rotation-mode", mode, "seed", seed)
	return ebiten.RunGame(game)
}

// newOptionsSource prefers an explicit path, then the per-user data store,
// then a file in the working directory.
func newOptionsSource(path string, logger *log.Logger) systems.OptionsSource {
	if path != "" {
		return systems.FileOptionsSource{Path: path}
	}
	src, err := systems.NewDataStoreOptionsSource(appName)
	if err != nil {
		logger.Warn("could not open data store, using working directory", "error", err)
		return systems.FileOptionsSource{Path: config.OptionsFileName}
	}
	return src
}
