package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/viz"
	"github.com/san-kum/plexus/internal/window"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	count      int
	seed       int64
	frameRate  int
	theme      string
	debug      bool

	// record
	recordOut string
	frames    int
	width     int
	height    int

	// config
	configOut string

	// bench
	benchSteps int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "plexus",
		Short:        "interactive particle network background",
		SilenceUsage: true,
		RunE:         runTerminal,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&count, "count", 0, "number of particles")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", 0, "frame rate")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "terminal theme")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write diagnostics to debug.log")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return window.Run(cfg)
		},
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render frames headless to a GIF or SVG",
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVarP(&recordOut, "out", "o", "plexus.gif", "output file (.gif or .svg)")
	recordCmd.Flags().IntVar(&frames, "frames", 120, "number of frames")
	recordCmd.Flags().IntVar(&width, "width", 800, "surface width")
	recordCmd.Flags().IntVar(&height, "height", 600, "surface height")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare quadratic and grid connection queries",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchSteps, "steps", 200, "steps per particle count")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "write the effective configuration as yaml",
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVarP(&configOut, "out", "o", "", "destination (default ~/.config/plexus/config.yaml)")

	rootCmd.AddCommand(windowCmd, recordCmd, benchCmd, presetsCmd, configCmd)
	return rootCmd
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if debug {
		f, err := tea.LogToFile("debug.log", "plexus")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	return viz.Run(cfg)
}

// loadConfig layers the config file, the preset and explicit flags over
// DefaultConfig, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	path := configFile
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		if err := config.ApplyPreset(cfg, preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Particles.Count = count
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Render.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := configOut
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
