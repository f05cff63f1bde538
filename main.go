package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/radialfield/internal/config"
	"github.com/iburimskiy/radialfield/internal/field"
	"github.com/iburimskiy/radialfield/internal/game"
	"github.com/iburimskiy/radialfield/internal/tui"
)

var (
	configFile   string
	seed         int64
	depth        int
	mute         bool
	chooseConfig bool
	logFile      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "radialfield",
		Short:         "concentric rings of spheres you can select and rotate",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "colour seed (0 = time based)")
	rootCmd.PersistentFlags().IntVar(&depth, "depth", 0, "number of rings (overrides config)")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "start without sound")
	rootCmd.Flags().BoolVar(&chooseConfig, "choose-config", false, "pick the config file in a dialog")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the field in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&mute, "mute", false, "start without sound")
	guiCmd.Flags().BoolVar(&chooseConfig, "choose-config", false, "pick the config file in a dialog")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "draw the field in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg, logFile)
		},
	}
	tuiCmd.Flags().StringVar(&logFile, "log", "", "write log output to this file")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "print ring radii and sphere counts",
		Args:  cobra.NoArgs,
		RunE:  printLayout,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "radialfield.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, layoutCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "radialfield: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if depth != 0 {
		cfg.Depth = depth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	if chooseConfig {
		path, err := game.ChooseConfig()
		if err != nil {
			return err
		}
		if path != "" {
			configFile = path
		}
	}

	cfg, err := loadConfig()
	if err == nil {
		err = game.Run(cfg, mute)
	}
	if err != nil && chooseConfig {
		game.ShowError(err)
	}
	return err
}

func printLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RING\tRADIUS\tSPHERES\tSTEP\tINNER\tOUTER")
	total := 0
	for _, p := range field.Plan(cfg.Depth, cfg.Width, cfg.CircleWidth) {
		inner, outer := field.Boundaries(p.Index, cfg.Width)
		if p.Index == 0 {
			inner = 0
		}
		fmt.Fprintf(w, "%d\t%.2f\t%d\t%.1f°\t%.0fpx\t%.0fpx\n",
			p.Index, p.Radius, p.Count, p.Step*180/math.Pi, inner*cfg.UnitPx, outer*cfg.UnitPx)
		total += p.Count
	}
	w.Flush()

	fmt.Printf("\n%d spheres on %d rings\n", total, cfg.Depth)
	return nil
}
