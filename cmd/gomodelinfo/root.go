package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodelinfo/internal/config"
	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/internal/log"
	"github.com/philipparndt/gomodelinfo/pkg/model"
	"github.com/philipparndt/gomodelinfo/version"
)

var (
	configPath string
	verbose    bool

	// Set by loadConfig before any subcommand runs
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gomodelinfo",
	Short: "Inspect uploaded OBJ and STL model files",
	Long: `gomodelinfo validates 3D model uploads and reports their vertex statistics.
It reads Wavefront OBJ, ASCII STL and binary STL files, detecting the format from
the file extension or by trying each parser in turn, and prints the bounding box,
centroid and dimensions of the model.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+config.DefaultConfigFile+" or "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		c.LogLevel = "debug"
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := log.New(cmd.ErrOrStderr(), log.Options{Level: c.LogLevel, JSON: c.LogJSON})
	if err != nil {
		return err
	}

	cfg, logger = c, l
	return nil
}

// newInspector builds an Inspector from the loaded config. A non-empty
// flagHint takes precedence over the configured hint
func newInspector(flagHint string) (*inspect.Inspector, error) {
	hintName := cfg.Hint
	if flagHint != "" {
		hintName = flagHint
	}
	hint, err := model.ParseHint(hintName)
	if err != nil {
		return nil, err
	}

	return inspect.New(inspect.Options{
		MaxFileSize:  cfg.MaxFileSize,
		MaxTriangles: cfg.MaxTriangles,
		Hint:         hint,
		Logger:       logger,
	}), nil
}
