package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	v      *viper.Viper
	cfg    config
	logger *zap.Logger
	ownLog bool

	configFile string
}

// newApp returns an app writing results to out. A nil logger is replaced by
// a zap production logger when a command starts.
func newApp(out io.Writer, logger *zap.Logger) *app {
	return &app{out: out, v: newViper(), logger: logger}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hypersurface",
		Short: "Inspect and simulate on k-skeletons of hypercubes",
		Long: `hypersurface works on the lattice points lying on the faces of dimension
≤ k of an N-cube, e.g. the square faces of a 4-cube, without allocating the
enclosing N-volume.

Settings come from flags, HYPERSURFACE_* environment variables, or a YAML
config file given with --config, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.logger == nil {
				zc := zap.NewProductionConfig()
				if cfg.Verbose {
					zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				if a.logger, err = zc.Build(); err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.ownLog = true
			}
			a.logger.Debug("configuration loaded",
				zap.Int("axes", cfg.Axes),
				zap.Int("side", cfg.Side),
				zap.Int("max_dim", cfg.MaxDim),
				zap.String("format", cfg.Format))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ownLog {
				_ = a.logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.Int("axes", 3, "number of axes N")
	pf.Int("side", 16, "interior points per free axis")
	pf.Int("max-dim", 2, "highest face dimension k kept")
	pf.String("format", formatText, "output format: text, json, yaml (points also: csv)")
	pf.BoolP("verbose", "v", false, "debug logging")

	cmd.AddCommand(a.infoCmd(), a.facesCmd(), a.waveCmd(), a.lifeCmd(), a.pointsCmd())

	return cmd
}

// newRunID returns a time-ordered id for one simulation run.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}
