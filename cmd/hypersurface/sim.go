package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hypersurface/life"
	"github.com/katalvlaran/hypersurface/skeleton"
	"github.com/katalvlaran/hypersurface/wave"
)

// waveResult summarizes a wave run.
type waveResult struct {
	RunID   string  `json:"run_id" yaml:"run_id"`
	Meta    string  `json:"meta" yaml:"meta"`
	Impulse string  `json:"impulse" yaml:"impulse"`
	Steps   int     `json:"steps" yaml:"steps"`
	DT      float64 `json:"dt" yaml:"dt"`
	Energy  float64 `json:"energy" yaml:"energy"`
	Peak    float32 `json:"peak" yaml:"peak"`
}

func (r waveResult) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", r.RunID)
	fmt.Fprintf(tw, "skeleton\t%s\n", r.Meta)
	fmt.Fprintf(tw, "impulse\t%s\n", r.Impulse)
	fmt.Fprintf(tw, "steps\t%d\n", r.Steps)
	fmt.Fprintf(tw, "dt\t%g\n", r.DT)
	fmt.Fprintf(tw, "energy\t%g\n", r.Energy)
	fmt.Fprintf(tw, "peak\t%g\n", r.Peak)

	return tw.Flush()
}

// impulseAt resolves the --impulse coordinate, defaulting to the middle
// point of the last (highest-dimensional) face.
func impulseAt(m skeleton.Meta, arg string) (skeleton.Coord, error) {
	if arg == "" {
		faces := m.Faces()
		for i := len(faces) - 1; i >= 0; i-- {
			if faces[i].Size > 0 {
				return m.CoordAt(faces[i], faces[i].Size/2), nil
			}
		}
		return nil, fmt.Errorf("hypersurface: %v has no points", m)
	}
	c, err := skeleton.ParseCoord(arg)
	if err != nil {
		return nil, err
	}
	if !m.Valid(c) {
		return nil, fmt.Errorf("hypersurface: impulse %v is not a point of %v", c, m)
	}

	return c, nil
}

// runWave builds a simulation from the config and advances it cfg.Steps times.
func (a *app) runWave(runID string) (*wave.Sim, skeleton.Coord, error) {
	m, err := a.cfg.meta()
	if err != nil {
		return nil, nil, err
	}
	at, err := impulseAt(m, a.cfg.Impulse)
	if err != nil {
		return nil, nil, err
	}
	sim := wave.New(m)
	sim.Impulse(at, 1)
	a.logger.Info("wave started",
		zap.String("run_id", runID),
		zap.Stringer("meta", m),
		zap.Stringer("impulse", at),
		zap.Int("steps", a.cfg.Steps))

	dt := float32(a.cfg.DT)
	for i := 0; i < a.cfg.Steps; i++ {
		sim.Step(dt)
		if a.cfg.LogEvery > 0 && sim.Steps()%a.cfg.LogEvery == 0 {
			a.logger.Debug("wave step",
				zap.String("run_id", runID),
				zap.Int("step", sim.Steps()),
				zap.Float64("energy", sim.Energy()))
		}
	}

	return sim, at, nil
}

func (a *app) waveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wave",
		Short: "Propagate a unit impulse with the finite-difference wave scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := newRunID()
			sim, at, err := a.runWave(runID)
			if err != nil {
				return err
			}
			res := waveResult{
				RunID:   runID,
				Meta:    sim.Meta().String(),
				Impulse: at.String(),
				Steps:   sim.Steps(),
				DT:      a.cfg.DT,
				Energy:  sim.Energy(),
				Peak:    sim.Peak(),
			}
			a.logger.Info("wave finished", zap.String("run_id", runID), zap.Float64("energy", res.Energy))

			return a.render(res)
		},
	}
	addWaveFlags(cmd)

	return cmd
}

func addWaveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("steps", 100, "number of steps")
	f.Float64("dt", 0.01, "time step")
	f.String("impulse", "", `impulse coordinate, e.g. "(3,-,+)" (default: middle of the last face)`)
	f.Int("log-every", 0, "log energy every n steps at debug level (0: never)")
}

// lifeResult summarizes a life run.
type lifeResult struct {
	RunID      string `json:"run_id" yaml:"run_id"`
	Meta       string `json:"meta" yaml:"meta"`
	Seed       int64  `json:"seed" yaml:"seed"`
	Generation int    `json:"generation" yaml:"generation"`
	Alive      []int  `json:"alive" yaml:"alive,flow"`
	Clusters   int    `json:"clusters" yaml:"clusters"`
}

func (r lifeResult) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", r.RunID)
	fmt.Fprintf(tw, "skeleton\t%s\n", r.Meta)
	fmt.Fprintf(tw, "seed\t%d\n", r.Seed)
	fmt.Fprintf(tw, "generation\t%d\n", r.Generation)
	fmt.Fprintf(tw, "clusters\t%d\n", r.Clusters)
	for g, n := range r.Alive {
		fmt.Fprintf(tw, "gen %d\t%d alive\n", g, n)
	}

	return tw.Flush()
}

func (a *app) lifeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "life",
		Short: "Run B3/S23 life from a random board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.cfg.meta()
			if err != nil {
				return err
			}
			runID := newRunID()
			l := life.New(m, life.Conway)
			l.Reset(a.cfg.Seed)
			res := lifeResult{
				RunID: runID,
				Meta:  m.String(),
				Seed:  a.cfg.Seed,
				Alive: []int{l.Alive()},
			}
			a.logger.Info("life started", zap.String("run_id", runID), zap.Int64("seed", a.cfg.Seed))
			for i := 0; i < a.cfg.Steps; i++ {
				l.Step()
				res.Alive = append(res.Alive, l.Alive())
			}
			res.Generation = l.Generation()
			res.Clusters = l.Clusters()
			a.logger.Info("life finished",
				zap.String("run_id", runID),
				zap.Int("alive", l.Alive()),
				zap.Int("clusters", res.Clusters))

			return a.render(res)
		},
	}
	f := cmd.Flags()
	f.Int("steps", 100, "number of generations")
	f.Int64("seed", 1, "random seed of the initial board")

	return cmd
}

func (a *app) pointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Dump the wave field as a point cloud in [-1,1]^N",
		Long: `points runs the wave simulation like "wave" and writes every point as its
projected position followed by its value, one point per row.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := newRunID()
			sim, _, err := a.runWave(runID)
			if err != nil {
				return err
			}
			pts := sim.Points()
			if a.cfg.Format != formatCSV {
				return a.render(pointList(pts))
			}

			w := csv.NewWriter(a.out)
			rec := make([]string, sim.Meta().Axes()+1)
			for _, p := range pts {
				for i, x := range p.Pos {
					rec[i] = strconv.FormatFloat(float64(x), 'g', -1, 32)
				}
				rec[len(rec)-1] = strconv.FormatFloat(float64(p.Value), 'g', -1, 32)
				if err := w.Write(rec); err != nil {
					return err
				}
			}
			w.Flush()

			return w.Error()
		},
	}
	addWaveFlags(cmd)

	return cmd
}

type pointList []wave.Point

func (l pointList) writeText(w io.Writer) error {
	for _, p := range l {
		if _, err := fmt.Fprintln(w, p.Pos, p.Value); err != nil {
			return err
		}
	}

	return nil
}
