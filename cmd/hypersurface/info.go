package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hypersurface/adjacency"
	"github.com/katalvlaran/hypersurface/skeleton"
)

// dimStat summarizes the faces of one dimension.
type dimStat struct {
	Dim    int `json:"dim" yaml:"dim"`
	Faces  int `json:"faces" yaml:"faces"`
	Points int `json:"points" yaml:"points"`
}

// infoResult describes a skeleton.
type infoResult struct {
	Axes         int       `json:"axes" yaml:"axes"`
	Side         int       `json:"side" yaml:"side"`
	MaxDim       int       `json:"max_dim" yaml:"max_dim"`
	Faces        int       `json:"faces" yaml:"faces"`
	Points       int       `json:"points" yaml:"points"`
	Volume       float64   `json:"volume" yaml:"volume"`
	Arcs         int       `json:"arcs" yaml:"arcs"`
	CornerRadius int       `json:"corner_radius" yaml:"corner_radius"`
	ByDim        []dimStat `json:"by_dim" yaml:"by_dim"`
}

func (r infoResult) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "axes\t%d\n", r.Axes)
	fmt.Fprintf(tw, "side\t%d\n", r.Side)
	fmt.Fprintf(tw, "max dim\t%d\n", r.MaxDim)
	fmt.Fprintf(tw, "faces\t%d\n", r.Faces)
	fmt.Fprintf(tw, "points\t%d\n", r.Points)
	fmt.Fprintf(tw, "volume\t%.0f\n", r.Volume)
	fmt.Fprintf(tw, "arcs\t%d\n", r.Arcs)
	fmt.Fprintf(tw, "corner radius\t%d\n", r.CornerRadius)
	for _, d := range r.ByDim {
		fmt.Fprintf(tw, "dim %d\t%d faces, %d points\n", d.Dim, d.Faces, d.Points)
	}

	return tw.Flush()
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print face, point and adjacency counts of a skeleton",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.cfg.meta()
			if err != nil {
				return err
			}
			cache := adjacency.New(m)
			res := infoResult{
				Axes:   m.Axes(),
				Side:   m.Side(),
				MaxDim: m.MaxDim(),
				Faces:  m.FaceCount(),
				Points: m.Len(),
				Volume: math.Pow(float64(m.Side()+2), float64(m.Axes())),
				Arcs:   cache.Arcs(),
				ByDim:  make([]dimStat, m.MaxDim()+1),
			}
			for k := range res.ByDim {
				res.ByDim[k].Dim = k
			}
			for _, f := range m.Faces() {
				res.ByDim[f.Dim()].Faces++
				res.ByDim[f.Dim()].Points += f.Size
			}
			if cache.Len() > 0 {
				res.CornerRadius, _ = cache.Eccentricity(0)
			}
			a.logger.Info("skeleton described",
				zap.Stringer("meta", m),
				zap.Int("points", res.Points),
				zap.Int("arcs", res.Arcs))

			return a.render(res)
		},
	}
}

// faceRow is one face in the faces listing.
type faceRow struct {
	Key     string `json:"key" yaml:"key"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Free    []int  `json:"free" yaml:"free,flow"`
	Size    int    `json:"size" yaml:"size"`
}

type faceList []faceRow

func (l faceList) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tPATTERN\tFREE\tSIZE")
	for _, r := range l {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%d\n", r.Key, r.Pattern, r.Free, r.Size)
	}

	return tw.Flush()
}

func newFaceRow(f skeleton.Face) faceRow {
	return faceRow{
		Key:     fmt.Sprintf("%#x", uint64(f.Key)),
		Pattern: f.Pattern.String(),
		Free:    f.Free,
		Size:    f.Size,
	}
}

func (a *app) facesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faces",
		Short: "List every face with its pin pattern and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.cfg.meta()
			if err != nil {
				return err
			}
			faces := m.Faces()
			rows := make(faceList, len(faces))
			for i, f := range faces {
				rows[i] = newFaceRow(f)
			}
			a.logger.Debug("faces listed", zap.Int("faces", len(rows)))

			return a.render(rows)
		},
	}
}
