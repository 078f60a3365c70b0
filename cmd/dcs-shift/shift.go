package main

import (
	"errors"
	"time"

	gdcs "github.com/yzigangirova/dcs-go"
	"github.com/yzigangirova/dcs-go/imgfile"

	"github.com/spf13/cobra"
)

func newShiftCmd(st *cliState) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Shift a single image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in == "" || out == "" {
				return errors.New("shift: --in and --out are required")
			}
			c, err := newComposer(st.cfg)
			if err != nil {
				return err
			}
			img, err := imgfile.Open(in)
			if err != nil {
				return err
			}
			px := imgfile.ToNRGBA(img)

			start := time.Now()
			if err := c.ShiftImage(px, st.cfg.Velocity, st.cfg.Workers); err != nil {
				return err
			}
			st.log.Info("shifted", "in", in, "velocity", st.cfg.Velocity,
				"pixels", px.Rect.Dx()*px.Rect.Dy(), "elapsed", time.Since(start))
			return imgfile.Save(out, px, st.cfg.Quality)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input image")
	cmd.Flags().StringVar(&out, "out", "", "output image, format from extension")
	return cmd
}

// newComposer validates the configured model and prepares its stationary
// inverse once.
func newComposer(cfg Config) (*gdcs.Composer, error) {
	m, err := cfg.Model.Build()
	if err != nil {
		return nil, err
	}
	return gdcs.NewComposer(m)
}
