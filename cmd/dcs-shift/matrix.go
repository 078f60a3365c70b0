package main

import (
	"fmt"
	"io"

	gdcs "github.com/yzigangirova/dcs-go"

	"github.com/spf13/cobra"
)

func newMatrixCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the composed transform for --velocity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newComposer(st.cfg)
			if err != nil {
				return err
			}
			return writeMatrixReport(cmd.OutOrStdout(), c, st.cfg.Velocity)
		},
	}
}

func writeMatrixReport(w io.Writer, c *gdcs.Composer, v float64) error {
	t, err := c.Transform(v)
	if err != nil {
		return err
	}
	m := c.Model()
	peaks, err := m.ApparentPeaks(v)
	if err != nil {
		return err
	}
	stationary := c.Stationary()

	fmt.Fprintf(w, "velocity        %g c (doppler factor %.6f)\n", v, gdcs.DopplerFactor(v))
	fmt.Fprintf(w, "apparent peaks  R %.2f nm  G %.2f nm  B %.2f nm\n", peaks[0], peaks[1], peaks[2])
	fmt.Fprintf(w, "stationary det  %.6f\n", stationary.Det())
	fmt.Fprintln(w, "stationary integration matrix:")
	writeMatrix(w, stationary)
	fmt.Fprintln(w, "linear sRGB transform:")
	writeMatrix(w, t)
	fmt.Fprintf(w, "identity        %v\n", t.IsIdentity(1e-9))
	return nil
}

func writeMatrix(w io.Writer, t gdcs.Transformer) {
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "  [%12.6f %12.6f %12.6f]\n", t.V[i].N[0], t.V[i].N[1], t.V[i].N[2])
	}
}
