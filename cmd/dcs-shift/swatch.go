package main

import (
	"fmt"
	"io"

	gdcs "github.com/yzigangirova/dcs-go"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type swatch struct {
	name    string
	r, g, b uint8
}

var swatches = []swatch{
	{"red", 255, 0, 0},
	{"green", 0, 255, 0},
	{"blue", 0, 0, 255},
	{"white", 255, 255, 255},
	{"grey", 128, 128, 128},
	{"orange", 255, 165, 0},
	{"teal", 0, 128, 128},
}

func newSwatchCmd(st *cliState) *cobra.Command {
	var truecolor bool
	cmd := &cobra.Command{
		Use:   "swatch",
		Short: "Show reference colours before and after the shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newComposer(st.cfg)
			if err != nil {
				return err
			}
			var opts []termenv.OutputOption
			if truecolor {
				opts = append(opts, termenv.WithProfile(termenv.TrueColor))
			}
			out := termenv.NewOutput(cmd.OutOrStdout(), opts...)
			return writeSwatches(out, c, st.cfg.Velocity)
		},
	}
	cmd.Flags().BoolVar(&truecolor, "truecolor", false, "force 24-bit colour even when not on a terminal")
	return cmd
}

// shiftSwatches returns the shifted value of every swatch, packed RGBA.
func shiftSwatches(c *gdcs.Composer, v float64) ([]byte, error) {
	buf := make([]byte, 0, 4*len(swatches))
	for _, s := range swatches {
		buf = append(buf, s.r, s.g, s.b, 0xff)
	}
	if err := c.Shift(buf, len(swatches), 1, v, 1); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeSwatches(out *termenv.Output, c *gdcs.Composer, v float64) error {
	shifted, err := shiftSwatches(c, v)
	if err != nil {
		return err
	}
	var w io.Writer = out
	fmt.Fprintf(w, "velocity %g c\n", v)
	for i, s := range swatches {
		p := shifted[4*i : 4*i+4]
		before := out.String("      ").Background(out.Color(hex(s.r, s.g, s.b)))
		after := out.String("      ").Background(out.Color(hex(p[0], p[1], p[2])))
		fmt.Fprintf(w, "%-7s %s -> %s  %s -> %s\n", s.name, before, after,
			hex(s.r, s.g, s.b), hex(p[0], p[1], p[2]))
	}
	return nil
}

func hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
