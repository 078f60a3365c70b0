package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	gdcs "github.com/yzigangirova/dcs-go"
	"github.com/yzigangirova/dcs-go/imgfile"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(st *cliState) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render one image per velocity on a symmetric ramp",
		Long: `batch renders steps+1 frames. Frame i is shifted by
(i - steps/2) / steps * 2 * max, so the default settings give eleven frames
from -0.1c to 0.1c written to result_0.jpg ... result_10.jpg.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in == "" {
				return errors.New("batch: --in is required")
			}
			return runBatch(cmd.Context(), st, in)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&in, "in", "", "input image")
	fs.Int("steps", 10, "number of intervals on the ramp")
	fs.Float64("max", 0.1, "largest |velocity| on the ramp")
	fs.String("out-pattern", "result_%d.jpg", "output path, %d is replaced by the frame index")
	fs.Int("jobs", 0, "frames rendered at once (0: one per CPU)")
	return cmd
}

// batchVelocities returns the ramp (i - steps/2) / steps * 2 * limit for
// i = 0..steps, with steps/2 rounded down.
func batchVelocities(steps int, limit float64) []float64 {
	return lo.Times(steps+1, func(i int) float64 {
		return float64(i-steps/2) / float64(steps) * 2 * limit
	})
}

func runBatch(ctx context.Context, st *cliState, in string) error {
	bc := st.cfg.Batch
	if bc.Steps < 1 {
		return fmt.Errorf("batch: steps must be at least 1, got %d", bc.Steps)
	}
	if strings.Count(bc.Output, "%d") != 1 {
		return fmt.Errorf("batch: output pattern %q needs exactly one %%d", bc.Output)
	}
	velocities := batchVelocities(bc.Steps, bc.Max)
	for _, v := range velocities {
		if err := gdcs.CheckVelocity(v); err != nil {
			return fmt.Errorf("batch: %w", err)
		}
	}

	c, err := newComposer(st.cfg)
	if err != nil {
		return err
	}
	st.log.Info("loading", "in", in)
	img, err := imgfile.Open(in)
	if err != nil {
		return err
	}
	src := imgfile.ToNRGBA(img)

	jobs := bc.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, v := range velocities {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frame := imgfile.Clone(src)
			if err := c.ShiftImage(frame, v, st.cfg.Workers); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			out := fmt.Sprintf(bc.Output, i)
			if err := imgfile.Save(out, frame, st.cfg.Quality); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			st.log.Info("saved", "frame", i, "velocity", v, "out", out)
			return nil
		})
	}
	return g.Wait()
}
