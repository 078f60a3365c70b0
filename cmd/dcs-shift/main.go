// Command dcs-shift renders images as they would look to an observer moving
// away from (positive velocity, redshift) or towards (negative velocity,
// blueshift) the display at a fraction of the speed of light.
package main

import (
	"fmt"
	"log/slog"
	"os"

	gdcs "github.com/yzigangirova/dcs-go"

	"github.com/spf13/cobra"
)

func main() {
	must(newRootCmd().Execute())
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// cliState is shared by every subcommand once the root pre-run has parsed
// the config file and the global flags.
type cliState struct {
	configPath string
	vv, v, q   bool
	cfg        Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	root := &cobra.Command{
		Use:           "dcs-shift",
		Short:         "Relativistic Doppler colour shift for sRGB images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := LevelFromFlags(st.vv, st.v, st.q)
			st.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			gdcs.SetLogger(st.log)

			cfg, err := LoadConfig(st.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), &cfg); err != nil {
				return err
			}
			st.cfg = cfg
			st.log.Debug("configuration loaded", "path", st.configPath, "velocity", cfg.Velocity, "workers", cfg.Workers)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "TOML configuration file")
	pf.BoolVar(&st.vv, "vv", false, "debug output")
	pf.BoolVarP(&st.v, "verbose", "v", false, "informational output")
	pf.BoolVarP(&st.q, "quiet", "q", false, "errors only")
	addCommonFlags(pf)

	root.AddCommand(
		newShiftCmd(st),
		newBatchCmd(st),
		newMatrixCmd(st),
		newSwatchCmd(st),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "dcs-shift", gdcs.Version())
		},
	}
}
