package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/janekbaraniewski/daogrowth/internal/config"
	"github.com/janekbaraniewski/daogrowth/internal/version"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func main() {
	if os.Getenv("DAOGROWTH_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	root := newRootCommand(cfg, clockwork.NewRealClock(), os.Stdout)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg config.Config, clock clockwork.Clock, out io.Writer) *cobra.Command {
	opts := &runOptions{cfg: cfg, clock: clock, out: out}

	root := &cobra.Command{
		Use:          "daogrowth",
		Short:        "daogrowth charts DAO creation over time for DAOstack, DAOhaus and Aragon.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.run(chartActive, chartNew)
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory holding the CSV exports (default from config)")
	root.PersistentFlags().StringVar(&opts.pngPath, "png", "", "write the chart(s) to this PNG file instead of opening the viewer")
	root.PersistentFlags().BoolVar(&opts.plain, "plain", false, "print the chart(s) to stdout instead of opening the viewer")

	root.AddCommand(&cobra.Command{
		Use:   "active",
		Short: "Cumulative active DAOs per platform and network",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.run(chartActive)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Running total of new DAOs per month, per platform and network",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.run(chartNew)
		},
	})
	root.AddCommand(newConfigCommand(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "daogrowth "+version.String())
		},
	})

	return root
}
