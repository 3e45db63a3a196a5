package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/janekbaraniewski/daogrowth/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCommand(opts *runOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the settings file",
	}

	var path string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings (including --data-dir) to the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := path
			if target == "" {
				target = config.ConfigPath()
			}
			if !force {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("checking %s: %w", target, err)
				}
			}

			cfg := opts.cfg
			if opts.dataDir != "" {
				cfg.DataDir = opts.dataDir
			}
			if path == "" {
				if err := config.Save(cfg); err != nil {
					return err
				}
			} else if err := config.SaveTo(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "settings file to write (default "+config.ConfigPath()+")")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.ConfigPath())
		},
	})
	return cmd
}
