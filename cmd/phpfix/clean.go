package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phpfix/internal/engine"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the clean-file cache",
	Long:  `Clean removes every cached clean-file record, forcing the next run to re-examine all files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := engine.OpenDiskCache("phpfix")
		if err != nil {
			return err
		}
		if err := cache.DropAll(); err != nil {
			return err
		}
		if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "cache dropped")
		}
		return nil
	},
}
