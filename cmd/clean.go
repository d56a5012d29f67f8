/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sony-level/tempdir/workspace"
)

func newCleanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove a tempdir left behind by --tempdir-no-clean or a crashed run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, logger, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			path, err := s.ResolvePath()
			if err != nil {
				return err
			}

			logger.Debug("Removing tempdir", zap.String("path", path))
			if err := workspace.Remove(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", path)
			return nil
		},
	}
}
