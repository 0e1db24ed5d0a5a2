package cli

import (
	"fmt"

	"github.com/smithery1/yultool/internal/renumber"
	"github.com/spf13/cobra"
)

func RunRenumber(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dryRun, err := cmd.Flags().GetBool("dryrun")
	if err != nil {
		return fmt.Errorf("failed to read --dryrun flag: %w", err)
	}

	_, err = renumber.Run(args, renumber.Options{
		DryRun:     dryRun,
		TempSuffix: cfg.Renumber.TempSuffix,
		MaxDepth:   cfg.Renumber.MaxDepth,
		Out:        cmd.OutOrStdout(),
	})
	return err
}
