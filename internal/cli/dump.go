package cli

import (
	"fmt"
	"os"

	"github.com/smithery1/yultool/internal/words"
	"github.com/spf13/cobra"
)

func RunDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	columns, err := cmd.Flags().GetInt("columns")
	if err != nil {
		return fmt.Errorf("failed to read --columns flag: %w", err)
	}
	if columns <= 0 {
		columns = cfg.Dump.Columns
	}

	for _, name := range args {
		if err := dumpFile(cmd, name, columns); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cmd *cobra.Command, name string, columns int) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	if err := words.Dump(cmd.OutOrStdout(), f, columns); err != nil {
		return fmt.Errorf("failed to dump %s: %w", name, err)
	}
	return nil
}
