package cli

import (
	"fmt"
	"strings"

	"github.com/smithery1/yultool/internal/config"
	"github.com/spf13/cobra"
)

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Load(config.DefaultPath)
	}
	return config.Load(path)
}
