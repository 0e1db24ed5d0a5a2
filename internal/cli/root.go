package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yultool",
		Short: "Maintenance tools for yaYUL-formatted AGC source trees",
		Long: `Yultool works on Apollo Guidance Computer code bases kept in the
yaYUL source format: a MAIN.agc entry file whose $FILE insertion lines pull
in the rest of the listing, with "## Page N" comments marking page breaks.

The renumber command walks a tree from its entry file and rewrites page
comments that have drifted out of sequence; the dump command prints assembled
core images as octal 15-bit words.`,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a yultool config file (default: .yultool.yaml)")

	renumberCmd := &cobra.Command{
		Use:   "renumber <main file>...",
		Short: "Renumber page comments across one or more AGC source trees",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunRenumber,
	}
	renumberCmd.Flags().BoolP("dryrun", "n", false, "Print page changes but do not modify files")

	dumpCmd := &cobra.Command{
		Use:   "dump <core image>...",
		Short: "Dump AGC core images as octal 15-bit words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunDump,
	}
	dumpCmd.Flags().Int("columns", 0, "Words per output row (default from config)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "yultool %s\n", version)
		},
	}

	rootCmd.AddCommand(
		renumberCmd,
		dumpCmd,
		versionCmd,
	)

	return rootCmd
}
