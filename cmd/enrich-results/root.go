package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/enricher"
	"github.com/aretw0/enricher/internal/logging"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Output streams follow cmd.OutOrStdout / cmd.ErrOrStderr.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "enrich-results",
		Short: "Enrich results.json with the participant name from scenario.toml",
		Long: `Reads the first participant's name from a scenario file (TOML, or YAML by extension)
and writes it into the "participants" object of a JSON results document, in place.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEnrich,
	}

	rootCmd.Flags().String("scenario", "", "Path to scenario.toml")
	rootCmd.Flags().String("results", "", "Path to results.json")
	rootCmd.Flags().Bool("dry-run", false, "Print the enriched document instead of writing it")
	_ = rootCmd.MarkFlagRequired("scenario")
	_ = rootCmd.MarkFlagRequired("results")

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func runEnrich(cmd *cobra.Command, args []string) error {
	scenarioPath, _ := cmd.Flags().GetString("scenario")
	resultsPath, _ := cmd.Flags().GetString("results")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	levelFlag, _ := cmd.Flags().GetString("log-level")
	formatFlag, _ := cmd.Flags().GetString("log-format")

	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	e := enricher.New(
		enricher.WithLogger(logging.New(level, format, cmd.ErrOrStderr())),
		enricher.WithOutput(cmd.OutOrStdout()),
		enricher.WithDryRun(dryRun),
	)
	return e.Run(scenarioPath, resultsPath)
}

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with the given arguments and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
