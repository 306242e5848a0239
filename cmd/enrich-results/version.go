package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/enricher"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of enrich-results",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "enrich-results version %s\n", strings.TrimSpace(enricher.Version))
		},
	}
}
