package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vphpersson/type_narrowing/pkg/narrowing"
)

var hasCmd = &cobra.Command{
	Use:   "has <member> [file]",
	Short: "Check whether a document exposes a member",
	Long: `Check whether the JSON document (from file or standard input) exposes the
named member. Exits 0 when the member is present, 1 when it is absent, and 2
when the document cannot be read.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := loadDocument(cmd, args, 1)
		if err != nil {
			return fmt.Errorf("load document: %w", err)
		}

		memberCapability, ok := narrowing.Probe(document, args[0])
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "false")
			return errMemberAbsent
		}

		fmt.Fprintf(cmd.OutOrStdout(), "true (%s)\n", memberCapability.Kind)
		return nil
	},
}
