package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vphpersson/type_narrowing/pkg/narrowing"
)

var membersCmd = &cobra.Command{
	Use:   "members [file]",
	Short: "List the members a document exposes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := loadDocument(cmd, args, 0)
		if err != nil {
			return fmt.Errorf("load document: %w", err)
		}

		for _, member := range narrowing.Capabilities(document) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", member.Kind, member.Member)
		}

		return nil
	},
}
