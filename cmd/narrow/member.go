package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	typeNarrowingErrors "github.com/vphpersson/type_narrowing/pkg/errors"
	"github.com/vphpersson/type_narrowing/pkg/narrowing"
)

var memberCmd = &cobra.Command{
	Use:   "member <member> [file]",
	Short: "Print a member's value",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := loadDocument(cmd, args, 1)
		if err != nil {
			return fmt.Errorf("load document: %w", err)
		}

		memberValue, err := narrowing.Member(document, args[0])
		if err != nil {
			if errors.Is(err, typeNarrowingErrors.ErrNoSuchMember) {
				return errMemberAbsent
			}
			return fmt.Errorf("member: %w", err)
		}

		output, err := json.Marshal(memberValue)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}
