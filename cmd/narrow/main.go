// Package main provides the narrow CLI, a probe over JSON documents built on
// the narrowing library.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errMemberAbsent distinguishes a negative verdict from an input failure, so
// the two get different exit codes.
var errMemberAbsent = errors.New("member absent")

// exitCode maps an Execute result to the process exit code: 0 when the
// member is present, 1 when it is absent, 2 on input failures.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errMemberAbsent):
		return 1
	default:
		return 2
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errMemberAbsent) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "narrow",
	Short: "Probe JSON documents for member presence",
	Long: `Narrow checks whether a JSON document exposes a named member and reports
how the member is reached. Presence of the one member is the whole verdict:
a document of an unrelated shape that happens to carry the member name is
accepted all the same.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(hasCmd)
	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(membersCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "narrow v0.1.0")
	},
}
