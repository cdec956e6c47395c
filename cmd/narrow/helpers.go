package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// loadDocument decodes the JSON document named by args[argIndex], or the one
// on standard input when no file argument is given.
func loadDocument(cmd *cobra.Command, args []string, argIndex int) (any, error) {
	var data []byte
	var err error

	if len(args) > argIndex {
		path := args[argIndex]
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	return document, nil
}
