// Package main provides the colorgen CLI tool for keeping theme colors,
// the semantic color mapping, the generated stylesheet and the lint
// allow-list in sync.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// check has already reported its findings
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
