package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/modconflict/cmd/modconflict/commands"
	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/output/styles"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		details := errors.GetErrorDetails(err)
		keys := make([]string, 0, len(details))
		for key := range details {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintln(os.Stderr, styles.GetStyle("Muted").Render(fmt.Sprintf("  %s: %v", key, details[key])))
		}
		os.Exit(1)
	}
}
