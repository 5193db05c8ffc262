// Command tilecard renders, validates and previews tile cards.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/tilecard/cmd/tilecard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
