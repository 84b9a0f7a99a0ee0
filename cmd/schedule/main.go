package main

import (
	"fmt"
	"os"

	"schedule/internal/cli"
	"schedule/internal/config"
)

func main() {
	// Defaults, then the YAML config file, then the environment, then flags.
	root := cli.NewRootCommand(config.NewLoader(), cli.DefaultAPIFactory)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
