package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thinthought/spyke/internal/composition"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a composition file",
	Long: `Parse and validate a composition file without running it.

Checks node ids, kinds, catalog types, and parent relations.

Examples:
  spyke validate ./my-scene.json`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	path := args[0]

	doc, err := composition.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := composition.Validate(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name := doc.Name
	if name == "" {
		name = path
	}
	fmt.Printf("%s: ok (%d nodes)\n", name, len(doc.Nodes))
}
