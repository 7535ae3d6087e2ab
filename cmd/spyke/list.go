package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinthought/spyke/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entity and environment types",
	Long:  `Shows every concrete type that can appear in a composition file.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Println("No types registered.")
		return
	}

	fmt.Println("Catalog:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Type" header
	for _, info := range infos {
		if len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Type", "Kind")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----")

	// Print entries
	for _, info := range infos {
		fmt.Printf("  %-*s  %s\n", maxNameLen, info.Name, info.Kind)
	}

	fmt.Println()
	fmt.Println("Use these type names in composition files.")
}
