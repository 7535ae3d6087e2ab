package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thinthought/spyke/internal/composition"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Manage scenes stored in the database",
	Long: `Manage the scene database.

Examples:
  spyke scenes list
  spyke scenes save ./my-scene.json
  spyke scenes save ./my-scene.json --name sandbox
  spyke scenes show sandbox
  spyke scenes rm sandbox`,
}

var flagSaveName string

var scenesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scenes",
	Run:   runScenesList,
}

var scenesSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Import a composition file into the database",
	Args:  cobra.ExactArgs(1),
	Run:   runScenesSave,
}

var scenesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored scene as JSON",
	Args:  cobra.ExactArgs(1),
	Run:   runScenesShow,
}

var scenesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a stored scene",
	Args:  cobra.ExactArgs(1),
	Run:   runScenesRm,
}

func init() {
	scenesSaveCmd.Flags().StringVar(&flagSaveName, "name", "", "Name to store the scene under (default: document name or file name)")

	scenesCmd.AddCommand(scenesListCmd)
	scenesCmd.AddCommand(scenesSaveCmd)
	scenesCmd.AddCommand(scenesShowCmd)
	scenesCmd.AddCommand(scenesRmCmd)
}

func runScenesList(_ *cobra.Command, _ []string) {
	store := openStore(loadSettings())
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.ListScenes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No scenes stored.")
		fmt.Println()
		fmt.Println("Import one with 'spyke scenes save <file>'.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Nodes", "Updated")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "-----", "-------")
	for _, e := range entries {
		fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, e.Name, e.Nodes, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runScenesSave(_ *cobra.Command, args []string) {
	path := args[0]

	doc, err := composition.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Validate before storing so the database never holds a broken scene
	if err := composition.Validate(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name := flagSaveName
	if name == "" {
		name = doc.Name
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	store := openStore(loadSettings())
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SaveScene(name, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %q (%d nodes)\n", name, len(doc.Nodes))
}

func runScenesShow(_ *cobra.Command, args []string) {
	store := openStore(loadSettings())
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	doc, err := store.LoadScene(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := composition.Encode(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runScenesRm(_ *cobra.Command, args []string) {
	store := openStore(loadSettings())
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeleteScene(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Deleted %q\n", args[0])
}
