package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of the level set",
	Long: `Shows every level of the built-in set, or of the directory given
with --levels, with the binary map file each number is read from.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	set, err := cur.levelSet()
	if err != nil {
		return err
	}

	nums := set.Nums()
	if len(nums) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Printf("Levels (episode %d):\n", cur.cfg.Levels.Episode)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range nums {
		maxNameLen = max(maxNameLen, len(set.Name(n)))
	}

	// Print header
	fmt.Printf("  %-5s  %-10s  %-*s  %5s  %6s\n", "Level", "Map", maxNameLen, "Name", "Width", "Actors")
	fmt.Printf("  %-5s  %-10s  %-*s  %5s  %6s\n", "-----", "---", maxNameLen, "----", "-----", "------")

	// Print levels
	for _, n := range nums {
		lv, err := set.Level(n)
		if err != nil {
			return err
		}
		fmt.Printf("  %-5d  %-10s  %-*s  %5d  %6d\n",
			n+1, levels.MapName(cur.cfg.Levels.Episode, n), maxNameLen, set.Name(n), lv.Map.Width, len(lv.Actors))
	}

	fmt.Println()
	fmt.Println("Run 'cosmo play --level <n>' to start on a level.")
	return nil
}
