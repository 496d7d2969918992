// cosmo plays Cosmo's Cosmic Adventure in the terminal.
//
// Usage:
//
//	cosmo play               - Title menu, then play
//	cosmo play --level 3     - Start straight on a level
//	cosmo list               - List the levels of the level set
//	cosmo scores             - Show high scores
//	cosmo saves              - Show saved games
//	cosmo demo record|watch  - Record or watch a demo
//	cosmo serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Configuration file (default: search ~/.cosmo/configs, ./configs)
//	--fps <rate>         - Override the tick rate
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--levels <dir>       - Load levels from a directory instead of the built-in set
//	--difficulty <name>  - easy, normal or hard
//	--db <path>          - Override the database path
//	--log <path>         - Write a debug log while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagLevelsDir  string
	flagDifficulty string
	flagDBPath     string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cosmo",
	Short: "Cosmo's Cosmic Adventure in your terminal",
	Long: `Cosmo's Cosmic Adventure is a side-scrolling platformer: guide Cosmo
through alien worlds, pounce on enemies, collect stars and find the exit.

Available commands:
  play     - Play the game
  list     - Show the levels of the level set
  scores   - View high scores
  saves    - View saved games
  demo     - Record or watch a demo
  serve    - Start SSH server for remote play

Examples:
  cosmo play
  cosmo play --difficulty easy --level 2
  cosmo play --levels ~/games/cosmo1
  cosmo demo record
  cosmo serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadApp,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to a configuration YAML")
	flags.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagLevelsDir, "levels", "", "Directory with level files (default: built-in levels)")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagDBPath, "db", "", "Path to the scores and saves database")
	flags.StringVar(&flagLogPath, "log", "", "Write a log file while playing")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
}
