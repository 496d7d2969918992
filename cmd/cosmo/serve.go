package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
	"github.com/vovakirdan/cosmo-arcade/internal/platform/tui"
	"github.com/vovakirdan/cosmo-arcade/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Scores are stored per-server (all users share the same leaderboard).
Save slots are kept per SSH user name in the server's database.

Examples:
  cosmo serve                           # Listen on :23234 with auto-generated key
  cosmo serve --ssh :2222               # Listen on port 2222
  cosmo serve --host-key ./my_host_key  # Use specific host key
  cosmo serve --db ./cosmo.db           # Use specific database

Connect with: ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, args []string) error {
	defer cur.close()

	set, err := cur.levelSet()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = cur.cfg.Saves.DBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = cosmo.GameID
	cfg.Title = registry.Title(cosmo.GameID)
	cfg.TickRate = cur.cfg.TickRate
	cfg.HoldFrames = cur.cfg.Input.HoldFrames
	cfg.Difficulty = cur.difficulty
	cfg.Levels = levelEntries(set)

	factory := func(req tui.GameRequest) (registry.Game, error) {
		var saves engine.SaveStore = engine.NewMemorySaveStore()
		if req.Store != nil {
			saves = req.Store.SaveStore(tui.SessionSaveKey(cosmo.GameID, req.User))
		}
		return cosmo.New(cur.difficultyOptions(req.Difficulty, set, saves, req.StartLevel)), nil
	}

	server, err := tui.NewSSHServer(cfg, factory, cur.logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting cosmo SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	return server.ListenAndServe()
}
