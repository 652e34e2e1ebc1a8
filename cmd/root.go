// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"multiplayerctl/internal/backend"
	"multiplayerctl/internal/config"
	"multiplayerctl/internal/selection"
	"multiplayerctl/internal/store"
)

// Version is set at build time via ldflags.
var Version = "dev"

// programName is what peers look for in the process table, so it must match
// the installed binary name.
const programName = "multiplayerctl"

// Global flags
var (
	flagBackend string
	flagDebug   bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

// sel and gw are initialized by setup before any command runs.
var (
	sel *store.Store
	gw  *backend.Gateway
)

var rootCmd = &cobra.Command{
	Use:   "multiplayerctl",
	Short: "Control the current player among multiple running media players",
	Long: `Multiplayerctl routes playback commands to "the current" media player when
several are running, and lets you switch which one that is. The selection is
shared across invocations, so a status --follow in one terminal tracks
switches made in another.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command.
// Informational failures (no players running, unreadable selection file)
// print a message and exit cleanly; anything else is a real error.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, selection.ErrNoPlayers):
		fmt.Println("No players found!")
	case errors.Is(err, store.ErrUnreadable), errors.Is(err, store.ErrUnwritable):
		fmt.Println(err)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Player-control backend binary (default: playerctl)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(previousCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(positionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, opens the selection store, and validates the
// persisted selection against the live player list before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagDebug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	if cfg.Debug {
		log.SetPrefix("[multiplayerctl] ")
	}

	sel, err = store.Open(programName)
	if err != nil {
		return err
	}
	gw = backend.New(cfg.Backend)

	// Seed or repair the selection so every command sees a valid one.
	_, err = currentPlayer()
	return err
}

// currentPlayer loads the persisted selection, validates it against the live
// player list, and persists the repaired value when it was absent or stale.
func currentPlayer() (string, error) {
	persisted, _, err := sel.Load()
	if err != nil {
		return "", err
	}

	live, err := gw.ListPlayers()
	if err != nil {
		return "", err
	}

	id, repaired, err := selection.Resolve(persisted, live)
	if err != nil {
		return "", err
	}
	if repaired {
		debugf("selection repaired: %q -> %q", persisted, id)
		if err := sel.Save(id); err != nil {
			return "", err
		}
	}
	return id, nil
}

// loadSelection reads the persisted selection without requerying the
// backend; setup has already validated it for this invocation.
func loadSelection() (string, error) {
	id, ok, err := sel.Load()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", selection.ErrNoPlayers
	}
	return id, nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}
