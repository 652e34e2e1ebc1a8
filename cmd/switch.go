package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"multiplayerctl/internal/notify"
	"multiplayerctl/internal/selection"
)

var (
	flagSwitchPlayer string
	flagSwitchNext   bool
	flagSwitchBack   bool
)

var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Switch the current player to the next available one",
	Args:  cobra.NoArgs,
	RunE:  switchRun,
}

func init() {
	switchCmd.Flags().StringVarP(&flagSwitchPlayer, "player", "p", "", "The player to switch to")
	switchCmd.Flags().BoolVarP(&flagSwitchNext, "next", "n", false, "Switch to the next player (default behaviour)")
	switchCmd.Flags().BoolVarP(&flagSwitchBack, "back", "b", false, "Switch to the previous player")
}

func switchRun(cmd *cobra.Command, args []string) error {
	persisted, _, err := sel.Load()
	if err != nil {
		return err
	}

	live, err := gw.ListPlayers()
	if err != nil {
		return err
	}

	id, err := selection.Switch(persisted, live, selection.Policy{
		Name: flagSwitchPlayer,
		Back: flagSwitchBack,
	})
	if err != nil {
		return fmt.Errorf("switching player: %w", err)
	}

	if err := sel.Save(id); err != nil {
		return err
	}
	debugf("switched: %q -> %q", persisted, id)

	// Wake every running instance so follow loops pick up the new selection.
	// Peers that vanished mid-scan are skipped; only a failed scan is worth
	// mentioning, and even that doesn't undo the switch.
	if err := notify.Broadcast(notify.ProcScanner{}, programName); err != nil {
		debugf("broadcast failed: %v", err)
	}
	return nil
}
