package cmd

import "github.com/spf13/cobra"

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle play/pause for the current player",
	Args:  cobra.NoArgs,
	RunE:  playbackRun("play-pause"),
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the current player",
	Args:  cobra.NoArgs,
	RunE:  playbackRun("play"),
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the current player",
	Args:  cobra.NoArgs,
	RunE:  playbackRun("pause"),
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Play the next track on the current player",
	Args:  cobra.NoArgs,
	RunE:  playbackRun("next"),
}

var previousCmd = &cobra.Command{
	Use:   "previous",
	Short: "Play the previous track on the current player",
	Args:  cobra.NoArgs,
	RunE:  playbackRun("previous"),
}

// playbackRun issues a one-shot backend subcommand against the current
// selection.
func playbackRun(sub string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		player, err := loadSelection()
		if err != nil {
			return err
		}
		return gw.Run(player, sub)
	}
}
