package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"multiplayerctl/internal/notify"
)

var (
	flagVolumeFormat   string
	flagPositionFormat string
	flagStatusFormat   string
	flagStatusFollow   bool
	flagMetadataFormat string
	flagMetadataFollow bool
)

var volumeCmd = &cobra.Command{
	Use:   "volume [VALUE]",
	Short: "Print or set the volume of the current player",
	Args:  cobra.MaximumNArgs(1),
	RunE:  volumeRun,
}

var positionCmd = &cobra.Command{
	Use:   "position [VALUE]",
	Short: "Print or set the position of the current player",
	Args:  cobra.MaximumNArgs(1),
	RunE:  positionRun,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the status of the current player",
	Args:  cobra.NoArgs,
	RunE:  statusRun,
}

var metadataCmd = &cobra.Command{
	Use:   "metadata [KEY]",
	Short: "Print the metadata of the current player",
	Args:  cobra.MaximumNArgs(1),
	RunE:  metadataRun,
}

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Print the current player",
	Args:  cobra.NoArgs,
	RunE:  playerRun,
}

func init() {
	volumeCmd.Flags().StringVarP(&flagVolumeFormat, "format", "f", "", "Format to use when printing the volume")
	positionCmd.Flags().StringVarP(&flagPositionFormat, "format", "f", "", "Format to use when printing the position")
	statusCmd.Flags().StringVarP(&flagStatusFormat, "format", "f", "", "Format to use when printing the status")
	statusCmd.Flags().BoolVarP(&flagStatusFollow, "follow", "F", false, "Follow the status of the player")
	metadataCmd.Flags().StringVarP(&flagMetadataFormat, "format", "f", "", "Format to use when printing the metadata")
	metadataCmd.Flags().BoolVarP(&flagMetadataFollow, "follow", "F", false, "Follow the metadata of the player")
}

func volumeRun(cmd *cobra.Command, args []string) error {
	player, err := loadSelection()
	if err != nil {
		return err
	}

	extra := args
	if flagVolumeFormat != "" {
		extra = append(extra, "--format="+flagVolumeFormat)
	}
	return gw.Run(player, "volume", extra...)
}

func positionRun(cmd *cobra.Command, args []string) error {
	player, err := loadSelection()
	if err != nil {
		return err
	}

	extra := args
	if flagPositionFormat != "" {
		extra = append(extra, "--format="+flagPositionFormat)
	}
	return gw.Run(player, "position", extra...)
}

func statusRun(cmd *cobra.Command, args []string) error {
	var extra []string
	if flagStatusFormat != "" {
		extra = append(extra, "--format="+flagStatusFormat)
	}

	if !flagStatusFollow {
		player, err := loadSelection()
		if err != nil {
			return err
		}
		return gw.Run(player, "status", extra...)
	}

	// Plain follow: the stream tracks whichever player it started on.
	pump := gw.FollowPump(loadSelection, nil, cfg.PollInterval(), "status", extra...)
	return pump.Run()
}

func metadataRun(cmd *cobra.Command, args []string) error {
	extra := args
	if flagMetadataFormat != "" {
		extra = append(extra, "--format="+flagMetadataFormat)
	}

	if !flagMetadataFollow {
		player, err := loadSelection()
		if err != nil {
			return err
		}
		return gw.Run(player, "metadata", extra...)
	}

	// Switch-aware follow: when another instance changes the selection, the
	// pump kills the stream and respawns it against the new player.
	listener := notify.Listen()
	defer listener.Stop()

	pump := gw.FollowPump(currentPlayer, listener, cfg.PollInterval(), "metadata", extra...)
	return pump.Run()
}

func playerRun(cmd *cobra.Command, args []string) error {
	player, err := loadSelection()
	if err != nil {
		return err
	}
	fmt.Print(player)
	return nil
}
